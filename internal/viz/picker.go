package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/orrery/internal/catalog"
)

const pickerRows = 14

// picker is the focus selection menu.
type picker struct {
	bodies   []catalog.Body
	cursor   int
	offset   int
	selected string
	done     bool
}

func newPicker(bodies []catalog.Body, current string) *picker {
	p := &picker{bodies: bodies}
	for i, b := range bodies {
		if b.ID == current {
			p.cursor = i
		}
	}
	p.scroll()
	return p
}

// update handles a key. It reports true once the menu should close; a
// chosen body is left in selected.
func (p *picker) update(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "q", "b":
		p.done = true
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.bodies)-1 {
			p.cursor++
		}
	case "home", "g":
		p.cursor = 0
	case "end", "G":
		p.cursor = max(len(p.bodies)-1, 0)
	case "enter", " ":
		if len(p.bodies) > 0 {
			p.selected = p.bodies[p.cursor].ID
		}
		p.done = true
	}
	p.scroll()
	return p.done
}

func (p *picker) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+pickerRows {
		p.offset = p.cursor - pickerRows + 1
	}
}

func (p *picker) view(s styles) string {
	var b strings.Builder
	b.WriteString(s.header.Render("FOCUS") + "\n\n")
	end := min(p.offset+pickerRows, len(p.bodies))
	for i := p.offset; i < end; i++ {
		body := p.bodies[i]
		line := fmt.Sprintf("%-14s %s", body.DisplayName(), s.muted.Render(string(body.Type)))
		if i == p.cursor {
			b.WriteString(s.focus.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + s.value.Render(line) + "\n")
		}
	}
	if end < len(p.bodies) {
		b.WriteString(s.muted.Render(fmt.Sprintf("  … %d more", len(p.bodies)-end)) + "\n")
	}
	b.WriteString(s.help.Render("↑↓ select  enter focus  esc close"))
	return b.String()
}
