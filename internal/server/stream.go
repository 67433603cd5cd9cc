package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
)

// Frame is one message on the websocket stream.
type Frame struct {
	Clock     clock.State           `json:"clock"`
	Positions map[string]orbit.Vec3 `json:"positions"`
}

// command is what clients may send back on the stream.
type command struct {
	Action string  `json:"action"`
	Scale  float64 `json:"scale,omitempty"`
	Preset string  `json:"preset,omitempty"`
}

// Frame builds a frame for the current clock time.
func (s *Server) Frame() Frame {
	st := s.withClock(nil)
	pos := s.resolver.Positions(st.Elapsed)
	if s.telemetry != nil {
		for id, p := range pos {
			s.telemetry.SetBodyDistance(id, p.Length())
		}
	}
	return Frame{Clock: st, Positions: pos}
}

func (s *Server) apply(cmd command) {
	s.withClock(func(c *clock.Clock) {
		switch cmd.Action {
		case "play":
			c.Play()
		case "pause":
			c.Pause()
		case "toggle":
			c.Toggle()
		case "reset":
			c.Reset()
		case "scale":
			if cmd.Preset != "" {
				c.SetTimeScalePreset(cmd.Preset)
			} else {
				c.SetTimeScale(cmd.Scale)
			}
		}
	})
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	if s.telemetry != nil {
		s.telemetry.StreamOpened()
		defer s.telemetry.StreamClosed()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var cmd command
			if err := json.Unmarshal(data, &cmd); err != nil {
				s.logger.Debug("ignoring stream message", "err", err)
				continue
			}
			s.apply(cmd)
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.StreamFPS))
	defer ticker.Stop()

	send := func() bool {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(s.Frame()); err != nil {
			s.logger.Debug("stream closed", "err", err)
			return false
		}
		return true
	}

	if !send() {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case <-done:
			return
		case <-ticker.C:
			if !send() {
				return
			}
		}
	}
}

