package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
)

type errorResponse struct {
	Error string `json:"error"`
}

type bodyResponse struct {
	catalog.Body
	Children []string `json:"children,omitempty"`
}

type positionResponse struct {
	ID        string     `json:"id"`
	Time      float64    `json:"t"`
	Date      string     `json:"date"`
	Position  orbit.Vec3 `json:"position"`
	Velocity  orbit.Vec3 `json:"velocity"`
	Distance  float64    `json:"distance_au"`
	Converged bool       `json:"converged"`
}

type positionsResponse struct {
	Time      float64               `json:"t"`
	Date      string                `json:"date"`
	Positions map[string]orbit.Vec3 `json:"positions"`
}

// maxQueryDays bounds ?t= to ten million years either side of J2000.
const maxQueryDays = 3.6525e9

// writeJSON encodes v before writing the header so an encoding failure can
// still be reported as a 500.
func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		body, _ = json.Marshal(errorResponse{Error: err.Error()})
		code = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(append(body, '\n'))
}

// floatParam parses a finite query value.
func floatParam(q url.Values, name string) (float64, error) {
	raw := q.Get(name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func (s *Server) handleBodies(w http.ResponseWriter, r *http.Request) {
	bodies := s.catalog.Bodies()
	if t := r.URL.Query().Get("type"); t != "" {
		bodies = s.catalog.ByType(catalog.Type(t))
	}
	if bodies == nil {
		bodies = []catalog.Body{}
	}
	writeJSON(w, http.StatusOK, bodies)
}

func (s *Server) handleBody(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	b, ok := s.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown body %q", id))
		return
	}
	resp := bodyResponse{Body: b}
	for _, c := range s.catalog.Children(id) {
		resp.Children = append(resp.Children, c.ID)
	}
	writeJSON(w, http.StatusOK, resp)
}

// timeParam reads ?t= in days since J2000, defaulting to the clock.
func (s *Server) timeParam(r *http.Request) (float64, string, error) {
	raw := r.URL.Query().Get("t")
	if raw == "" {
		st := s.withClock(nil)
		return st.Elapsed, st.Date, nil
	}
	t, err := floatParam(r.URL.Query(), "t")
	if err != nil {
		return 0, "", err
	}
	if math.Abs(t) > maxQueryDays {
		return 0, "", fmt.Errorf("t %q out of range", raw)
	}
	return t, clock.DateAt(t).Format(clock.DateTimeLayout), nil
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	t, date, err := s.timeParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sv, err := s.resolver.ResolveState(id, t)
	switch {
	case errors.Is(err, orbit.ErrUnknownBody):
		writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	writeJSON(w, http.StatusOK, positionResponse{
		ID:        id,
		Time:      t,
		Date:      date,
		Position:  sv.Position,
		Velocity:  sv.Velocity,
		Distance:  sv.Position.Length(),
		Converged: sv.Converged,
	})
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	t, date, err := s.timeParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, positionsResponse{
		Time:      t,
		Date:      date,
		Positions: s.resolver.Positions(t),
	})
}

func (s *Server) handleClock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.withClock(nil))
}

func (s *Server) handleClockAction(w http.ResponseWriter, r *http.Request) {
	action := mux.Vars(r)["action"]
	var fn func(*clock.Clock)
	switch action {
	case "play":
		fn = (*clock.Clock).Play
	case "pause":
		fn = (*clock.Clock).Pause
	case "toggle":
		fn = func(c *clock.Clock) { c.Toggle() }
	case "reset":
		fn = (*clock.Clock).Reset
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown clock action %q", action))
		return
	}
	st := s.withClock(fn)
	s.logger.Info("clock", "action", action, "date", st.Date)
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if name := q.Get("preset"); name != "" {
		if _, ok := clock.LookupScale(name); !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown time scale preset %q", name))
			return
		}
		writeJSON(w, http.StatusOK, s.withClock(func(c *clock.Clock) { c.SetTimeScalePreset(name) }))
		return
	}

	v, err := floatParam(q, "value")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.withClock(func(c *clock.Clock) { c.SetTimeScale(v) }))
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := floatParam(q, "amount")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := clock.ParseUnit(q.Get("unit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.withClock(func(c *clock.Clock) {
		if amount < 0 {
			c.JumpBackward(-amount, unit)
		} else {
			c.JumpForward(amount, unit)
		}
	}))
}

func (s *Server) handleDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("jd") != "" {
		jd, err := floatParam(q, "jd")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, s.withClock(func(c *clock.Clock) { c.SetJulianDate(jd) }))
		return
	}

	raw := q.Get("date")
	d, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		d, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date %q", raw))
		return
	}
	writeJSON(w, http.StatusOK, s.withClock(func(c *clock.Clock) { c.SetFromCalendarDate(d) }))
}
