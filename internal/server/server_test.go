package server

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/telemetry"
)

type fakeWall struct{ t time.Time }

func (f *fakeWall) now() time.Time { return f.t }

func newTestServer(t *testing.T, opts Options) (*Server, *fakeWall) {
	t.Helper()
	wall := &fakeWall{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cat := catalog.Default()
	opts.Logger = log.New(io.Discard)
	if opts.Telemetry == nil {
		opts.Telemetry = telemetry.NewCollector()
	}
	srv := New(cat, orbit.NewResolver(nil, cat), clock.New(clock.WithNow(wall.now)), opts)
	return srv, wall
}

func do(t *testing.T, h http.Handler, method, target string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	if out != nil && rec.Code < 300 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: bad json: %v (%s)", method, target, err, rec.Body.String())
		}
	}
	return rec.Code
}

func TestBodies(t *testing.T) {
	srv, _ := newTestServer(t, Options{})
	h := srv.Handler()

	var bodies []catalog.Body
	if code := do(t, h, "GET", "/bodies", &bodies); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(bodies) != catalog.Default().Len() {
		t.Errorf("expected all bodies, got %d", len(bodies))
	}

	var comets []catalog.Body
	do(t, h, "GET", "/bodies?type=comet", &comets)
	if len(comets) != 5 {
		t.Errorf("expected 5 comets, got %d", len(comets))
	}

	var none []catalog.Body
	do(t, h, "GET", "/bodies?type=asteroid", &none)
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty list, got %v", none)
	}

	var mars bodyResponse
	if code := do(t, h, "GET", "/bodies/mars", &mars); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if mars.Name != "Mars" || len(mars.Children) != 2 {
		t.Errorf("unexpected mars response %+v", mars)
	}

	if code := do(t, h, "GET", "/bodies/vulcan", nil); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestPosition(t *testing.T) {
	srv, _ := newTestServer(t, Options{})
	h := srv.Handler()

	var p positionResponse
	if code := do(t, h, "GET", "/bodies/earth/position?t=100", &p); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	want, _ := orbit.NewResolver(nil, catalog.Default()).Resolve("earth", 100)
	if p.Position.Sub(want).Length() > 1e-12 {
		t.Errorf("expected %+v, got %+v", want, p.Position)
	}
	if p.Distance < 0.98 || p.Distance > 1.02 || !p.Converged {
		t.Errorf("unexpected position response %+v", p)
	}
	if p.Date != "2000-04-10 12:00:00" {
		t.Errorf("unexpected date %s", p.Date)
	}

	var before positionResponse
	do(t, h, "GET", "/bodies/earth/position?t=-1", &before)
	if before.Date != "1999-12-31 12:00:00" || before.Time != -1 {
		t.Errorf("date should follow the requested time, got %s at t=%v", before.Date, before.Time)
	}

	var atClock positionResponse
	do(t, h, "GET", "/bodies/earth/position", &atClock)
	if atClock.Time != 0 {
		t.Errorf("expected clock time 0, got %f", atClock.Time)
	}

	tests := []struct {
		target string
		code   int
	}{
		{"/bodies/earth/position?t=soon", http.StatusBadRequest},
		{"/bodies/vulcan/position?t=1", http.StatusNotFound},
		{"/positions?t=x", http.StatusBadRequest},
		{"/positions?t=NaN", http.StatusBadRequest},
		{"/bodies/earth/position?t=Inf", http.StatusBadRequest},
		{"/bodies/earth/position?t=-Inf", http.StatusBadRequest},
		{"/positions?t=1e300", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if code := do(t, h, "GET", tt.target, nil); code != tt.code {
			t.Errorf("%s: expected %d, got %d", tt.target, tt.code, code)
		}
	}
}

func TestPositions(t *testing.T) {
	srv, _ := newTestServer(t, Options{})

	var resp positionsResponse
	if code := do(t, srv.Handler(), "GET", "/positions?t=2500", &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(resp.Positions) != catalog.Default().Len() {
		t.Errorf("expected every body, got %d", len(resp.Positions))
	}
	if resp.Positions["sun"] != orbit.Origin {
		t.Errorf("sun not at origin: %+v", resp.Positions["sun"])
	}
	moon := resp.Positions["moon"].Sub(resp.Positions["earth"]).Length()
	if moon > 0.003 || moon < 0.002 {
		t.Errorf("moon offset %f AU", moon)
	}
}

func TestClockControl(t *testing.T) {
	srv, wall := newTestServer(t, Options{})
	h := srv.Handler()

	var st clock.State
	do(t, h, "POST", "/clock/scale?preset=1day/sec", &st)
	if st.Scale != 86400 || st.ScaleLabel != "1day/sec" {
		t.Errorf("unexpected scale %+v", st)
	}

	do(t, h, "POST", "/clock/play", &st)
	if !st.Running {
		t.Fatal("clock not running after play")
	}

	wall.t = wall.t.Add(2 * time.Second)
	srv.Tick()
	do(t, h, "GET", "/clock", &st)
	if st.Elapsed < 1.999 || st.Elapsed > 2.001 {
		t.Errorf("expected ~2 days elapsed, got %f", st.Elapsed)
	}

	do(t, h, "POST", "/clock/pause", &st)
	wall.t = wall.t.Add(time.Hour)
	srv.Tick()
	do(t, h, "GET", "/clock", &st)
	if st.Running || st.Elapsed > 2.001 {
		t.Errorf("paused clock moved: %+v", st)
	}

	do(t, h, "POST", "/clock/jump?amount=1&unit=weeks", &st)
	if st.Elapsed < 8.999 || st.Elapsed > 9.001 {
		t.Errorf("expected 9 days after jump, got %f", st.Elapsed)
	}
	do(t, h, "POST", "/clock/jump?amount=-1&unit=years", &st)
	if st.Elapsed != 0 {
		t.Errorf("backward jump should clamp at 0, got %f", st.Elapsed)
	}

	do(t, h, "POST", "/clock/date?date=2024-03-15", &st)
	if !strings.HasPrefix(st.Date, "2024-03-15") {
		t.Errorf("unexpected date %s", st.Date)
	}
	do(t, h, "POST", "/clock/date?jd=2451910.5", &st)
	if st.JulianDate != 2451910.5 {
		t.Errorf("unexpected jd %f", st.JulianDate)
	}

	do(t, h, "POST", "/clock/scale?value=-5", &st)
	if st.Scale != 0 {
		t.Errorf("negative scale should clamp to 0, got %f", st.Scale)
	}

	do(t, h, "POST", "/clock/reset", &st)
	if st.Running || st.Elapsed != 0 {
		t.Errorf("unexpected state after reset %+v", st)
	}

	for _, target := range []string{
		"/clock/rewind",
		"/clock/scale?value=fast",
		"/clock/scale?preset=warp",
		"/clock/jump?amount=x&unit=days",
		"/clock/jump?amount=1&unit=fortnights",
		"/clock/date?date=tomorrow",
		"/clock/date?jd=x",
	} {
		if code := do(t, h, "POST", target, nil); code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, code)
		}
	}

	if code := do(t, h, "GET", "/clock/play", nil); code != http.StatusMethodNotAllowed {
		t.Errorf("GET on action: expected 405, got %d", code)
	}
}

func TestNonFiniteClockInput(t *testing.T) {
	srv, _ := newTestServer(t, Options{})
	h := srv.Handler()

	var st clock.State
	do(t, h, "POST", "/clock/jump?amount=10&unit=days", &st)

	for _, target := range []string{
		"/clock/jump?amount=Inf&unit=days",
		"/clock/jump?amount=-Inf&unit=days",
		"/clock/jump?amount=NaN&unit=days",
		"/clock/scale?value=Inf",
		"/clock/scale?value=NaN",
		"/clock/date?jd=Inf",
		"/clock/date?jd=NaN",
	} {
		if code := do(t, h, "POST", target, nil); code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, code)
		}
	}

	// finite but overflowing once converted to days
	if code := do(t, h, "POST", "/clock/jump?amount=1e308&unit=years", &st); code != http.StatusOK {
		t.Fatalf("overflowing jump: expected 200, got %d", code)
	}
	if st.Elapsed != 10 {
		t.Errorf("overflowing jump moved the clock to %v", st.Elapsed)
	}

	if code := do(t, h, "GET", "/clock", &st); code != http.StatusOK || st.Elapsed != 10 {
		t.Errorf("clock unusable after bad input: %d %+v", code, st)
	}
	f := srv.Frame()
	if p := f.Positions["earth"]; math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
		t.Errorf("frame carries NaN position %+v", p)
	}
	if _, err := json.Marshal(f); err != nil {
		t.Errorf("frame does not encode: %v", err)
	}
}

func TestWriteJSONEncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"x": math.Inf(1)})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	var e errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil || e.Error == "" {
		t.Errorf("expected a json error body, got %q", rec.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	srv, _ := newTestServer(t, Options{RateLimit: 1, Burst: 2})
	h := srv.Handler()

	codes := make([]int, 3)
	for i := range codes {
		codes[i] = do(t, h, "GET", "/clock", nil)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected codes %v", codes)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/clock", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("other client should not be limited, got %d", rec.Code)
	}
	if srv.limiter.Clients() != 2 {
		t.Errorf("expected 2 tracked clients, got %d", srv.limiter.Clients())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, Options{})
	h := srv.Handler()
	do(t, h, "GET", "/bodies/earth", nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `route="/bodies/{id}"`) {
		t.Errorf("request metrics should use the route template:\n%s", rec.Body.String())
	}
}

func TestStream(t *testing.T) {
	srv, _ := newTestServer(t, Options{StreamFPS: 50})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	var frame Frame
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(frame.Positions) != catalog.Default().Len() {
		t.Errorf("expected all bodies in frame, got %d", len(frame.Positions))
	}
	if frame.Clock.Running {
		t.Error("clock should start stopped")
	}

	if err := conn.WriteJSON(command{Action: "play"}); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if frame.Clock.Running {
			return
		}
	}
	t.Error("play command did not reach the clock")
}
