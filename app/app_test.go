package app

import (
	"errors"
	"image"
	"image/color"
	"strconv"
	"strings"
	"sync"
	"testing"

	"zwplot/expr"
	"zwplot/hal"
	"zwplot/raster"
	"zwplot/sweep"
	"zwplot/view"
)

type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *testLogger) last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

type testHAL struct {
	log  *testLogger
	fb   hal.Framebuffer
	keys chan hal.KeyEvent
}

func newTestHAL() *testHAL {
	w, h := FramebufferSize(60, 10)
	return &testHAL{
		log:  &testLogger{},
		fb:   hal.NewFramebuffer(w, h),
		keys: make(chan hal.KeyEvent, 64),
	}
}

func (h *testHAL) Logger() hal.Logger           { return h.log }
func (h *testHAL) Display() hal.Display         { return h }
func (h *testHAL) Input() hal.Input             { return h }
func (h *testHAL) Time() hal.Time               { return nil }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h }
func (h *testHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *testHAL) press(code hal.KeyCode)       { h.keys <- hal.KeyEvent{Code: code, Press: true} }
func (h *testHAL) typeText(s string) {
	for _, r := range s {
		h.keys <- hal.KeyEvent{Press: true, Rune: r}
	}
}

func newTestApp(t *testing.T, cfg Config) (*App, *testHAL) {
	t.Helper()
	h := newTestHAL()
	a, err := New(h, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, h
}

func planePixels(a *App) []byte {
	fb := a.fb
	r := a.lay.Z.Union(a.lay.W)
	var out []byte
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := fb.Buffer()[y*fb.StrideBytes():]
		out = append(out, row[r.Min.X*2:r.Max.X*2]...)
	}
	return out
}

func TestFirstStepRunsPass(t *testing.T) {
	a, h := newTestApp(t, Config{Curve: "cos(t) + i*sin(t)", Map: "z^2"})
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if a.Passes() != 1 {
		t.Fatalf("passes=%d err=%v", a.Passes(), a.LastError())
	}
	if got := h.log.last(); got != "zwplot: pass ok mode=parametric samples=1001" {
		t.Fatalf("log=%q", got)
	}
	d := raster.NewDisplay(h.fb)
	// Grid axes meet at the centre of the z-plane.
	c := a.lay.Z.Min.Add(a.lay.Z.Size().Div(2))
	if got := d.At(c.X, c.Y); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("centre=%v", got)
	}
}

func TestEditAndEnter(t *testing.T) {
	a, h := newTestApp(t, Config{Curve: "t"})
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	h.press(hal.KeyEnd)
	h.typeText("*i")
	h.press(hal.KeyEnter)
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := a.Field(FieldCurve); got != "t*i" {
		t.Fatalf("curve=%q", got)
	}
	if a.Passes() != 2 {
		t.Fatalf("passes=%d err=%v", a.Passes(), a.LastError())
	}
}

func TestFailedPassKeepsFrame(t *testing.T) {
	a, h := newTestApp(t, Config{Curve: "t + i*t"})
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	before := planePixels(a)

	h.press(hal.KeyEnd)
	h.typeText("+this.constructor")
	h.press(hal.KeyEnter)
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !errors.Is(a.LastError(), expr.ErrParse) {
		t.Fatalf("err=%v, want ErrParse", a.LastError())
	}
	if got := planePixels(a); string(got) != string(before) {
		t.Fatalf("frame changed after failed pass")
	}
	if !strings.HasPrefix(h.log.last(), "zwplot: pass error field=curve err=") {
		t.Fatalf("log=%q", h.log.last())
	}
	lines := a.Console().Lines()
	if len(lines) == 0 || !strings.HasPrefix(lines[len(lines)-1], "pass error") {
		t.Fatalf("console=%q", lines)
	}

	h.press(hal.KeyEscape)
	_ = a.Step()
	if got := a.Field(FieldCurve); got != "t + i*t" {
		t.Fatalf("after escape curve=%q", got)
	}
}

func TestSampleErrorFocusesField(t *testing.T) {
	a, _ := newTestApp(t, Config{Curve: "t", Map: "1/z", Sweep: sweep.Parametric{TMin: -1, TMax: 1, Step: 0.5}})
	a.focus = 0
	err := a.Run()
	var se *sweep.SampleError
	if !errors.As(err, &se) || se.Index != 2 {
		t.Fatalf("err=%v", err)
	}
	if a.Focus() != FieldMap {
		t.Fatalf("focus=%q", a.Focus())
	}
}

func TestBadViewIsConfigError(t *testing.T) {
	a, _ := newTestApp(t, Config{Curve: "t", WView: "1,-1,0,1"})
	if err := a.Run(); !errors.Is(err, view.ErrConfig) {
		t.Fatalf("err=%v", err)
	}
	if a.Focus() != FieldWView {
		t.Fatalf("focus=%q", a.Focus())
	}
	if err := a.SetField(FieldWView, "x,1,0,1"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := a.Run(); !errors.Is(err, view.ErrParse) {
		t.Fatalf("err=%v", err)
	}
}

func TestZFuncTakesPrecedence(t *testing.T) {
	a, h := newTestApp(t, Config{Curve: "t", ZFunc: "z + i", ZView: "-1,1,-1,1"})
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "samples=" + strconv.Itoa(a.lay.Z.Dx()+1)
	if got := h.log.last(); got != "zwplot: pass ok mode=zfunc "+want {
		t.Fatalf("log=%q", got)
	}
}

func TestEmptyInputClears(t *testing.T) {
	a, h := newTestApp(t, Config{})
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := h.log.last(); got != "zwplot: pass ok mode=clear samples=0" {
		t.Fatalf("log=%q", got)
	}
}

func TestTabCyclesFields(t *testing.T) {
	a, _ := newTestApp(t, Config{Curve: "t"})
	var seen []string
	for i := 0; i < len(fieldOrder)+1; i++ {
		seen = append(seen, a.Focus())
		a.HandleKey(hal.KeyEvent{Code: hal.KeyTab, Press: true})
	}
	want := "curve zfunc map zview wview curve"
	if got := strings.Join(seen, " "); got != want {
		t.Fatalf("focus order %q, want %q", got, want)
	}
	a.HandleKey(hal.KeyEvent{Code: hal.KeyUp, Press: true})
	if a.Focus() != FieldWView {
		t.Fatalf("up focus=%q", a.Focus())
	}
}

func TestPanicHalts(t *testing.T) {
	a, h := newTestApp(t, Config{Curve: "t"})
	a.fields = nil
	h.press(hal.KeyEnter)
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !a.halted {
		t.Fatalf("not halted")
	}
	found := false
	for _, l := range h.log.lines {
		if strings.HasPrefix(l, "zwplot: panic") {
			found = true
		}
	}
	if !found {
		t.Fatalf("log=%q", h.log.lines)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step after halt: %v", err)
	}
}

func TestInputLineEditing(t *testing.T) {
	var l inputLine
	for _, r := range "sin(z)" {
		l.Insert(r)
	}
	l.Home()
	l.Delete()
	l.Delete()
	l.Delete()
	for _, r := range "cos" {
		l.Insert(r)
	}
	l.End()
	l.Backspace()
	l.Insert(')')
	l.Left()
	l.Insert('*')
	l.Insert('2')
	if got := l.String(); got != "cos(z*2)" {
		t.Fatalf("got %q", got)
	}
	if l.Insert('\n') {
		t.Fatalf("inserted control character")
	}
	rs, cur := l.window(4)
	if string(rs) != "z*2)" || cur != 3 {
		t.Fatalf("window=%q cur=%d", string(rs), cur)
	}
}

func TestLogValueQuoting(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"plain", "plain"},
		{"two words", `"two words"`},
		{"", `""`},
		{42, "42"},
		{errors.New("bad input"), `"bad input"`},
	}
	for _, tt := range tests {
		if got := logValue(tt.in); got != tt.want {
			t.Fatalf("logValue(%v)=%s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestConsoleKeepsNewestLines(t *testing.T) {
	h := newTestHAL()
	d := raster.NewDisplay(h.fb)
	f := raster.DefaultFont()
	c := NewConsole(d, image.Rect(0, 0, 120, 4*int(f.Height)), f)
	for i := 0; i < 6; i++ {
		c.Println("line " + strconv.Itoa(i))
	}
	got := strings.Join(c.Lines(), ",")
	if got != "line 2,line 3,line 4,line 5" {
		t.Fatalf("lines=%q", got)
	}
	c.Println(strings.Repeat("x", 500))
	lines := c.Lines()
	if n := len([]rune(lines[len(lines)-1])); n >= f.Cols(120) {
		t.Fatalf("line not clipped: %d runes", n)
	}
}

func TestLayoutFits(t *testing.T) {
	w, h := FramebufferSize(DefaultPlaneSize, 10)
	l := computeLayout(w, h, 10)
	if l.Z.Dx() != DefaultPlaneSize || l.Z.Dy() != DefaultPlaneSize || l.W.Dx() != DefaultPlaneSize {
		t.Fatalf("planes z=%v w=%v", l.Z, l.W)
	}
	if l.Z.Overlaps(l.W) || l.Input.Overlaps(l.Z) || l.Console.Overlaps(l.Input) {
		t.Fatalf("overlap: %+v", l)
	}
	if l.Console.Max.Y > h || l.W.Max.X > w {
		t.Fatalf("layout exceeds %dx%d: %+v", w, h, l)
	}
}
