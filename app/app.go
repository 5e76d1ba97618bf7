// Package app is the interactive plotter: two planes, an input line and a
// status console on one framebuffer.
package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"zwplot/expr"
	"zwplot/hal"
	"zwplot/internal/buildinfo"
	"zwplot/raster"
	"zwplot/render"
	"zwplot/sweep"
	"zwplot/view"
)

var (
	colorBG      = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorFG      = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim     = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorInputBG = color.RGBA{A: 0xFF}
	colorPlaneBG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Field names, in Tab order.
const (
	FieldCurve = "curve"
	FieldZFunc = "zfunc"
	FieldMap   = "map"
	FieldZView = "zview"
	FieldWView = "wview"
)

var fieldOrder = [...]string{FieldCurve, FieldZFunc, FieldMap, FieldZView, FieldWView}

// Config is the initial session. Views are "minX,maxX,minY,maxY" text; empty
// fields take their defaults.
type Config struct {
	Curve string
	ZFunc string
	Map   string
	ZView string
	WView string
	Sweep sweep.Parametric
	Style render.Style
}

// App owns the framebuffer layout and runs render passes on request.
type App struct {
	log   hal.Logger
	fb    hal.Framebuffer
	d     *raster.Display
	kbd   hal.Keyboard
	ticks <-chan uint64
	font  raster.Font
	lay   layout

	z, w *raster.Surface
	con  *Console

	fields []*field
	focus  int
	sweep  sweep.Parametric
	style  render.Style

	pending bool
	dirty   bool
	halted  bool
	now     uint64
	caret   bool
	passes  int
	lastErr error
}

// New lays out the framebuffer of h and schedules the first render pass.
func New(h hal.HAL, cfg Config) (*App, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}

	a := &App{
		log:     h.Logger(),
		fb:      fb,
		d:       raster.NewDisplay(fb),
		font:    raster.DefaultFont(),
		sweep:   cfg.Sweep,
		style:   cfg.Style,
		pending: true,
		dirty:   true,
		caret:   true,
	}
	if a.log == nil {
		a.log = hal.NewWriterLogger(io.Discard)
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}
	if a.sweep == (sweep.Parametric{}) {
		a.sweep = sweep.DefaultParametric()
	}
	if a.style == (render.Style{}) {
		a.style = render.DefaultStyle()
	}

	a.lay = computeLayout(fb.Width(), fb.Height(), int(a.font.Height))
	a.z = raster.NewSurface(a.d, a.lay.Z, colorPlaneBG)
	a.w = raster.NewSurface(a.d, a.lay.W, colorPlaneBG)
	a.con = NewConsole(a.d, a.lay.Console, a.font)

	texts := map[string]string{
		FieldCurve: cfg.Curve,
		FieldZFunc: cfg.ZFunc,
		FieldMap:   orDefault(cfg.Map, "z"),
		FieldZView: orDefault(cfg.ZView, view.Default().String()),
		FieldWView: orDefault(cfg.WView, view.Default().String()),
	}
	for _, name := range fieldOrder {
		a.fields = append(a.fields, newField(name, texts[name]))
	}
	if cfg.Curve == "" && cfg.ZFunc != "" {
		a.focus = 1
	}

	fb.ClearRGB(colorBG.R, colorBG.G, colorBG.B)
	a.con.Redraw()
	a.logf("start", "version", buildinfo.Short(), "fb", fmt.Sprintf("%dx%d", fb.Width(), fb.Height()), "plane", a.lay.Z.Dx())
	return a, nil
}

// NewWithConfig returns the step function the host runners drive.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a, err := New(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("zwplot: init error err=" + strconv.Quote(err.Error()))
		}
		return func() error { return err }
	}
	return a.Step
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// Step handles pending input, runs at most one render pass and redraws the
// input line. A panic paints the panic screen and halts the app.
func (a *App) Step() (err error) {
	if a.halted {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			a.panicked(r, debug.Stack())
		}
	}()

	a.pollTicks()
	a.pollKeys()
	if a.pending {
		a.pending = false
		_ = a.Run()
		a.dirty = true
	}
	if a.dirty {
		a.dirty = false
		a.drawInput()
		return a.fb.Present()
	}
	return nil
}

func (a *App) pollTicks() {
	if a.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-a.ticks:
			a.now = seq
		default:
			if on := (a.now/500)%2 == 0; on != a.caret {
				a.caret = on
				a.dirty = true
			}
			return
		}
	}
}

func (a *App) pollKeys() {
	if a.kbd == nil {
		return
	}
	ch := a.kbd.Events()
	if ch == nil {
		return
	}
	for {
		select {
		case ev := <-ch:
			a.HandleKey(ev)
		default:
			return
		}
	}
}

// HandleKey applies one key event to the focused field.
func (a *App) HandleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	f := a.fields[a.focus]
	n := len(a.fields)
	switch ev.Code {
	case hal.KeyUnknown:
		if ev.Rune == 0 {
			return
		}
		f.in.Insert(ev.Rune)
	case hal.KeyTab, hal.KeyDown:
		a.focus = (a.focus + 1) % n
	case hal.KeyUp:
		a.focus = (a.focus - 1 + n) % n
	case hal.KeyEnter:
		a.pending = true
	case hal.KeyEscape:
		f.revert()
	case hal.KeyBackspace:
		f.in.Backspace()
	case hal.KeyDelete:
		f.in.Delete()
	case hal.KeyLeft:
		f.in.Left()
	case hal.KeyRight:
		f.in.Right()
	case hal.KeyHome:
		f.in.Home()
	case hal.KeyEnd:
		f.in.End()
	default:
		return
	}
	a.dirty = true
}

func (a *App) field(name string) (*field, int) {
	for i, f := range a.fields {
		if f.name == name {
			return f, i
		}
	}
	return nil, -1
}

// Field returns the current text of the named field.
func (a *App) Field(name string) string {
	if f, _ := a.field(name); f != nil {
		return f.Text()
	}
	return ""
}

// SetField replaces the text of the named field. It does not run a pass.
func (a *App) SetField(name, text string) error {
	f, _ := a.field(name)
	if f == nil {
		return fmt.Errorf("app: unknown field %q", name)
	}
	f.in.Set(text)
	a.dirty = true
	return nil
}

// Focus returns the name of the field being edited.
func (a *App) Focus() string { return a.fields[a.focus].name }

func (a *App) Console() *Console { return a.con }

// Passes returns how many render passes have succeeded.
func (a *App) Passes() int { return a.passes }

func (a *App) LastError() error { return a.lastErr }

// Run compiles the current fields and runs one render pass. On error both
// planes keep their previous frame and the failing field takes focus.
func (a *App) Run() error {
	pass, mode, name, err := a.buildPass()
	var res render.Result
	if err == nil {
		res, err = pass.Run()
		if err != nil {
			name = stageField(err, mode)
		}
	}
	a.lastErr = err
	if err != nil {
		if _, i := a.field(name); i >= 0 {
			a.focus = i
		}
		a.logf("pass error", "field", name, "err", err)
		return err
	}

	for _, f := range a.fields {
		f.good = f.Text()
	}
	a.passes++
	a.drawTitles(pass.Z.View, pass.W.View)
	a.logf("pass ok", "mode", mode, "samples", len(res.Z))
	return nil
}

func (a *App) buildPass() (pass *render.Pass, mode, name string, err error) {
	zv, err := view.Parse(a.Field(FieldZView))
	if err != nil {
		return nil, "", FieldZView, err
	}
	wv, err := view.Parse(a.Field(FieldWView))
	if err != nil {
		return nil, "", FieldWView, err
	}
	m, err := expr.Compile(orDefault(a.Field(FieldMap), "z"), "z")
	if err != nil {
		return nil, "", FieldMap, err
	}

	pass = &render.Pass{
		Z:     render.Plane{Surface: a.z, View: zv},
		W:     render.Plane{Surface: a.w, View: wv},
		Map:   m,
		Style: a.style,
	}
	if src := strings.TrimSpace(a.Field(FieldZFunc)); src != "" {
		f, err := expr.Compile(src, "z")
		if err != nil {
			return nil, "", FieldZFunc, err
		}
		pass.Curve = f
		pass.Sweep = sweep.PixelAligned{View: zv, Width: a.z.Width()}
		return pass, FieldZFunc, "", nil
	}
	if src := strings.TrimSpace(a.Field(FieldCurve)); src != "" {
		f, err := expr.Compile(src, "t")
		if err != nil {
			return nil, "", FieldCurve, err
		}
		pass.Curve = f
		pass.Sweep = a.sweep
		return pass, "parametric", "", nil
	}
	return pass, "clear", "", nil
}

func stageField(err error, mode string) string {
	var se *render.StageError
	if !errors.As(err, &se) {
		return ""
	}
	switch se.Stage {
	case "z-plane":
		return FieldZView
	case "w-plane":
		return FieldWView
	case "map":
		return FieldMap
	}
	if mode == FieldZFunc {
		return FieldZFunc
	}
	return FieldCurve
}

func (a *App) drawTitles(zv, wv view.Config) {
	for _, t := range []struct {
		r     image.Rectangle
		label string
		v     view.Config
	}{
		{a.lay.ZTitle, "z-plane ", zv},
		{a.lay.WTitle, "w-plane ", wv},
	} {
		a.d.FillRectangle(int16(t.r.Min.X), int16(t.r.Min.Y), int16(t.r.Dx()), int16(t.r.Dy()), colorBG)
		a.d.DrawText(a.font, t.r.Min.X, t.r.Min.Y, t.label+t.v.String(), colorFG, t.r, -1)
	}
}

func (a *App) drawInput() {
	r := a.lay.Input
	a.d.FillRectangle(int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()), colorInputBG)

	f := a.fields[a.focus]
	prompt := f.name + "> "
	x := r.Min.X
	x += a.d.DrawText(a.font, x, r.Min.Y, prompt, colorDim, r, -1) * int(a.font.Width)

	cols := a.font.Cols(r.Max.X-x) - 1
	rs, cur := f.in.window(cols)
	a.d.DrawText(a.font, x, r.Min.Y, string(rs), colorFG, r, cols)
	if !a.caret || cols <= 0 {
		return
	}
	cx := x + cur*int(a.font.Width)
	a.d.FillRectangle(int16(cx), int16(r.Min.Y), a.font.Width, a.font.Height, colorFG)
	if cur < len(rs) {
		a.d.DrawText(a.font, cx, r.Min.Y, string(rs[cur]), colorInputBG, r, 1)
	}
}

// logf writes "zwplot: <event> k=v ..." to the logger and mirrors it, without
// the prefix, to the console.
func (a *App) logf(event string, kv ...any) {
	var b strings.Builder
	b.WriteString("zwplot: ")
	b.WriteString(event)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%s", kv[i], logValue(kv[i+1]))
	}
	line := b.String()
	a.log.WriteLineString(line)
	if a.con != nil {
		a.con.Println(strings.TrimPrefix(line, "zwplot: "))
	}
}

func logValue(v any) string {
	var s string
	switch x := v.(type) {
	case error:
		return strconv.Quote(x.Error())
	case string:
		s = x
	default:
		return fmt.Sprint(v)
	}
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		return strconv.Quote(s)
	}
	return s
}
