package render

import (
	"image/color"
	"strconv"
)

type OpKind uint8

const (
	OpClear OpKind = iota
	OpMoveTo
	OpLineTo
	OpStroke
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpStroke:
		return "stroke"
	default:
		return "op(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is one recorded primitive. X and Y are zero for clear and stroke.
type Op struct {
	Kind OpKind
	X, Y float64
}

func (o Op) String() string {
	switch o.Kind {
	case OpMoveTo, OpLineTo:
		return o.Kind.String() + " " + fmtCoord(o.X) + " " + fmtCoord(o.Y)
	default:
		return o.Kind.String()
	}
}

func fmtCoord(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }

// Recorder is a Surface that records primitives in memory.
type Recorder struct {
	W, H int
	Ops  []Op

	// Colors and widths seen through SetStrokeColor and SetLineWidth, in order.
	Colors []color.RGBA
	Widths []int
}

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Clear()              { r.Ops = append(r.Ops, Op{Kind: OpClear}) }
func (r *Recorder) MoveTo(x, y float64) { r.Ops = append(r.Ops, Op{Kind: OpMoveTo, X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { r.Ops = append(r.Ops, Op{Kind: OpLineTo, X: x, Y: y}) }
func (r *Recorder) Stroke()             { r.Ops = append(r.Ops, Op{Kind: OpStroke}) }
func (r *Recorder) Width() int          { return r.W }
func (r *Recorder) Height() int         { return r.H }

func (r *Recorder) SetStrokeColor(c color.RGBA) { r.Colors = append(r.Colors, c) }
func (r *Recorder) SetLineWidth(w int)          { r.Widths = append(r.Widths, w) }

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Colors = r.Colors[:0]
	r.Widths = r.Widths[:0]
}

// Count returns how many recorded ops have kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
