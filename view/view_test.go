package view

import (
	"errors"
	"math"
	"testing"

	"zwplot/cnum"
)

func TestOriginMapsToCenter(t *testing.T) {
	c := Config{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	x, y := ToScreen(cnum.Zero, c, 100, 100)
	if x != 50 || y != 50 {
		t.Fatalf("origin -> (%v, %v), want (50, 50)", x, y)
	}
}

func TestImaginaryAxisPointsUp(t *testing.T) {
	c := Config{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	_, yTop := ToScreen(cnum.New(0, 1), c, 100, 100)
	_, yBottom := ToScreen(cnum.New(0, -1), c, 100, 100)
	if yTop != 0 || yBottom != 100 {
		t.Fatalf("top=%v bottom=%v", yTop, yBottom)
	}
}

func TestNoClamping(t *testing.T) {
	c := Config{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	x, y := ToScreen(cnum.New(3, -2), c, 10, 10)
	if x != 30 || y != 30 {
		t.Fatalf("got (%v, %v), want (30, 30)", x, y)
	}
}

func TestRoundTrip(t *testing.T) {
	c := Config{MinX: -3, MaxX: 7, MinY: -0.5, MaxY: 2.5}
	for _, p := range []cnum.Complex{cnum.Zero, cnum.New(1.25, -0.75), cnum.New(-100, 40), cnum.New(6.9, 2.4)} {
		x, y := ToScreen(p, c, 320, 200)
		back := FromScreen(x, y, c, 320, 200)
		if math.Abs(back.Re-p.Re) > 1e-9 || math.Abs(back.Im-p.Im) > 1e-9 {
			t.Fatalf("round trip %v -> (%v, %v) -> %v", p, x, y, back)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		ok   bool
	}{
		{"default", Default(), true},
		{"equal x", Config{MinX: 1, MaxX: 1, MinY: 0, MaxY: 1}, false},
		{"inverted x", Config{MinX: 2, MaxX: 1, MinY: 0, MaxY: 1}, false},
		{"equal y", Config{MinX: 0, MaxX: 1, MinY: 1, MaxY: 1}, false},
		{"inverted y", Config{MinX: 0, MaxX: 1, MinY: 5, MaxY: -5}, false},
		{"nan", Config{MinX: math.NaN(), MaxX: 1, MinY: 0, MaxY: 1}, false},
		{"inf", Config{MinX: 0, MaxX: math.Inf(1), MinY: 0, MaxY: 1}, false},
		{"x span overflows", Config{MinX: -1e308, MaxX: 1e308, MinY: 0, MaxY: 1}, false},
		{"y span overflows", Config{MinX: 0, MaxX: 1, MinY: -math.MaxFloat64, MaxY: math.MaxFloat64}, false},
		{"wide but finite", Config{MinX: -1e307, MaxX: 1e307, MinY: 0, MaxY: 1}, true},
	}
	for _, tt := range tests {
		err := tt.c.Validate()
		if tt.ok && err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrConfig) {
			t.Fatalf("%s: err=%v, want ErrConfig", tt.name, err)
		}
	}
}

func TestParse(t *testing.T) {
	c, err := Parse(" -2, 2,-1.5 ,1.5")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c != (Config{MinX: -2, MaxX: 2, MinY: -1.5, MaxY: 1.5}) {
		t.Fatalf("got %+v", c)
	}
	if back, err := Parse(c.String()); err != nil || back != c {
		t.Fatalf("Parse(String())=%+v, %v", back, err)
	}

	for _, s := range []string{"", "1,2,3", "a,1,0,1", "0,1,0,1,2", "0,,0,1"} {
		if _, err := Parse(s); !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) err=%v, want ErrParse", s, err)
		}
	}
	if _, err := Parse("1,0,0,1"); !errors.Is(err, ErrConfig) {
		t.Fatalf("inverted err=%v, want ErrConfig", err)
	}
}
