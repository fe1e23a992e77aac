package curveviz

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

// colorsEqual compares two colors component-wise.
func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGBA
		wantErr bool
	}{
		{"short", "#f00", RGB(1, 0, 0), false},
		{"short alpha", "f008", NRGBA(1, 0, 0, 136.0/255), false},
		{"long", "#00ff00", RGB(0, 1, 0), false},
		{"long alpha", "0000ff80", NRGBA(0, 0, 1, 128.0/255), false},
		{"upper case", "#FFFFFF", White, false},
		{"bad length", "#12345", RGBA{}, true},
		{"bad digit", "#gg0000", RGBA{}, true},
		{"empty", "", RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.in, err)
			}
			if !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexFallback(t *testing.T) {
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(invalid) = %+v, want Black", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := NRGBA(1, 0.1, 0.1, 0.25)
	got := Hex(c.Hex())
	if !colorsEqual(got, c, 1.0/255) {
		t.Errorf("Hex(%q) = %+v, want %+v", c.Hex(), got, c)
	}
	if c.HexRGB() != "#ff1a1a" {
		t.Errorf("HexRGB() = %q, want #ff1a1a", c.HexRGB())
	}
}

func TestRGBALerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGB(0.5, 0.5, 0.5)
	if !colorsEqual(got, want, 1e-9) {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
}

func TestRGBAOver(t *testing.T) {
	got := NRGBA(1, 0, 0, 0.5).Over(Black)
	want := RGB(0.5, 0, 0)
	if !colorsEqual(got, want, 1e-9) {
		t.Errorf("Over = %+v, want %+v", got, want)
	}
}

func TestColorConversion(t *testing.T) {
	c := NRGBA(1, 0.5, 0, 0.5)
	n := c.Color().(color.NRGBA)
	if n.R != 255 || n.G != 127 || n.B != 0 || n.A != 127 {
		t.Errorf("Color() = %+v", n)
	}
	back := FromColor(n)
	if !colorsEqual(back, c, 1.0/255+1e-9) {
		t.Errorf("FromColor(Color()) = %+v, want %+v", back, c)
	}
}

func TestApproxEqual(t *testing.T) {
	a := NRGBA(0.5, 0.5, 0.5, 1)
	if !a.ApproxEqual(NRGBA(0.5+1e-9, 0.5, 0.5, 1)) {
		t.Error("nearly identical colors should compare equal")
	}
	if a.ApproxEqual(NRGBA(0.51, 0.5, 0.5, 1)) {
		t.Error("different colors should not compare equal")
	}
}
