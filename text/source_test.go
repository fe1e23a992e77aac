package text

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrEmptyFontData},
		{"garbage", []byte("not a font"), nil},
		{"goregular", goregular.TTF, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewFontSource(tt.data)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			case tt.name == "garbage":
				if err == nil {
					t.Fatal("expected parse error")
				}
			default:
				if err != nil {
					t.Fatalf("NewFontSource: %v", err)
				}
				if src.Name() != "Go" {
					t.Errorf("Name() = %q, want %q", src.Name(), "Go")
				}
			}
		})
	}
}

func TestNewFontSourceWithName(t *testing.T) {
	src, err := NewFontSource(goregular.TTF, WithName("Labels"))
	if err != nil {
		t.Fatal(err)
	}
	if src.Name() != "Labels" {
		t.Errorf("Name() = %q, want Labels", src.Name())
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFontSourceFromFile(path); err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultSourceShared(t *testing.T) {
	a, err := DefaultSource()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := DefaultSource()
	if a != b {
		t.Error("DefaultSource returned different sources")
	}
}

func TestFaceCache(t *testing.T) {
	src, err := NewFontSource(goregular.TTF, WithCacheLimit(2))
	if err != nil {
		t.Fatal(err)
	}

	f1, _ := src.Face(9)
	f2, _ := src.Face(9)
	if f1 != f2 {
		t.Error("same size and options should return the cached face")
	}
	f3, _ := src.Face(9, WithHinting(HintingNone))
	if f3 == f1 {
		t.Error("different options should return a different face")
	}
	if _, err := src.Face(12); err != nil {
		t.Fatal(err)
	}
	if got := src.CachedFaces(); got != 2 {
		t.Errorf("CachedFaces() = %d, want 2", got)
	}

	// Evicted faces keep working.
	if w := f1.Advance("x"); w <= 0 {
		t.Errorf("evicted face Advance = %v, want > 0", w)
	}
}

func TestFaceInvalidSize(t *testing.T) {
	src, _ := NewFontSource(goregular.TTF)
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := src.Face(size)
		var sizeErr *InvalidSizeError
		if !errors.As(err, &sizeErr) {
			t.Errorf("Face(%v) err = %v, want InvalidSizeError", size, err)
		}
	}
}

func TestFontSourceClose(t *testing.T) {
	src, _ := NewFontSource(goregular.TTF)
	if _, err := src.Face(9); err != nil {
		t.Fatal(err)
	}
	if err := src.Close(); err != nil {
		t.Fatal(err)
	}
	if src.CachedFaces() != 0 {
		t.Error("Close should clear the face cache")
	}
	if _, err := src.Face(9); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("Face after Close err = %v, want ErrSourceClosed", err)
	}
}
