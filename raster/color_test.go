package raster

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#F00", color.NRGBA{R: 255, A: 255}},
		{"#0f08", color.NRGBA{G: 255, A: 0x88}},
		{"#336699", color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255}},
		{"#33669980", color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0x80}},
		{"red", color.NRGBA{R: 255, A: 255}},
		{"  CornflowerBlue ", color.NRGBA{R: 100, G: 149, B: 237, A: 255}},
		{"transparent", color.NRGBA{}},
		{"none", color.NRGBA{}},
		{"", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			got := color.NRGBAModel.Convert(c).(color.NRGBA)
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"#12", "#12345", "#gggggg", "notacolor", "#"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseColor(\"bogus\") did not panic")
		}
	}()
	MustParseColor("bogus")
}
