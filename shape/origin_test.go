package shape

import (
	"errors"
	"testing"

	"github.com/gogpu/dyncanvas/geom"
)

func TestResolveOrigin(t *testing.T) {
	const w, h = 100, 50
	tests := []struct {
		origin string
		want   geom.Vec
	}{
		{"", geom.Pt(50, 25)},
		{"center center", geom.Pt(50, 25)},
		{"left top", geom.Pt(0, 0)},
		{"right bottom", geom.Pt(100, 50)},
		{"top left", geom.Pt(0, 0)},
		{"bottom right", geom.Pt(100, 50)},
		{"LEFT Top", geom.Pt(0, 0)},
		{"left", geom.Pt(0, 25)},
		{"10", geom.Pt(10, 25)},
		{"bottom", geom.Pt(50, 50)},
		{"right center", geom.Pt(100, 25)},
		{"center bottom", geom.Pt(50, 50)},
		{"10 20", geom.Pt(10, 20)},
		{"-5 7", geom.Pt(-5, 7)},
		{"12px 3.9", geom.Pt(12, 3)},
		{"10 bottom", geom.Pt(10, 50)},
		{"  right   top  ", geom.Pt(100, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			got, err := ResolveOrigin(tt.origin, w, h)
			if err != nil {
				t.Fatalf("ResolveOrigin(%q) error = %v", tt.origin, err)
			}
			if got != tt.want {
				t.Errorf("ResolveOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestResolveOriginInvalid(t *testing.T) {
	for _, origin := range []string{"middle", "left up", "px 3", "left top extra", "-"} {
		if _, err := ResolveOrigin(origin, 10, 10); !errors.Is(err, ErrInvalidOrigin) {
			t.Errorf("ResolveOrigin(%q) error = %v, want ErrInvalidOrigin", origin, err)
		}
	}
}
