package freehand

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}},
		{"#1e90ff", color.NRGBA{0x1e, 0x90, 0xff, 0xff}},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}},
		{"DodgerBlue", color.NRGBA{0x1e, 0x90, 0xff, 0xff}},
		{" black ", color.NRGBA{0, 0, 0, 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %s", tt.in, err)
			continue
		}
		diff(t, tt.want, got)
	}

	for _, in := range []string{"#12345", "#gggggg", "nocolor", ""} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestHexColor(t *testing.T) {
	if got := HexColor(color.NRGBA{0x1e, 0x90, 0xff, 0xff}); got != "#1e90ff" {
		t.Errorf("got %q, want #1e90ff", got)
	}
	if got := HexColor(color.NRGBA{1, 2, 3, 4}); got != "#01020304" {
		t.Errorf("got %q, want #01020304", got)
	}
}

func TestLoadBrushDefaults(t *testing.T) {
	b, err := LoadBrush(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DefaultBrush, b)
}

func TestLoadBrush(t *testing.T) {
	const doc = `
color = "#1e90ff"
width = 4
cap = "butt"
join = "miter"
miter_limit = 6
dash = [6, 3]

[shadow]
color = "#00000080"
blur = 4
offset_x = 2
offset_y = -1
`
	b, err := LoadBrush(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := Brush{
		Color:       color.NRGBA{0x1e, 0x90, 0xff, 0xff},
		Width:       4,
		Cap:         ButtCap,
		Join:        MiterJoin,
		MiterLimit:  6,
		DashPattern: []float64{6, 3},
		Shadow: &Shadow{
			Color:   color.NRGBA{0, 0, 0, 0x80},
			Blur:    4,
			OffsetX: 2,
			OffsetY: -1,
		},
	}
	diff(t, want, b)
}

func TestLoadBrushErrors(t *testing.T) {
	docs := []string{
		`colour = "red"`,
		`width = -1`,
		`cap = "pointy"`,
		`join = 3`,
		`miter_limit = 0.5`,
		`dash = [1, -1]`,
		`color = "#zzz"`,
		"[shadow]\nblur = -2",
		"[shadow]\nradius = 2",
		`width = `,
	}
	for _, doc := range docs {
		if _, err := LoadBrush(strings.NewReader(doc)); err == nil {
			t.Errorf("loading %q succeeded, want error", doc)
		}
	}
}

func TestBrushClone(t *testing.T) {
	b := DefaultBrush.WithDashes(1, 2).WithShadow(&Shadow{Blur: 1})
	c := b.Clone()
	c.DashPattern[0] = 9
	c.Shadow.Blur = 9
	if b.DashPattern[0] != 1 || b.Shadow.Blur != 1 {
		t.Error("modifying a clone modified the original")
	}
}

func TestCapJoinText(t *testing.T) {
	for _, c := range []Cap{ButtCap, SquareCap, RoundCap} {
		text, _ := c.MarshalText()
		var got Cap
		if err := got.UnmarshalText(text); err != nil || got != c {
			t.Errorf("%v: got %v, %v", c, got, err)
		}
	}
	for _, j := range []Join{BevelJoin, MiterJoin, RoundJoin} {
		text, _ := j.MarshalText()
		var got Join
		if err := got.UnmarshalText(text); err != nil || got != j {
			t.Errorf("%v: got %v, %v", j, got, err)
		}
	}
}
