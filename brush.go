package freehand

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// A straight line connecting the segments.
	BevelJoin Join = iota
	// The segments are extended to their natural intersection point.
	MiterJoin
	// An arc between the segments.
	RoundJoin
)

func (j Join) String() string {
	switch j {
	case BevelJoin:
		return "bevel"
	case MiterJoin:
		return "miter"
	case RoundJoin:
		return "round"
	default:
		return fmt.Sprintf("Join(%d)", int(j))
	}
}

func (j Join) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

func (j *Join) UnmarshalText(b []byte) error {
	switch string(b) {
	case "bevel":
		*j = BevelJoin
	case "miter":
		*j = MiterJoin
	case "round":
		*j = RoundJoin
	default:
		return fmt.Errorf("unknown line join %q", b)
	}
	return nil
}

// Cap defines the shape to be drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap with dimensions equal to half the stroke width.
	SquareCap
	// Rounded cap with radius equal to half the stroke width.
	RoundCap
)

func (c Cap) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return fmt.Sprintf("Cap(%d)", int(c))
	}
}

func (c Cap) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Cap) UnmarshalText(b []byte) error {
	switch string(b) {
	case "butt":
		*c = ButtCap
	case "square":
		*c = SquareCap
	case "round":
		*c = RoundCap
	default:
		return fmt.Errorf("unknown line cap %q", b)
	}
	return nil
}

// Shadow describes a drop shadow attached to a committed stroke.
type Shadow struct {
	Color   color.NRGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
	// AffectStroke is set on shadows of committed strokes, so that the shadow is
	// cast by the stroke outline.
	AffectStroke bool
}

// Brush describes the visual style of a stroke. It is read-only for the duration
// of a stroke session.
type Brush struct {
	Color color.NRGBA
	// Width of the stroke.
	Width float64
	// Style for capping both ends of the stroke.
	Cap Cap
	// Style for connecting segments of the stroke.
	Join Join
	// Limit for miter joins.
	MiterLimit float64
	// Lengths of dashes in alternating on/off order. Nil means a solid stroke.
	DashPattern []float64
	// Optional shadow.
	Shadow *Shadow
}

var DefaultBrush = Brush{
	Color:      color.NRGBA{A: 0xff},
	Width:      1.0,
	Cap:        RoundCap,
	Join:       RoundJoin,
	MiterLimit: 10.0,
}

func (b Brush) WithColor(c color.NRGBA) Brush       { b.Color = c; return b }
func (b Brush) WithWidth(width float64) Brush       { b.Width = width; return b }
func (b Brush) WithCap(cap Cap) Brush               { b.Cap = cap; return b }
func (b Brush) WithJoin(join Join) Brush            { b.Join = join; return b }
func (b Brush) WithMiterLimit(limit float64) Brush  { b.MiterLimit = limit; return b }
func (b Brush) WithDashes(pattern ...float64) Brush { b.DashPattern = pattern; return b }
func (b Brush) WithShadow(shadow *Shadow) Brush     { b.Shadow = shadow; return b }

// Clone returns a copy of b that shares no memory with it.
func (b Brush) Clone() Brush {
	if b.DashPattern != nil {
		b.DashPattern = append([]float64(nil), b.DashPattern...)
	}
	if b.Shadow != nil {
		s := *b.Shadow
		b.Shadow = &s
	}
	return b
}

// Validate reports the first inconsistency in the brush.
func (b Brush) Validate() error {
	if b.Width < 0 {
		return fmt.Errorf("negative stroke width %g", b.Width)
	}
	if b.Cap < ButtCap || b.Cap > RoundCap {
		return fmt.Errorf("invalid line cap %v", b.Cap)
	}
	if b.Join < BevelJoin || b.Join > RoundJoin {
		return fmt.Errorf("invalid line join %v", b.Join)
	}
	if b.MiterLimit < 1 {
		return fmt.Errorf("miter limit %g is less than 1", b.MiterLimit)
	}
	for _, d := range b.DashPattern {
		if d < 0 {
			return fmt.Errorf("negative dash length %g", d)
		}
	}
	if b.Shadow != nil && b.Shadow.Blur < 0 {
		return fmt.Errorf("negative shadow blur %g", b.Shadow.Blur)
	}
	return nil
}

// HexColor formats c as #rrggbb, or #rrggbbaa if it is not opaque.
func HexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa hex notation as well as the SVG
// 1.1 color keywords.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		// colornames are opaque, so RGBA and NRGBA agree
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

type shadowConfig struct {
	Color   string  `toml:"color"`
	Blur    float64 `toml:"blur"`
	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`
}

type brushConfig struct {
	Color      *string       `toml:"color"`
	Width      *float64      `toml:"width"`
	Cap        *Cap          `toml:"cap"`
	Join       *Join         `toml:"join"`
	MiterLimit *float64      `toml:"miter_limit"`
	Dash       []float64     `toml:"dash"`
	Shadow     *shadowConfig `toml:"shadow"`
}

// LoadBrush reads a brush from a TOML document. Keys that are absent keep their
// value from [DefaultBrush]; unknown keys are an error.
//
//	color = "#1e90ff"
//	width = 4
//	cap = "round"
//	join = "miter"
//	miter_limit = 10
//	dash = [6, 3]
//
//	[shadow]
//	color = "#00000080"
//	blur = 4
//	offset_x = 2
//	offset_y = 2
func LoadBrush(r io.Reader) (Brush, error) {
	var cfg brushConfig
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Brush{}, fmt.Errorf("loading brush: %s", strict.String())
		}
		return Brush{}, fmt.Errorf("loading brush: %w", err)
	}

	b := DefaultBrush.Clone()
	if cfg.Color != nil {
		c, err := ParseColor(*cfg.Color)
		if err != nil {
			return Brush{}, fmt.Errorf("loading brush: %w", err)
		}
		b.Color = c
	}
	if cfg.Width != nil {
		b.Width = *cfg.Width
	}
	if cfg.Cap != nil {
		b.Cap = *cfg.Cap
	}
	if cfg.Join != nil {
		b.Join = *cfg.Join
	}
	if cfg.MiterLimit != nil {
		b.MiterLimit = *cfg.MiterLimit
	}
	if len(cfg.Dash) > 0 {
		b.DashPattern = cfg.Dash
	}
	if cfg.Shadow != nil {
		sh := &Shadow{
			Color:   color.NRGBA{A: 0xff},
			Blur:    cfg.Shadow.Blur,
			OffsetX: cfg.Shadow.OffsetX,
			OffsetY: cfg.Shadow.OffsetY,
		}
		if cfg.Shadow.Color != "" {
			c, err := ParseColor(cfg.Shadow.Color)
			if err != nil {
				return Brush{}, fmt.Errorf("loading brush: shadow: %w", err)
			}
			sh.Color = c
		}
		b.Shadow = sh
	}
	if err := b.Validate(); err != nil {
		return Brush{}, fmt.Errorf("loading brush: %w", err)
	}
	return b, nil
}
