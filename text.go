package freehand

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ErrSyntax is wrapped by errors returned from [ParsePath].
var ErrSyntax = errors.New("invalid path description")

func formatFloat(n float64, maxPrec int) string {
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// String returns the interchange form of the path, for example
//
//	M 0 0 C 4 0, 10 -2, 10 0
func (p Path) String() string {
	sb := &strings.Builder{}
	p.WriteText(sb)
	return sb.String()
}

// WriteText writes the interchange form of the path to w: "M x y", "L x y",
// "C h1x h1y, h2x h2y, x y" and "Z", separated by single spaces. Coordinates use
// the shortest representation that round-trips.
func (p Path) WriteText(w io.Writer) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	f := func(n float64) string { return formatFloat(n, 0) }
	for i, cmd := range p {
		if i > 0 {
			writef(" ")
		}
		switch cmd.Kind {
		case MoveToKind:
			writef("M %s %s", f(cmd.P0.X), f(cmd.P0.Y))
		case LineToKind:
			writef("L %s %s", f(cmd.P0.X), f(cmd.P0.Y))
		case CubicToKind:
			writef("C %s %s, %s %s, %s %s",
				f(cmd.P0.X), f(cmd.P0.Y),
				f(cmd.P1.X), f(cmd.P1.Y),
				f(cmd.P2.X), f(cmd.P2.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}

// SVGOptions specifies optional settings for [Path.SVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to SVG path data, suitable for the d attribute of a
// path element.
func (p Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	f := func(n float64) string { return formatFloat(n, opts.MaxPrecision) }
	for i, cmd := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch cmd.Kind {
		case MoveToKind:
			fmt.Fprintf(sb, "M%s,%s", f(cmd.P0.X), f(cmd.P0.Y))
		case LineToKind:
			fmt.Fprintf(sb, "L%s,%s", f(cmd.P0.X), f(cmd.P0.Y))
		case CubicToKind:
			fmt.Fprintf(sb, "C%s,%s %s,%s %s,%s",
				f(cmd.P0.X), f(cmd.P0.Y),
				f(cmd.P1.X), f(cmd.P1.Y),
				f(cmd.P2.X), f(cmd.P2.Y))
		case ClosePathKind:
			sb.WriteByte('Z')
		default:
			panic("unreachable")
		}
	}
	return sb.String()
}

// ParsePath parses the interchange form written by [Path.WriteText]. Commas and
// runs of whitespace between operands are interchangeable. Only absolute M, L, C
// and Z commands are accepted.
func ParsePath(s string) (Path, error) {
	b := []byte(s)
	i := 0
	skip := func() {
		for i < len(b) {
			switch b[i] {
			case ' ', '\t', '\n', '\r', '\f', ',':
				i++
			default:
				return
			}
		}
	}
	number := func() (float64, error) {
		skip()
		if i >= len(b) {
			return 0, fmt.Errorf("offset %d: unexpected end of input: %w", i, ErrSyntax)
		}
		f, n := pstrconv.ParseFloat(b[i:])
		if n == 0 {
			return 0, fmt.Errorf("offset %d: expected number, found %q: %w", i, b[i], ErrSyntax)
		}
		i += n
		return f, nil
	}
	point := func() (Point, error) {
		x, err := number()
		if err != nil {
			return Point{}, err
		}
		y, err := number()
		if err != nil {
			return Point{}, err
		}
		return Pt(x, y), nil
	}

	var p Path
	for {
		skip()
		if i >= len(b) {
			return p, nil
		}
		op := b[i]
		at := i
		i++
		switch op {
		case 'M', 'L':
			pt, err := point()
			if err != nil {
				return nil, err
			}
			if op == 'M' {
				p.MoveTo(pt)
			} else {
				p.LineTo(pt)
			}
		case 'C':
			var pts [3]Point
			for j := range pts {
				pt, err := point()
				if err != nil {
					return nil, err
				}
				pts[j] = pt
			}
			p.CubicTo(pts[0], pts[1], pts[2])
		case 'Z':
			p.ClosePath()
		default:
			return nil, fmt.Errorf("offset %d: unknown command %q: %w", at, op, ErrSyntax)
		}
		if len(p) == 1 && p[0].Kind != MoveToKind {
			return nil, fmt.Errorf("offset %d: path must start with M: %w", at, ErrSyntax)
		}
	}
}
