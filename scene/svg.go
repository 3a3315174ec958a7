package scene

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/freehand"
)

// SVGOptions specifies optional settings for [Canvas.WriteSVG].
type SVGOptions struct {
	// Maximum precision of coordinates, see [freehand.SVGOptions].
	MaxPrecision int
}

// WriteSVG writes the committed strokes as a standalone SVG document.
func (c *Canvas) WriteSVG(w io.Writer, opts SVGOptions) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}

	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		c.width, c.height, c.width, c.height)
	writef(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", freehand.HexColor(c.background))
	for i, obj := range c.objects {
		filter := ""
		if sh := obj.Shadow; sh != nil && sh.AffectStroke {
			filter = fmt.Sprintf("shadow%d", i)
			writef(`<filter id="%s"><feDropShadow dx="%s" dy="%s" stdDeviation="%s" flood-color="%s"/></filter>`+"\n",
				filter, num(sh.OffsetX), num(sh.OffsetY), num(sh.Blur/2), freehand.HexColor(sh.Color))
		}
		writef(`<path id="%s" d="%s" %s`, obj.ID, obj.ScenePath().SVG(freehand.SVGOptions{MaxPrecision: opts.MaxPrecision}), strokeAttrs(obj.Brush))
		if filter != "" {
			writef(` filter="url(#%s)"`, filter)
		}
		writef("/>\n")
	}
	writef("</svg>\n")
	return err
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func strokeAttrs(b freehand.Brush) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, `fill="none" stroke="%s" stroke-width="%s" stroke-linecap="%s" stroke-linejoin="%s" stroke-miterlimit="%s"`,
		freehand.HexColor(b.Color), num(b.Width), b.Cap, b.Join, num(b.MiterLimit))
	if len(b.DashPattern) > 0 {
		dashes := make([]string, len(b.DashPattern))
		for i, d := range b.DashPattern {
			dashes[i] = num(d)
		}
		fmt.Fprintf(sb, ` stroke-dasharray="%s"`, strings.Join(dashes, " "))
	}
	return sb.String()
}
