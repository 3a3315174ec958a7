// Command inkreplay replays recorded pointer traces through freehand sessions and
// exports the committed strokes.
//
// A trace is a JSON document listing strokes as sequences of [x, y] samples:
//
//	{"strokes": [[[10, 10], [20, 14], [31, 20]], [[50, 50]]]}
//
// Each stroke is replayed as a press on its first sample, a move per further
// sample, and a release. The ID and path description of every committed stroke
// are printed to standard output.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/freehand"
	"honnef.co/go/freehand/scene"
)

type trace struct {
	Strokes [][][2]float64 `json:"strokes"`
}

func loadTrace(r io.Reader) (trace, error) {
	var tr trace
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tr); err != nil {
		return trace{}, fmt.Errorf("loading trace: %w", err)
	}
	for i, st := range tr.Strokes {
		if len(st) == 0 {
			return trace{}, fmt.Errorf("loading trace: stroke %d has no samples", i)
		}
	}
	return tr, nil
}

type config struct {
	brush  string
	trace  string
	svg    string
	png    string
	pdf    string
	width  int
	height int
}

func replay(c *scene.Canvas, brush freehand.Brush, tr trace, out io.Writer) error {
	s := c.NewSession(freehand.WithBrush(brush))
	for i, st := range tr.Strokes {
		s.Press(freehand.Pt(st[0][0], st[0][1]))
		for _, p := range st[1:] {
			s.Move(freehand.Pt(p[0], p[1]))
		}
		obj, ok := s.Release()
		if !ok {
			slog.Info("stroke discarded", "stroke", i)
			continue
		}
		if _, err := fmt.Fprintf(out, "%s %s\n", obj.ID, obj.Path); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	if name == "" {
		return nil
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func run(cfg config, out io.Writer) error {
	if cfg.trace == "" {
		return errors.New("no trace given")
	}

	brush := freehand.DefaultBrush
	if cfg.brush != "" {
		f, err := os.Open(cfg.brush)
		if err != nil {
			return err
		}
		brush, err = freehand.LoadBrush(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	f, err := os.Open(cfg.trace)
	if err != nil {
		return err
	}
	tr, err := loadTrace(f)
	f.Close()
	if err != nil {
		return err
	}

	c := scene.NewCanvas(cfg.width, cfg.height)
	defer c.Close()
	if err := replay(c, brush, tr, out); err != nil {
		return err
	}
	slog.Info("replayed trace", "strokes", len(tr.Strokes), "objects", len(c.Objects()))

	if err := writeFile(cfg.svg, func(w io.Writer) error { return c.WriteSVG(w, scene.SVGOptions{}) }); err != nil {
		return err
	}
	if err := writeFile(cfg.png, c.WritePNG); err != nil {
		return err
	}
	return writeFile(cfg.pdf, c.WritePDF)
}

func main() {
	var cfg config
	flag.StringVar(&cfg.brush, "brush", "", "brush configuration (TOML)")
	flag.StringVar(&cfg.trace, "trace", "", "pointer trace to replay (JSON)")
	flag.StringVar(&cfg.svg, "svg", "", "write SVG to `file`")
	flag.StringVar(&cfg.png, "png", "", "write PNG to `file`")
	flag.StringVar(&cfg.pdf, "pdf", "", "write PDF to `file`")
	flag.IntVar(&cfg.width, "w", 800, "scene width")
	flag.IntVar(&cfg.height, "h", 600, "scene height")
	verbose := flag.Bool("v", false, "log session transitions")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	freehand.SetLogger(logger)

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("inkreplay failed", "err", err)
		os.Exit(1)
	}
}
