// Command vgdemo chains a few vg operators and logs what each one produced.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/svg"
	"github.com/gogpu/vg/text"
)

func main() {
	var (
		seed    = flag.Int64("seed", 1, "random seed for wiggle and scatter")
		message = flag.String("text", "vg", "text to outline")
		svgFile = flag.String("svg", "", "optional SVG file to import")
		debug   = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vg.SetLogger(logger)

	// Boolean ops
	disc := vg.Ellipse(vg.Pt(0, 0), 200, 200)
	bar := vg.Rectangle(vg.Pt(0, 0), 260, 60, vg.Point{})
	ring := vg.Compound(disc, bar, vg.Subtract, false)
	summarize(logger, "compound", ring)

	// Point-level operators
	beads := vg.Resample(ring, vg.ResampleByAmount, 0, 60, true)
	summarize(logger, "resample", beads)
	wiggled := vg.Wiggle(beads, vg.ScopePoints, vg.Pt(6, 6), *seed)
	summarize(logger, "wiggle", wiggled)

	// Repetition and style
	stars := vg.Copy(vg.Star(vg.Pt(0, 0), 5, 40, 20), 6, vg.DefaultOrder, vg.Pt(90, 0), 15, vg.Pt(-5, -5))
	red := vg.RGB(220, 40, 40, 255, 255)
	stars = vg.Colorize(stars, &red, nil, 0)
	summarize(logger, "copy", stars)

	guide := vg.Ellipse(vg.Pt(0, 0), 400, 300)
	summarize(logger, "shape on path", vg.ShapeOnPath(vg.Polygon(vg.Point{}, 10, 3, true), guide, 24, 20, 0, true))
	summarize(logger, "scatter", vg.Scatter(guide, 50, *seed))

	// Collaborators
	layout := text.NewLayout()
	summarize(logger, "text", vg.TextOutline(layout, *message, text.DefaultFont, 48, "CENTER", vg.Pt(0, 0), 0, 0))
	summarize(logger, "text on path", vg.TextOnPath(layout, *message, "", 24, guide, 0, true))

	if *svgFile != "" {
		imported := vg.ImportFile(svg.NewImporter(), *svgFile, true, vg.Pt(0, 0))
		if imported == nil {
			fmt.Fprintf(os.Stderr, "vgdemo: could not import %s\n", *svgFile)
			os.Exit(1)
		}
		summarize(logger, "import", imported)
	}
}

func summarize(logger *slog.Logger, step string, s vg.Shape) {
	if vg.IsAbsent(s) {
		logger.Info(step, "result", "none")
		return
	}
	b := vg.Bounds(s)
	logger.Info(step,
		"type", fmt.Sprintf("%T", s),
		"bounds", fmt.Sprintf("%.1f,%.1f %.1fx%.1f", b.X, b.Y, b.Width, b.Height),
		"length", fmt.Sprintf("%.1f", vg.Length(s)),
	)
}
