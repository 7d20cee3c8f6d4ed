package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweepline"
	"github.com/tdewolff/sweepline/geo"
	"go.uber.org/zap"
)

type Find struct {
	Format  string `short:"f" default:"text" desc:"Input format: text, geojson, or osm"`
	EPSG    int    `default:"0" desc:"Project WGS84 coordinates to the EPSG coordinate system, 0 keeps coordinates"`
	SVG     string `desc:"Write segments and intersections to an SVG file"`
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Input   string `index:"0" desc:"Input file, reads from stdin if empty"`
}

func main() {
	root := argp.NewCmd(&Find{}, "Exact line segment intersections using a sweep line")
	root.AddCmd(&Bench{}, "bench", "Time the sweep on growing inputs")
	root.AddCmd(&Check{}, "check", "Compare the sweep with brute force on random inputs")
	root.Parse()
	root.PrintHelp()
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func (cmd *Find) Run() error {
	log := newLogger(cmd.Verbose)
	defer log.Sync()

	var r io.Reader = os.Stdin
	if cmd.Input != "" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	} else if cmd.Format == "text" {
		fmt.Println(sweepline.Prompt)
	}

	var proj geo.Projection
	if cmd.EPSG != 0 {
		proj = geo.EPSG(cmd.EPSG)
	}

	var err error
	var segs []sweepline.Segment
	t := time.Now()
	switch cmd.Format {
	case "text":
		segs, err = sweepline.ParseSegments(r)
	case "geojson":
		segs, err = geo.ReadGeoJSON(r, proj)
	case "osm":
		segs, err = geo.ReadOSM(r, proj)
	default:
		fmt.Println("ERROR: unknown format", cmd.Format)
		return argp.ShowUsage
	}
	if err != nil {
		return err
	}
	log.Debug("read segments", zap.String("format", cmd.Format), zap.Int("segments", len(segs)), zap.Duration("elapsed", time.Since(t)))

	t = time.Now()
	zs := sweepline.Collect(segs)
	log.Debug("found intersections", zap.Int("intersections", len(zs)), zap.Duration("elapsed", time.Since(t)))

	w := bufio.NewWriter(os.Stdout)
	if cmd.Input == "" {
		fmt.Fprintln(w)
	}
	if err := sweepline.WriteIntersections(w, zs); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cmd.SVG != "" {
		f, err := os.Create(cmd.SVG)
		if err != nil {
			return err
		}
		if err := sweepline.WriteSVG(f, segs, zs); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info("wrote SVG", zap.String("filename", cmd.SVG))
	}
	return nil
}
