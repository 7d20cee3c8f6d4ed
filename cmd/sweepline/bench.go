package main

import (
	"fmt"
	"time"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweepline"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type Bench struct {
	Min     int    `default:"500" desc:"Smallest number of segments"`
	Max     int    `default:"10000" desc:"Largest number of segments"`
	Step    int    `default:"500" desc:"Increment of the number of segments"`
	Plot    string `short:"p" desc:"Save a plot of the timings, e.g. benchmark.png"`
	Verbose bool   `short:"v" desc:"Verbose logging"`
}

// benchmarkSegments returns n parallel segments crossed by one long segment, giving n intersections.
func benchmarkSegments(n int) []sweepline.Segment {
	segs := make([]sweepline.Segment, 0, n+1)
	for i := range int64(n) {
		segs = append(segs, sweepline.Seg(0, i, 10000, i+100))
	}
	return append(segs, sweepline.Seg(10000, 0, 0, 10000))
}

func (cmd *Bench) Run() error {
	if cmd.Min < 1 || cmd.Max < cmd.Min || cmd.Step < 1 {
		fmt.Println("ERROR: must have 0 < min <= max and 0 < step")
		return argp.ShowUsage
	}

	log := newLogger(cmd.Verbose)
	defer log.Sync()

	xys := plotter.XYs{}
	for n := cmd.Min; n <= cmd.Max; n += cmd.Step {
		segs := benchmarkSegments(n)

		count := 0
		t := time.Now()
		sweepline.IntersectionsFunc(segs, func(sweepline.Point, []*sweepline.Segment) {
			count++
		})
		elapsed := time.Since(t)

		fmt.Printf("%d segments %d intersections %v seconds\n", n, count, elapsed.Seconds())
		log.Debug("benchmark", zap.Int("segments", n), zap.Int("intersections", count), zap.Duration("elapsed", elapsed))
		xys = append(xys, plotter.XY{X: float64(n), Y: elapsed.Seconds()})
	}

	if cmd.Plot != "" {
		if err := savePlot(cmd.Plot, xys); err != nil {
			return err
		}
		log.Info("wrote plot", zap.String("filename", cmd.Plot))
	}
	return nil
}

func savePlot(filename string, xys plotter.XYs) error {
	p := plot.New()
	p.Title.Text = "Time for the sweep line to find n intersections of n segments"
	p.X.Label.Text = "Number of segments"
	p.Y.Label.Text = "Time [seconds]"

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("could not create plot: %w", err)
	}
	p.Add(line, points)
	return p.Save(16*vg.Centimeter, 12*vg.Centimeter, filename)
}
