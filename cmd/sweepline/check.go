package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweepline"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Check struct {
	Tests   int  `short:"n" default:"100" desc:"Number of random inputs, input i has i segments"`
	Size    int  `short:"s" default:"10" desc:"Coordinates are integers in [0,size)"`
	Seed    int  `default:"0" desc:"Random seed"`
	Workers int  `short:"w" default:"4" desc:"Number of parallel workers"`
	Verbose bool `short:"v" desc:"Verbose logging"`
}

func randomSegments(rng *rand.Rand, n, size int) []sweepline.Segment {
	segs := make([]sweepline.Segment, n)
	for i := range segs {
		ax, ay := rng.Int64N(int64(size)), rng.Int64N(int64(size))
		bx, by := rng.Int64N(int64(size)), rng.Int64N(int64(size))
		segs[i] = sweepline.Seg(ax, ay, bx, by)
	}
	return segs
}

func (cmd *Check) Run() error {
	if cmd.Tests < 0 || cmd.Size < 1 || cmd.Workers < 1 {
		fmt.Println("ERROR: must have 0 <= tests, 0 < size, and 0 < workers")
		return argp.ShowUsage
	}

	log := newLogger(cmd.Verbose)
	defer log.Sync()

	g := errgroup.Group{}
	g.SetLimit(cmd.Workers)
	for i := range cmd.Tests {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(cmd.Seed), uint64(i)))
			segs := randomSegments(rng, i, cmd.Size)
			input := fmt.Sprint(segs)

			expected := sweepline.BruteForce(segs)
			zs := sweepline.Collect(segs)
			if !zs.Equals(expected) {
				return fmt.Errorf("test %d: sweep differs from brute force\nsegments: %v\nsweep:\n%vbrute force:\n%v", i, input, zs, expected)
			}
			log.Debug("passed", zap.Int("test", i), zap.Int("segments", len(segs)), zap.Int("intersections", len(zs)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("Passed all %d tests\n", cmd.Tests)
	return nil
}
