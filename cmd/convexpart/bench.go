package main

import (
	"time"

	"github.com/osuushi/convexpart/advanced"
	"github.com/osuushi/convexpart/polyio"
	"github.com/osuushi/convexpart/polygen"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

// Mean time to decompose count random polygons of each size in the range.
func benchmark(log *zap.Logger, minVertices, maxVertices, step, count int, seed uint64, jaggedness float64) ([]polyio.Timing, error) {
	if step < 1 {
		return nil, errors.Errorf("step must be positive, got %d", step)
	}
	if count < 1 {
		return nil, errors.Errorf("count must be positive, got %d", count)
	}

	rng := polygen.RandWithSeed(seed)
	var timings []polyio.Timing
	for n := minVertices; n <= maxVertices; n += step {
		list, err := polygen.GenerateList(rng, count, polygen.Options{Vertices: n, Jaggedness: jaggedness})
		if err != nil {
			return nil, err
		}

		var total time.Duration
		for _, poly := range list {
			start := time.Now()
			advanced.Decompose(poly, nil)
			total += time.Since(start)
		}
		timing := polyio.Timing{Vertices: n, Mean: total / time.Duration(count)}
		log.Debug("[bench] size done", zap.Int("vertices", n), zap.Duration("mean", timing.Mean))
		timings = append(timings, timing)
	}
	return timings, nil
}

func runBench(log *zap.Logger) (err error) {
	if *benchProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*benchProfile), profile.Quiet).Stop()
	}

	// Engine failures surface as panics from advanced.Decompose
	defer func() {
		if recovered := advanced.HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()

	start := time.Now()
	timings, err := benchmark(log, *benchMin, *benchMax, *benchStep, *benchCount, *benchSeed, *benchJaggedness)
	if err != nil {
		return err
	}
	log.Info("[bench] finished", zap.Int("sizes", len(timings)), zap.Duration("elapsed", time.Since(start)))

	out, err := openOutput(*benchOutput)
	if err != nil {
		return err
	}
	if err := polyio.WriteTimingChart(out, "Decomposition time by vertex count", timings); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "closing output")
}
