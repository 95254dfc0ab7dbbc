package main

import (
	"github.com/osuushi/convexpart/polyio"
	"github.com/osuushi/convexpart/polygen"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func runGenerate(log *zap.Logger) error {
	rng := polygen.RandWithSeed(*generateSeed)
	list, err := polygen.GenerateList(rng, *generateCount, polygen.Options{
		Vertices:   *generateVertices,
		Radius:     *generateRadius,
		Jaggedness: *generateJaggedness,
		Profile:    polygen.Profile(*generateProfile),
	})
	if err != nil {
		return err
	}
	log.Info("[generate] polygons generated",
		zap.Int("count", len(list)),
		zap.Int("vertices", *generateVertices),
		zap.Uint64("seed", *generateSeed),
	)

	out, err := openOutput(*generateOutput)
	if err != nil {
		return err
	}
	if err := polyio.Write(out, polyio.Format(*generateFormat), list, polyio.WriteOptions{Title: "Generated polygons"}); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "closing output")
}
