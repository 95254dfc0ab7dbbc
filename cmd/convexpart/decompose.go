package main

import (
	"fmt"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convexpart"
	"github.com/osuushi/convexpart/advanced"
	"github.com/osuushi/convexpart/polyio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Read every polygon from the input and make sure each winds counterclockwise.
func readPolygons(log *zap.Logger, path, format string) (advanced.PolygonList, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	list, err := polyio.Read(in, polyio.Format(format))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if reversed := polyio.NormalizeWinding(list); reversed > 0 {
		log.Info("[decompose] reversed clockwise input", zap.Int("polygons", reversed))
	}
	log.Info("[decompose] read input",
		zap.Int("polygons", len(list)),
		zap.Int("vertices", list.PointCount()),
	)
	return list, nil
}

func decomposeAll(log *zap.Logger, list advanced.PolygonList, options convexpart.Options) (advanced.PolygonList, []*convexpart.Result, error) {
	var pieces advanced.PolygonList
	results := make([]*convexpart.Result, 0, len(list))
	for i, poly := range list {
		start := time.Now()
		result, err := convexpart.DecomposeWithOptions(&options, poly.Points)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "polygon %d", i+1)
		}
		log.Info("[decompose] polygon done",
			zap.Int("polygon", i+1),
			zap.Int("vertices", result.Stats.Vertices),
			zap.Int("diagonals", result.Stats.Diagonals),
			zap.Int("merged", result.Stats.Merged),
			zap.Int("pieces", result.Stats.Faces),
			zap.Duration("elapsed", time.Since(start)),
		)
		pieces = append(pieces, result.Polygons...)
		results = append(results, result)
	}
	return pieces, results, nil
}

func runDecompose(log *zap.Logger) error {
	list, err := readPolygons(log, *decomposeInput, *decomposeFormat)
	if err != nil {
		return err
	}

	options := convexpart.Options{
		Logger:          log,
		SkipMerge:       *decomposeSkipMerge,
		MergePasses:     *decomposePasses,
		CheckInvariants: *decomposeCheck,
	}
	pieces, _, err := decomposeAll(log, list, options)
	if err != nil {
		return err
	}

	out, err := openOutput(*decomposeOutput)
	if err != nil {
		return err
	}
	writeOptions := polyio.WriteOptions{Scale: *decomposeScale}
	if err := polyio.Write(out, polyio.Format(*decomposeOutFormat), pieces, writeOptions); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "closing output")
	}

	if *decomposeImgcat {
		if err := preview(pieces, writeOptions); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "%s %d polygons into %d convex pieces\n",
		aurora.Green("Decomposed"), len(list), len(pieces))
	return nil
}

// Show the pieces inline in the terminal.
func preview(pieces advanced.PolygonList, options polyio.WriteOptions) error {
	f, err := os.CreateTemp("", "convexpart-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(f.Name())

	if err := polyio.WritePNG(f, pieces, options.Scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing preview file")
	}
	return errors.Wrap(imgcat.CatFile(f.Name(), os.Stderr), "previewing")
}
