package advanced

import "go.uber.org/zap"

type Options struct {
	// Defaults to a no-op logger.
	Logger *zap.Logger
	// Stop after the greedy partition.
	SkipMerge bool
	// Number of elimination passes. Later passes only revisit diagonals that
	// earlier passes kept, and the loop stops early once a pass removes
	// nothing. Zero means one pass.
	MergePasses int
	// Run Mesh.Check after each phase, failing on the first violation.
	CheckInvariants bool
}

type Stats struct {
	Vertices  int
	Diagonals int
	Merged    int
	Faces     int
}

type Result struct {
	Polygons PolygonList
	Mesh     *Mesh
	Stats    Stats
}

func (o *Options) withDefaults() Options {
	var options Options
	if o != nil {
		options = *o
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.MergePasses <= 0 {
		options.MergePasses = 1
	}
	return options
}

// Decompose a simple counterclockwise polygon into convex polygons: build the
// mesh, cut it greedily, then eliminate the diagonals that are not needed.
func Decompose(polygon Polygon, o *Options) *Result {
	options := o.withDefaults()
	log := options.Logger

	mesh, err := NewMesh(polygon.Points)
	if err != nil {
		fatalWrap(err, "cannot decompose polygon")
	}
	result := &Result{Mesh: mesh}
	result.Stats.Vertices = len(polygon.Points)

	result.Stats.Diagonals = mesh.Partition(log)
	checkPhase(mesh, options, "partition")

	if !options.SkipMerge {
		for pass := 0; pass < options.MergePasses; pass++ {
			merged := mesh.Merge(log)
			result.Stats.Merged += merged
			checkPhase(mesh, options, "merge")
			if merged == 0 {
				break
			}
		}
	}

	result.Polygons = mesh.Polygons()
	result.Stats.Faces = len(result.Polygons)
	log.Info("[decompose] finished",
		zap.Int("vertices", result.Stats.Vertices),
		zap.Int("diagonals", result.Stats.Diagonals),
		zap.Int("merged", result.Stats.Merged),
		zap.Int("faces", result.Stats.Faces),
	)
	return result
}

func checkPhase(mesh *Mesh, options Options, phase string) {
	if !options.CheckInvariants {
		return
	}
	if err := mesh.Check(); err != nil {
		options.Logger.Error("[decompose] mesh invariant violated", zap.String("phase", phase), zap.Error(err))
		fatalWrap(err, "mesh invariant violated after %s", phase)
	}
}
