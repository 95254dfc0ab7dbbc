// Command line front end for the convex decomposition: decompose polygon
// files, generate random test polygons, verify results, and time the engine.
//
// Input on stdin (or --input) is newline separated points in the form "x y"
// or "x, y", with each polygon separated by a blank line. The counted format
// written by generate, SVG <polygon> elements and YAML are also accepted.
package main

import (
	"io"
	"os"

	"github.com/osuushi/convexpart/internal/logger"
	"github.com/osuushi/convexpart/polyio"
	"github.com/osuushi/convexpart/polygen"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("convexpart", "Decompose simple polygons into convex pieces.")
	verbose = app.Flag("verbose", "Log every split and merge decision.").Short('v').Envar("CONVEXPART_VERBOSE").Bool()

	decomposeCmd       = app.Command("decompose", "Decompose each input polygon into convex polygons.").Default()
	decomposeInput     = decomposeCmd.Flag("input", "Input file, or - for stdin.").Short('i').Default("-").String()
	decomposeFormat    = decomposeCmd.Flag("format", "Input format.").Short('f').Default(string(polyio.Auto)).Enum(polyio.InputFormats...)
	decomposeOutput    = decomposeCmd.Flag("output", "Output file, or - for stdout.").Short('o').Default("-").String()
	decomposeOutFormat = decomposeCmd.Flag("output-format", "Output format.").Short('F').Default(string(polyio.Text)).Enum(polyio.OutputFormats...)
	decomposeScale     = decomposeCmd.Flag("scale", "Pixels per unit for svg and png output. Zero fits to 800 pixels.").Default("0").Float64()
	decomposeSkipMerge = decomposeCmd.Flag("skip-merge", "Stop after the greedy partition.").Bool()
	decomposePasses    = decomposeCmd.Flag("merge-passes", "Maximum number of diagonal elimination passes.").Default("1").Int()
	decomposeCheck     = decomposeCmd.Flag("check-invariants", "Verify the mesh after each phase.").Bool()
	decomposeImgcat    = decomposeCmd.Flag("imgcat", "Preview the result in the terminal (iTerm2).").Bool()

	generateCmd        = app.Command("generate", "Generate random simple polygons.")
	generateVertices   = generateCmd.Flag("vertices", "Vertices per polygon.").Short('n').Default("20").Int()
	generateCount      = generateCmd.Flag("count", "Number of polygons.").Short('c').Default("1").Int()
	generateSeed       = generateCmd.Flag("seed", "Random seed.").Short('s').Default("1").Uint64()
	generateRadius     = generateCmd.Flag("radius", "Outer radius.").Default("100").Float64()
	generateJaggedness = generateCmd.Flag("jaggedness", "How deep vertices may dip toward the center, in [0, 1).").Short('j').Default("0.6").Float64()
	generateProfile    = generateCmd.Flag("profile-shape", "Easing applied to the dip.").Default(string(polygen.Linear)).Enum(polygen.Profiles...)
	generateOutput     = generateCmd.Flag("output", "Output file, or - for stdout.").Short('o').Default("-").String()
	generateFormat     = generateCmd.Flag("format", "Output format.").Short('F').Default(string(polyio.Counted)).Enum(polyio.OutputFormats...)

	checkCmd    = app.Command("check", "Decompose and verify convexity, area and mesh invariants.")
	checkInput  = checkCmd.Flag("input", "Input file, or - for stdin.").Short('i').Default("-").String()
	checkFormat = checkCmd.Flag("format", "Input format.").Short('f').Default(string(polyio.Auto)).Enum(polyio.InputFormats...)

	benchCmd        = app.Command("bench", "Time decomposition of random polygons over a range of sizes.")
	benchMin        = benchCmd.Flag("min", "Smallest vertex count.").Default("4").Int()
	benchMax        = benchCmd.Flag("max", "Largest vertex count.").Default("250").Int()
	benchStep       = benchCmd.Flag("step", "Vertex count increment.").Default("1").Int()
	benchCount      = benchCmd.Flag("count", "Polygons per vertex count.").Short('c').Default("10").Int()
	benchSeed       = benchCmd.Flag("seed", "Random seed.").Short('s').Default("1").Uint64()
	benchJaggedness = benchCmd.Flag("jaggedness", "How deep vertices may dip toward the center, in [0, 1).").Short('j').Default("0.6").Float64()
	benchOutput     = benchCmd.Flag("output", "HTML chart file, or - for stdout.").Short('o').Default("-").String()
	benchProfile    = benchCmd.Flag("profile", "Write a CPU profile to this directory.").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	log := logger.New(os.Stderr, *verbose)
	defer log.Sync()

	var err error
	switch command {
	case decomposeCmd.FullCommand():
		err = runDecompose(log)
	case generateCmd.FullCommand():
		err = runGenerate(log)
	case checkCmd.FullCommand():
		err = runCheck(log)
	case benchCmd.FullCommand():
		err = runBench(log)
	}
	if err != nil {
		log.Error("[convexpart] command failed", zap.String("command", command), zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	return f, errors.Wrapf(err, "opening %s", path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	return f, errors.Wrapf(err, "creating %s", path)
}
