package main

import (
	"fmt"
	"math"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexpart"
	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errCheckFailed = errors.New("decomposition check failed")

// Problems with one polygon's decomposition, empty when it is valid.
func verify(poly advanced.Polygon, result *convexpart.Result) []string {
	var problems []string
	for i, piece := range result.Polygons {
		if len(piece.Points) < 3 {
			problems = append(problems, fmt.Sprintf("piece %d has %d vertices", i+1, len(piece.Points)))
			continue
		}
		if !piece.IsCCW() {
			problems = append(problems, fmt.Sprintf("piece %d is not counterclockwise", i+1))
		}
		if !piece.IsConvex() {
			problems = append(problems, fmt.Sprintf("piece %d is not convex", i+1))
		}
	}

	area := poly.Area()
	if diff := math.Abs(area - result.Polygons.Area()); diff > 1e-9*math.Max(1, area) {
		problems = append(problems, fmt.Sprintf("pieces cover %g, polygon has area %g", result.Polygons.Area(), area))
	}

	if err := result.Mesh.Check(); err != nil {
		problems = append(problems, err.Error())
	}
	return problems
}

func runCheck(log *zap.Logger) error {
	list, err := readPolygons(log, *checkInput, *checkFormat)
	if err != nil {
		return err
	}

	failed := 0
	for i, poly := range list {
		result, err := convexpart.DecomposeWithOptions(&convexpart.Options{Logger: log, CheckInvariants: true}, poly.Points)
		var problems []string
		if err != nil {
			problems = []string{err.Error()}
		} else {
			problems = verify(poly, result)
		}

		if len(problems) == 0 {
			fmt.Fprintf(os.Stdout, "%s polygon %d: %d vertices, %d pieces\n",
				aurora.Green("OK  "), i+1, len(poly.Points), result.Stats.Faces)
			continue
		}
		failed++
		fmt.Fprintf(os.Stdout, "%s polygon %d: %d vertices\n", aurora.Red("FAIL"), i+1, len(poly.Points))
		for _, problem := range problems {
			fmt.Fprintf(os.Stdout, "     %s\n", problem)
		}
	}

	if failed > 0 {
		return errors.Wrapf(errCheckFailed, "%d of %d polygons", failed, len(list))
	}
	return nil
}
