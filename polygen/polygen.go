// Random simple polygons for testing and benchmarking the decomposition.
//
// Every polygon is star shaped around the origin: vertices are placed at
// strictly increasing angles, each at a positive distance from the center.
// That makes the polygon simple and counterclockwise by construction, while
// the distances vary enough to give plenty of reflex vertices.
package polygen

import (
	"math"
	"math/rand/v2"

	"github.com/fogleman/ease"
	"github.com/furui/fastnoiselite-go"
	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
	"github.com/quasilyte/gmath"
)

// Shapes how noise maps to the dip in radius. Steeper profiles keep most
// vertices near the rim and push a few deep toward the center.
type Profile string

const (
	Linear Profile = "linear"
	Quad   Profile = "quad"
	Cubic  Profile = "cubic"
)

var Profiles = []string{string(Linear), string(Quad), string(Cubic)}

var (
	ErrTooFewVertices = errors.New("a polygon needs at least 3 vertices")
	ErrJaggedness     = errors.New("jaggedness must be in [0, 1)")
)

type Options struct {
	Vertices int
	// Distance of the outermost possible vertex from the center. Defaults to 100.
	Radius float64
	// How far toward the center a vertex can dip, as a fraction of Radius.
	Jaggedness float64
	// Defaults to Linear.
	Profile Profile
}

func (p Profile) easing() func(float64) float64 {
	switch p {
	case Quad:
		return ease.InOutQuad
	case Cubic:
		return ease.OutCubic
	}
	return ease.Linear
}

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Generate one polygon, drawing all randomness from rng.
func Generate(rng *rand.Rand, options Options) (advanced.Polygon, error) {
	n := options.Vertices
	if n < 3 {
		return advanced.Polygon{}, errors.Wrapf(ErrTooFewVertices, "got %d", n)
	}
	if options.Jaggedness < 0 || options.Jaggedness >= 1 {
		return advanced.Polygon{}, errors.Wrapf(ErrJaggedness, "got %g", options.Jaggedness)
	}
	radius := options.Radius
	if radius <= 0 {
		radius = 100
	}
	easing := options.Profile.easing()

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()
	noise.Frequency = 0.9

	// Angles never cross, and neighbours stay less than half a turn apart
	step := 2 * math.Pi / float64(n)
	jitter := 0.4
	if n == 3 {
		jitter = 0.2
	}

	points := make([]*advanced.Point, n)
	for i := range points {
		angle := gmath.Rad(step*float64(i) + randf(rng, -jitter, jitter)*step)
		direction := gmath.Vec{X: 1}.Rotated(angle)

		// Sample the noise on the unit circle so the shape closes smoothly
		value := float64(noise.GetNoise2D(fastnoiselite.FNLfloat(direction.X), fastnoiselite.FNLfloat(direction.Y)))
		dip := 0.7*(value+1)/2 + 0.3*rng.Float64()
		dip = math.Max(0, math.Min(1, easing(dip)))

		offset := direction.Mulf(radius * (1 - options.Jaggedness*dip))
		points[i] = &advanced.Point{X: offset.X, Y: offset.Y}
	}
	return advanced.Polygon{Points: points}, nil
}

// Generate count polygons with the same options.
func GenerateList(rng *rand.Rand, count int, options Options) (advanced.PolygonList, error) {
	list := make(advanced.PolygonList, 0, count)
	for i := 0; i < count; i++ {
		poly, err := Generate(rng, options)
		if err != nil {
			return nil, err
		}
		list = append(list, poly)
	}
	return list, nil
}
