// Package reign computes the zone-of-influence radius for every airport.
//
// The reign of an airport is the distance in km to the nearest airport with
// an equal or greater number of launches. An airport that out-launches every
// neighbor within 1000 km keeps the sentinel value 1000, meaning it is
// uncontested regionally. WeGlide uses the reign to prefer busy fields over
// nearby minor ones when zooming the map.
//
// Distances come from an equirectangular projection: coordinates in radians,
// longitudes scaled by the cosine of the mean latitude, full pairwise
// Euclidean distance times the Earth radius. Good enough for reign-sized
// radii; not valid near the poles or for antipodal pairs, which general
// aviation does not care about. The computation is intentionally a dense
// O(n²) matrix, sized for a directory of tens of thousands of airports.
package reign

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/weglide/flugfeld/feature/airport/models"
)

const (
	// EarthRadiusKm is the mean Earth radius used to scale projected distances.
	EarthRadiusKm = 6371.0

	// MaxReignKm is the sentinel radius for regionally uncontested airports.
	MaxReignKm = 1000
)

// Options controls the reign computation.
type Options struct {
	// UnknownAsZero ranks airports without launch statistics as if they had
	// zero launches. When false, a nil launch count is a fatal precondition
	// violation.
	UnknownAsZero bool
}

// Assign computes the reign for every airport and returns a new list.
// Every record must carry valid coordinates, and a launch count unless
// Options.UnknownAsZero is set.
func Assign(airports []models.Airport, opts Options) ([]models.Airport, error) {
	airports = models.Clone(airports)
	n := len(airports)
	if n == 0 {
		return airports, nil
	}

	launches := make([]int, n)
	for i, a := range airports {
		if a.Longitude < -180 || a.Longitude > 180 || a.Latitude < -90 || a.Latitude > 90 {
			return nil, fmt.Errorf(
				"invalid coordinates (%f, %f) for %q", a.Longitude, a.Latitude, a.DisplayName())
		}
		if a.Launches == nil {
			if !opts.UnknownAsZero {
				return nil, fmt.Errorf("no launch count for %q", a.DisplayName())
			}
			continue
		}
		launches[i] = *a.Launches
	}

	dist := distanceMatrix(project(airports))

	reign := make([]int, n)
	for i := range reign {
		reign[i] = MaxReignKm
	}

	// Upper triangle only: each unordered pair is considered exactly once.
	// The strictly less active member of a pair has its reign capped by the
	// pair distance; on equal launch counts the outer record wins.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			d := dist.At(i, j)
			if d >= float64(max(reign[i], reign[j])) {
				continue // too far away to lower either bound
			}

			if launches[i] >= launches[j] {
				if float64(reign[j]) > d {
					reign[j] = int(math.Round(d))
				}
				continue
			}

			if float64(reign[i]) > d {
				reign[i] = int(math.Round(d))
			}
		}
	}

	for i := range airports {
		airports[i].Reign = models.Ptr(reign[i])
	}

	return airports, nil
}

// project maps coordinates into the equirectangular plane: degrees to
// radians, longitude scaled by cos(mean latitude) to correct for meridian
// convergence. Returns an n×2 matrix of (x, y) pairs.
func project(airports []models.Airport) *mat.Dense {
	n := len(airports)
	lat := make([]float64, n)
	proj := mat.NewDense(n, 2, nil)
	for i, a := range airports {
		lat[i] = a.Latitude * math.Pi / 180
		proj.Set(i, 0, a.Longitude*math.Pi/180)
		proj.Set(i, 1, lat[i])
	}

	theta := math.Cos(stat.Mean(lat, nil))
	for i := 0; i < n; i++ {
		proj.Set(i, 0, proj.At(i, 0)*theta)
	}
	return proj
}

// distanceMatrix computes all pairwise Euclidean distances over the
// projected points in km, using the Gram matrix identity
// |p_i - p_j|² = |p_i|² + |p_j|² - 2·p_i·p_j instead of per-pair trig.
func distanceMatrix(proj *mat.Dense) *mat.Dense {
	n, _ := proj.Dims()

	var gram mat.Dense
	gram.Mul(proj, proj.T())

	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		norms[i] = gram.At(i, i)
	}

	dist := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			d2 := norms[i] + norms[j] - 2*gram.At(i, j)
			if d2 < 0 {
				d2 = 0 // rounding can push tiny distances negative
			}
			d := math.Sqrt(d2) * EarthRadiusKm
			dist.Set(i, j, d)
			dist.Set(j, i, d)
		}
	}
	return dist
}
