package geo

import "math"

// EarthRadius is the mean Earth radius in meters used by MapLibre GL JS.
const EarthRadius = 6371008.8

// Wrap constrains n to the range (min, max].
// A value landing exactly on min is reported as max, so the lower bound is open.
func Wrap(n, min, max float64) float64 {
	d := max - min
	w := math.Mod(math.Mod(n-min, d)+d, d) + min
	if w == min {
		return max
	}

	return w
}

// WrapLongitude normalizes a longitude in degrees into (-180, 180].
func WrapLongitude(lng float64) float64 {
	return Wrap(lng, -180, 180)
}

// Distance returns the approximate great-circle distance in meters between two
// points given in degrees, using the haversine formula.
func Distance(lng1, lat1, lng2, lat2 float64) float64 {
	const rad = math.Pi / 180

	phi1 := lat1 * rad
	phi2 := lat2 * rad
	dPhi := (lat2 - lat1) * rad
	dLambda := (lng2 - lng1) * rad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	// clamp rounding noise before Asin/Atan2
	a = math.Min(1, a)

	return EarthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
