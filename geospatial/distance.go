package geospatial

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	earthRadiusKm = 6371.0
	kmToMiles     = 0.62137
)

// Distance calculates the great-circle distance in miles between two
// points using the haversine formula, rounded to two decimal places.
// Out-of-range coordinates are not rejected; they produce a numeric
// result like any other input.
func Distance(start, end Coordinate) float64 {
	lat1 := toRad(start.Latitude)
	lon1 := toRad(start.Longitude)
	lat2 := toRad(end.Latitude)
	lon2 := toRad(end.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Asin(math.Sqrt(a))
	return round2(earthRadiusKm * c * kmToMiles)
}

// round2 rounds half-up to two decimal places on the shortest decimal
// representation of v. math.Round(v*100)/100 would round 123.455 the
// wrong way because the float stores as 123.45499….
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
