package geospatial

import "math"

// Semi-axes of the WGS-84 geoidal reference, in meters.
const (
	wgs84A = 6378137.0
	wgs84B = 6356752.3
)

const metersPerMile = 1609.344

// BoundingBoxAround returns the box surrounding point, approximating
// the local Earth surface as a sphere of the WGS-84 radius at the
// point's latitude.
//
// widthMiles is applied as the half-side of the box, so the full box
// spans twice that. Existing callers pass the intended width and rely
// on the doubled span; keep the numeric relationship as is.
//
// Not guarded at the poles: cos(lat) drives the parallel radius toward
// zero and the longitude span degenerates.
func BoundingBoxAround(point Coordinate, widthMiles float64) BoundingBox {
	lat := toRad(point.Latitude)
	lon := toRad(point.Longitude)
	halfSide := widthMiles * metersPerMile

	radius := earthRadius(lat)

	// Radius of the parallel at the given latitude.
	pradius := radius * math.Cos(lat)

	latMin := lat - halfSide/radius
	latMax := lat + halfSide/radius
	lonMin := lon - halfSide/pradius
	lonMax := lon + halfSide/pradius

	return BoundingBox{
		Min: Coordinate{Latitude: toDeg(latMin), Longitude: toDeg(lonMin)},
		Max: Coordinate{Latitude: toDeg(latMax), Longitude: toDeg(lonMax)},
	}
}

// earthRadius returns the WGS-84 ellipsoid radius in meters at the
// given latitude in radians.
func earthRadius(lat float64) float64 {
	an := wgs84A * wgs84A * math.Cos(lat)
	bn := wgs84B * wgs84B * math.Sin(lat)
	ad := wgs84A * math.Cos(lat)
	bd := wgs84B * math.Sin(lat)
	return math.Sqrt((an*an + bn*bn) / (ad*ad + bd*bd))
}
