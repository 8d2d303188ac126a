package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

/**
 * Distances & bearings between points, and destination points given start points & initial bearings,
 * calculated on an ellipsoidal earth model using 'direct and inverse solutions of geodesics on the
 * ellipsoid' devised by Thaddeus Vincenty.
 *
 * From: T Vincenty, "Direct and Inverse Solutions of Geodesics on the Ellipsoid with application of
 * nested equations", Survey Review, vol XXIII no 176, 1975. www.ngs.noaa.gov/PUBS_LIB/inverse.pdf.
 */

import (
	"math"

	"github.com/starboard-nz/units"
)

// Inverse solves the inverse geodesic problem: the forward and back
// azimuths and the distance between p1 and p2, on the WGS84 ellipsoid.
//
// Antipodal or coincident points never fail: coincident points return
// zero distance and a zero azimuth; antipodal points that fail to
// converge return the ellipsoidal antipodal distance with a zero
// azimuth, per spec.
func Inverse(p1, p2 Point) (forwardAzimuth, backAzimuth Degrees, distance units.Distance) {
	if p1.Equals(p2) {
		return 0, 0, units.Metre(0)
	}

	const π = math.Pi
	ε := math.Nextafter(1, 2) - 1

	φ1 := p1.Lat.Radians()
	λ1 := p1.Lon.Radians()
	φ2 := p2.Lat.Radians()
	λ2 := p2.Lon.Radians()

	e := wgs84
	a := e.a
	b := e.b
	f := e.f

	L := λ2 - λ1
	tanU1 := (1.0 - f) * math.Tan(φ1)
	cosU1 := 1.0 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	tanU2 := (1.0 - f) * math.Tan(φ2)
	cosU2 := 1 / math.Sqrt(1+tanU2*tanU2)
	sinU2 := tanU2 * cosU2

	isAntipodal := math.Abs(L) > π/2 || math.Abs(φ2-φ1) > π/2

	λ := L
	var sinλ, cosλ float64
	var sinSqσ float64
	σ := 0.0
	sinσ := 0.0
	cosσ := 1.0
	if isAntipodal {
		σ = π
		cosσ = -1.0
	}
	cos2σm := 1.0
	var sinα float64
	cosSqα := 1.0

	var C, λʹ, iterationCheck float64
	iterations := 0
	converged := true
	for {
		sinλ = math.Sin(λ)
		cosλ = math.Cos(λ)
		sinSqσ = (cosU2*sinλ)*(cosU2*sinλ) + (cosU1*sinU2-sinU1*cosU2*cosλ)*(cosU1*sinU2-sinU1*cosU2*cosλ)
		if math.Abs(sinSqσ) < ε {
			break // coincident/antipodal points (falls back on λ/σ = L)
		}
		sinσ = math.Sqrt(sinSqσ)
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		σ = math.Atan2(sinσ, cosσ)
		sinα = cosU1 * cosU2 * sinλ / sinσ
		cosSqα = 1 - sinα*sinα
		if cosSqα != 0 {
			cos2σm = cosσ - 2*sinU1*sinU2/cosSqα
		} else {
			cos2σm = 0.0 // equatorial line, cos²α = 0
		}
		C = f / 16 * cosSqα * (4 + f*(4-3*cosSqα))
		λʹ = λ
		λ = L + (1-C)*f*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
		if isAntipodal {
			iterationCheck = math.Abs(λ) - π
		} else {
			iterationCheck = math.Abs(λ)
		}
		if iterationCheck > π {
			converged = false
			break
		}
		iterations++
		if math.Abs(λ-λʹ) <= 1e-12 || iterations >= 1000 {
			break
		}
	}

	if !converged || iterations >= 1000 {
		// Vincenty's iteration fails to converge for near-antipodal points on
		// a near-spherical ellipsoid; fall back to the antipodal distance
		// (half the ellipsoid's meridional circumference) with a zero azimuth
		// rather than propagating NaN, per spec's totality requirement.
		// Along a meridian cos²α = 1 and σ = π, so Δσ = 0 and s = b·A·π.
		uSqMeridian := (a*a - b*b) / (b * b)
		AMeridian := 1 + uSqMeridian/16384*(4096+uSqMeridian*(-768+uSqMeridian*(320-175*uSqMeridian)))
		return 0, 0, units.Metre(π * b * AMeridian)
	}

	uSq := cosSqα * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	Δσ := B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
		B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))

	s := b * A * (σ - Δσ)

	α1 := 0.0
	if math.Abs(sinSqσ) >= ε {
		α1 = math.Atan2(cosU2*sinλ, cosU1*sinU2-sinU1*cosU2*cosλ)
	}
	α2 := π
	if math.Abs(sinSqσ) >= ε {
		α2 = math.Atan2(cosU1*sinλ, -sinU1*cosU2+cosU1*sinU2*cosλ)
	}

	return Wrap360(DegreesFromRadians(α1)), Wrap360(DegreesFromRadians(α2)), units.Metre(s)
}

// Distance is shorthand for Inverse(p1, p2)'s distance component.
func Distance(p1, p2 Point) units.Distance {
	_, _, d := Inverse(p1, p2)
	return d
}

// Direct solves the direct geodesic problem: the destination point
// reached from p travelling distanceM metres along initialBearing, and
// the bearing on arrival, on the WGS84 ellipsoid.
func Direct(p Point, initialBearing Degrees, distanceM float64) (destination Point, backAzimuth Degrees) {
	φ1 := p.Lat.Radians()
	λ1 := p.Lon.Radians()
	α1 := initialBearing.Radians()
	s := distanceM

	e := wgs84
	a := e.a
	b := e.b
	f := e.f

	sinα1 := math.Sin(α1)
	cosα1 := math.Cos(α1)

	tanU1 := (1 - f) * math.Tan(φ1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	σ1 := math.Atan2(tanU1, cosα1)
	sinα := cosU1 * sinα1
	cosSqα := 1 - sinα*sinα
	uSq := cosSqα * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	σ := s / (b * A)

	var sinσ, cosσ float64
	var Δσ float64
	var cos2σm float64

	var σʹ float64
	iterations := 0
	for {
		cos2σm = math.Cos(2*σ1 + σ)
		sinσ = math.Sin(σ)
		cosσ = math.Cos(σ)
		Δσ = B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
			B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))
		σʹ = σ
		σ = s/(b*A) + Δσ
		iterations++
		if math.Abs(σ-σʹ) <= 1e-12 || iterations >= 100 {
			break
		}
	}

	x := sinU1*sinσ - cosU1*cosσ*cosα1
	φ2 := math.Atan2(sinU1*cosσ+cosU1*sinσ*cosα1, (1-f)*math.Sqrt(sinα*sinα+x*x))
	λ := math.Atan2(sinσ*sinα1, cosU1*cosσ-sinU1*sinσ*cosα1)
	C := f / 16 * cosSqα * (4 + f*(4-3*cosSqα))
	L := λ - (1-C)*f*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
	λ2 := λ1 + L

	α2 := math.Atan2(sinα, -x)

	return NewPoint(DegreesFromRadians(φ2), DegreesFromRadians(λ2)), Wrap360(DegreesFromRadians(α2))
}
