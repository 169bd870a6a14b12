package dial

import "math"

// Clock angles are measured in degrees, clockwise from 12 o'clock (the
// negative-Y axis in image coordinates). PointOnCircle and DivisionAngle
// are the only places that convert between clock angles and the math
// convention; everything else works in clock angles.

// PointOnCircle returns the point on the circle around center with the
// given radius at a clock angle.
func PointOnCircle(center Point, radius, angleDegrees float64) Point {
	rad := (angleDegrees - 90) * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// DivisionAngle returns the clock angle of division index k on a dial
// split into n equal divisions, offset by rotation degrees.
// DivisionAngle(60, 37, 0) is the minute-37 angle; DivisionAngle(12, 3, 0)
// is the 3-hour angle.
func DivisionAngle(n, k int, rotation float64) float64 {
	if n <= 0 {
		return rotation
	}
	return float64(k)*360/float64(n) + rotation
}

// RotateAbout returns p rotated clockwise by angleDegrees around center.
func RotateAbout(p, center Point, angleDegrees float64) Point {
	return p.Sub(center).Rotate(angleDegrees * math.Pi / 180).Add(center)
}
