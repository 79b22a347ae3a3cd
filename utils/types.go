package utils

import "math"

type CategoryType int

const (
	NA CategoryType = iota
	Origin
	Target
	WayPoint
)

func (s CategoryType) String() string {
	switch s {
	case NA:
		return "na"
	case Origin:
		return "origin"
	case Target:
		return "target"
	case WayPoint:
		return "waypoint"
	}
	return "cat"
}

// PointType is a grid position with a heading in degrees. 0 points along +X
// and 90 along +Y.
type PointType struct {
	X     int
	Y     int
	Angle int
}

type PoiType struct {
	Point    PointType
	Category CategoryType
}

// AngleAndDist returns the heading from p1 towards p2, in (-180, 180], and
// the distance between them.
func (p1 PointType) AngleAndDist(p2 PointType) (angle int, dist int) {
	dist = p1.Dist(p2)
	angle = Atan2(p2.Y-p1.Y, p2.X-p1.X)
	if angle == -180 {
		angle = 180
	}

	return
}

func (p1 PointType) Dist(p2 PointType) (dist int) {
	first := math.Pow(float64(p2.X-p1.X), 2)
	second := math.Pow(float64(p2.Y-p1.Y), 2)
	dist = int(math.Sqrt(first + second))

	return
}

// compares 2 points to see if they are close to each other
func (old PointType) IsClose(new PointType, threshold int) bool {
	return old.Dist(new) < threshold
}

// CalcNextPos moves distance along the heading. Headings on an axis move
// along that axis only.
func (point PointType) CalcNextPos(distance int) PointType {
	newX := point.X + int(math.Round(float64(distance)*Cos(point.Angle)))
	newY := point.Y + int(math.Round(float64(distance)*Sin(point.Angle)))
	return PointType{X: newX, Y: newY, Angle: point.Angle}
}
