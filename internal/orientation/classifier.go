package orientation

import "github.com/pscheid92/autorotate/internal/domain"

// Threshold is the raw magnitude an axis must exceed to count as tilted.
const Threshold = 500_000

// Classify returns the orientation for a raw (x, y) sample.
func Classify(x, y int) domain.Orientation {
	switch {
	case y > Threshold:
		return domain.OrientationInverted
	case x < -Threshold:
		return domain.OrientationLeftUp
	case x > Threshold:
		return domain.OrientationRightUp
	default:
		return domain.OrientationNormal
	}
}

// ClassifyReading is Classify for a domain.AxisReading.
func ClassifyReading(r domain.AxisReading) domain.Orientation {
	return Classify(r.X, r.Y)
}
