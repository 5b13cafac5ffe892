package apitype

import "fmt"

// Orientation is the raw EXIF orientation tag value (0x0112).
type Orientation uint8

const (
	OrientationUnspecified Orientation = 0
	OrientationNormal      Orientation = 1
	OrientationFlipH       Orientation = 2
	OrientationRotate180   Orientation = 3
	OrientationFlipV       Orientation = 4
	OrientationTranspose   Orientation = 5
	OrientationRotate90    Orientation = 6
	OrientationTransverse  Orientation = 7
	OrientationRotate270   Orientation = 8
)

const (
	noRotate  = 0
	right90   = 90
	rotate180 = 180
	right270  = 270
)

func OrientationFromExif(value int) Orientation {
	if value < 0 || value > int(OrientationRotate270) {
		return OrientationUnspecified
	}
	return Orientation(value)
}

// Rotation returns the clockwise angle in degrees that turns the stored
// pixels upright. Only the pure rotations are honoured; mirrored and
// unknown values are treated as normal.
func (s Orientation) Rotation() int {
	switch s {
	case OrientationRotate90:
		return right90
	case OrientationRotate180:
		return rotate180
	case OrientationRotate270:
		return right270
	default:
		return noRotate
	}
}

func (s Orientation) SwapsDimensions() bool {
	rotation := s.Rotation()
	return rotation == right90 || rotation == right270
}

func (s Orientation) String() string {
	switch s {
	case OrientationUnspecified:
		return "unspecified"
	case OrientationNormal:
		return "normal"
	case OrientationFlipH:
		return "flip-horizontal"
	case OrientationRotate180:
		return "rotate-180"
	case OrientationFlipV:
		return "flip-vertical"
	case OrientationTranspose:
		return "transpose"
	case OrientationRotate90:
		return "rotate-90"
	case OrientationTransverse:
		return "transverse"
	case OrientationRotate270:
		return "rotate-270"
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}
