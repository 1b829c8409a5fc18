package domain

import "strconv"

// Orientation is one of the four cardinal device rotations. The zero value
// is OrientationUnknown and is only used for a baseline the display backend
// reported in a form none of the four states map to.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationNormal
	OrientationInverted
	OrientationLeftUp
	OrientationRightUp
)

// Matrix is a row-major 3x3 input coordinate transformation matrix.
type Matrix [9]float64

// Args renders the coefficients as command-line arguments.
func (m Matrix) Args() []string {
	args := make([]string, len(m))
	for i, v := range m {
		args[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return args
}

type orientationInfo struct {
	name        string
	transformID string
	keyword     string
	matrix      Matrix
}

var orientations = map[Orientation]orientationInfo{
	OrientationNormal: {
		name:        "normal",
		transformID: "normal",
		keyword:     "normal",
		matrix:      Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1},
	},
	OrientationInverted: {
		name:        "inverted",
		transformID: "180",
		keyword:     "inverted",
		matrix:      Matrix{-1, 0, 1, 0, -1, 1, 0, 0, 1},
	},
	OrientationLeftUp: {
		name:        "left-up",
		transformID: "90",
		keyword:     "left",
		matrix:      Matrix{0, -1, 1, 1, 0, 0, 0, 0, 1},
	},
	OrientationRightUp: {
		name:        "right-up",
		transformID: "270",
		keyword:     "right",
		matrix:      Matrix{0, 1, 0, -1, 0, 1, 0, 0, 1},
	},
}

// Orientations lists the four cardinal states in a stable order.
var Orientations = []Orientation{
	OrientationNormal,
	OrientationInverted,
	OrientationLeftUp,
	OrientationRightUp,
}

// Valid reports whether o is one of the four cardinal states.
func (o Orientation) Valid() bool {
	_, ok := orientations[o]
	return ok
}

func (o Orientation) String() string {
	if info, ok := orientations[o]; ok {
		return info.name
	}
	return "unknown"
}

// TransformID is the compositor transform identifier ("normal", "90", "180", "270").
func (o Orientation) TransformID() string {
	return orientations[o].transformID
}

// Keyword is the X rotation keyword ("normal", "left", "inverted", "right").
func (o Orientation) Keyword() string {
	return orientations[o].keyword
}

// Matrix is the touchscreen transformation matrix for o.
func (o Orientation) Matrix() Matrix {
	return orientations[o].matrix
}

// FromTransformID maps a compositor transform identifier back to its orientation.
func FromTransformID(id string) (Orientation, bool) {
	for _, o := range Orientations {
		if orientations[o].transformID == id {
			return o, true
		}
	}
	return OrientationUnknown, false
}

// FromKeyword maps an X rotation keyword back to its orientation.
func FromKeyword(keyword string) (Orientation, bool) {
	for _, o := range Orientations {
		if orientations[o].keyword == keyword {
			return o, true
		}
	}
	return OrientationUnknown, false
}
