package params

import (
	"fmt"
	"math"
)

// Name identifies a beam parameter. The string value is the key used in
// parameter documents and handle bindings.
type Name string

// Parameter names
const (
	TopShWidth     Name = "TopShWidth"
	TopShHeight    Name = "TopShHeight"
	BotShWidth     Name = "BotShWidth"
	BotShUpHeight  Name = "BotShUpHeight"
	BotShLowHeight Name = "BotShLowHeight"
	RibThick       Name = "RibThick"
	RibHeight      Name = "RibHeight"
	BeamLength     Name = "BeamLength"
	BeamHeight     Name = "BeamHeight"
	BeamWidth      Name = "BeamWidth"
	HoleDepth      Name = "HoleDepth"
	HoleHeight     Name = "HoleHeight"
	RotationAngleX Name = "RotationAngleX"
	RotationAngleY Name = "RotationAngleY"
	RotationAngleZ Name = "RotationAngleZ"
	Color          Name = "Color"
)

// Names lists every parameter in document order.
var Names = []Name{
	TopShWidth, TopShHeight,
	BotShWidth, BotShUpHeight, BotShLowHeight,
	RibThick, RibHeight,
	BeamLength, BeamHeight, BeamWidth,
	HoleDepth, HoleHeight,
	RotationAngleX, RotationAngleY, RotationAngleZ,
	Color,
}

// Parameters is the full parameter set of a placed beam.
// Lengths are in mm, angles in degrees.
type Parameters struct {
	// Shelves
	TopShWidth     float64 `json:"TopShWidth"`
	TopShHeight    float64 `json:"TopShHeight"`
	BotShWidth     float64 `json:"BotShWidth"`
	BotShUpHeight  float64 `json:"BotShUpHeight"`
	BotShLowHeight float64 `json:"BotShLowHeight"`

	// Rib (web)
	RibThick  float64 `json:"RibThick"`
	RibHeight float64 `json:"RibHeight"`

	// Overall
	BeamLength float64 `json:"BeamLength"`
	BeamHeight float64 `json:"BeamHeight"`

	// Sling holes, measured from the beam end and the beam bottom
	HoleDepth  float64 `json:"HoleDepth"`
	HoleHeight float64 `json:"HoleHeight"`

	// Orientation
	RotationAngleX float64 `json:"RotationAngleX"`
	RotationAngleY float64 `json:"RotationAngleY"`
	RotationAngleZ float64 `json:"RotationAngleZ"`

	// Appearance
	Color int `json:"Color"`
}

// Default returns the parameters of a newly placed beam. Shelf and rib
// heights start at their minimums.
func Default() Parameters {
	return Parameters{
		TopShWidth:     600,
		TopShHeight:    320,
		BotShWidth:     480,
		BotShUpHeight:  160,
		BotShLowHeight: 153,
		RibThick:       160,
		RibHeight:      467,
		BeamLength:     10000,
		BeamHeight:     1100,
		HoleDepth:      250,
		HoleHeight:     550,
		Color:          3,
	}
}

// Width is the overall beam width, the wider of the two shelves.
func (p *Parameters) Width() float64 {
	return math.Max(p.TopShWidth, p.BotShWidth)
}

// BottomShelfHeight is the combined height of the bottom shelf.
func (p *Parameters) BottomShelfHeight() float64 {
	return p.BotShUpHeight + p.BotShLowHeight
}

// HeightSum adds up the four stacked heights that make up BeamHeight.
func (p *Parameters) HeightSum() float64 {
	return p.TopShHeight + p.RibHeight + p.BotShUpHeight + p.BotShLowHeight
}

// Get returns the value of the named parameter.
func (p *Parameters) Get(name Name) (float64, bool) {
	switch name {
	case BeamWidth:
		return p.Width(), true
	case Color:
		return float64(p.Color), true
	}
	f := p.field(name)
	if f == nil {
		return 0, false
	}
	return *f, true
}

// Set stores value in the named parameter. It reports false for unknown
// names and for BeamWidth, which is derived.
func (p *Parameters) Set(name Name, value float64) bool {
	if name == Color {
		p.Color = int(math.Round(value))
		return true
	}
	f := p.field(name)
	if f == nil {
		return false
	}
	*f = value
	return true
}

func (p *Parameters) field(name Name) *float64 {
	switch name {
	case TopShWidth:
		return &p.TopShWidth
	case TopShHeight:
		return &p.TopShHeight
	case BotShWidth:
		return &p.BotShWidth
	case BotShUpHeight:
		return &p.BotShUpHeight
	case BotShLowHeight:
		return &p.BotShLowHeight
	case RibThick:
		return &p.RibThick
	case RibHeight:
		return &p.RibHeight
	case BeamLength:
		return &p.BeamLength
	case BeamHeight:
		return &p.BeamHeight
	case HoleDepth:
		return &p.HoleDepth
	case HoleHeight:
		return &p.HoleHeight
	case RotationAngleX:
		return &p.RotationAngleX
	case RotationAngleY:
		return &p.RotationAngleY
	case RotationAngleZ:
		return &p.RotationAngleZ
	}
	return nil
}

// Validate checks that a loaded parameter document describes a buildable
// beam. Interactive edits never go through Validate; they are clamped.
func (p *Parameters) Validate() error {
	dims := []Name{
		TopShWidth, TopShHeight, BotShWidth, BotShUpHeight, BotShLowHeight,
		RibThick, RibHeight, BeamLength, BeamHeight, HoleDepth, HoleHeight,
	}
	for _, n := range dims {
		v := *p.field(n)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s must be a finite number", n)}
		}
		if v <= 0 {
			return &ValidationError{msg: fmt.Sprintf("%s must be positive, got %.2f", n, v)}
		}
	}
	for _, n := range []Name{RotationAngleX, RotationAngleY, RotationAngleZ} {
		v := *p.field(n)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s must be a finite number", n)}
		}
	}
	return nil
}

// ValidationError represents a parameter validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Lookup maps a case-sensitive string to a known parameter name.
func Lookup(s string) (Name, bool) {
	for _, n := range Names {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}
