// Package config reads problem files: the magnets to evaluate and the points
// to evaluate them at.
//
// Files are TOML by default; .json, .yaml and .yml are also accepted. Keys
// are camelCase in every format:
//
//	[grid]
//	kind = "grid"
//	start = [-2.0, -2.0]
//	stop = [2.0, 2.0]
//	numPoints = 100
//
//	[[magnet]]
//	kind = "rectangle"
//	size = [1.0, 1.0]
//	center = [-1.0, -0.5]
//	magnetisation = [1.0, 90.0]
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Grid kinds
const (
	GridPoint  = "point"
	GridLine   = "line"
	GridGrid   = "grid"
	GridPlane  = "plane"
	GridCustom = "custom"
	GridNone   = "none"
)

// Magnet kinds as written in problem files
const (
	KindRectangle     = "rectangle"
	KindCircle        = "circle"
	KindPolygon       = "polygon"
	KindCustomPolygon = "customPolygon"
	KindPrism         = "prism"
	KindSolenoid      = "solenoid"
)

// File is a decoded problem file
type File struct {
	Grid      Grid       `toml:"grid" json:"grid" yaml:"grid"`
	Magnets   []Magnet   `toml:"magnet" json:"magnet" yaml:"magnet"`
	Grid3D    Grid3D     `toml:"grid3d" json:"grid3d" yaml:"grid3d"`
	Magnets3D []Magnet3D `toml:"magnet3d" json:"magnet3d" yaml:"magnet3d"`
}

// Grid describes the 2D evaluation points
type Grid struct {
	Kind      string    `toml:"kind" json:"kind" yaml:"kind"`
	Point     []float64 `toml:"point,omitempty" json:"point,omitempty" yaml:"point,omitempty"`
	Start     []float64 `toml:"start,omitempty" json:"start,omitempty" yaml:"start,omitempty"`
	Stop      []float64 `toml:"stop,omitempty" json:"stop,omitempty" yaml:"stop,omitempty"`
	NumPoints int       `toml:"numPoints,omitempty" json:"numPoints,omitempty" yaml:"numPoints,omitempty"`
	X         []float64 `toml:"x,omitempty" json:"x,omitempty" yaml:"x,omitempty"`
	Y         []float64 `toml:"y,omitempty" json:"y,omitempty" yaml:"y,omitempty"`
	Units     string    `toml:"units,omitempty" json:"units,omitempty" yaml:"units,omitempty"`
}

// Grid3D describes the 3D evaluation points
type Grid3D struct {
	Kind      string    `toml:"kind" json:"kind" yaml:"kind"`
	Point     []float64 `toml:"point,omitempty" json:"point,omitempty" yaml:"point,omitempty"`
	Start     []float64 `toml:"start,omitempty" json:"start,omitempty" yaml:"start,omitempty"`
	Stop      []float64 `toml:"stop,omitempty" json:"stop,omitempty" yaml:"stop,omitempty"`
	NumPoints int       `toml:"numPoints,omitempty" json:"numPoints,omitempty" yaml:"numPoints,omitempty"`
	X         []float64 `toml:"x,omitempty" json:"x,omitempty" yaml:"x,omitempty"`
	Y         []float64 `toml:"y,omitempty" json:"y,omitempty" yaml:"y,omitempty"`
	Z         []float64 `toml:"z,omitempty" json:"z,omitempty" yaml:"z,omitempty"`
	Units     string    `toml:"units,omitempty" json:"units,omitempty" yaml:"units,omitempty"`
}

// Magnet is one 2D magnet entry. Which fields apply depends on Kind.
type Magnet struct {
	Kind          string    `toml:"kind" json:"kind" yaml:"kind"`
	Size          Size      `toml:"size,omitempty" json:"size,omitempty" yaml:"size,omitempty"`
	Center        []float64 `toml:"center,omitempty" json:"center,omitempty" yaml:"center,omitempty"`
	Magnetisation []float64 `toml:"magnetisation,omitempty" json:"magnetisation,omitempty" yaml:"magnetisation,omitempty"`
	MagAngle      string    `toml:"magAngle,omitempty" json:"magAngle,omitempty" yaml:"magAngle,omitempty"`
	Alpha         float64   `toml:"alpha" json:"alpha" yaml:"alpha"`
	AlphaAngle    string    `toml:"alphaAngle,omitempty" json:"alphaAngle,omitempty" yaml:"alphaAngle,omitempty"`

	// polygon
	NumSides int    `toml:"numSides,omitempty" json:"numSides,omitempty" yaml:"numSides,omitempty"`
	SizeType string `toml:"sizeType,omitempty" json:"sizeType,omitempty" yaml:"sizeType,omitempty"`

	// customPolygon, relative to Center
	Vertices *Vertices `toml:"vertices,omitempty" json:"vertices,omitempty" yaml:"vertices,omitempty"`
}

// Magnet3D is one 3D magnet entry. A prism takes size [width, height,
// depth]; a solenoid takes size [radius, length] and uses only the first
// magnetisation value.
type Magnet3D struct {
	Kind             string    `toml:"kind" json:"kind" yaml:"kind"`
	Size             []float64 `toml:"size,omitempty" json:"size,omitempty" yaml:"size,omitempty"`
	Center           []float64 `toml:"center,omitempty" json:"center,omitempty" yaml:"center,omitempty"`
	Orientation      []float64 `toml:"orientation,omitempty" json:"orientation,omitempty" yaml:"orientation,omitempty"`
	OrientationAngle string    `toml:"orientationAngle,omitempty" json:"orientationAngle,omitempty" yaml:"orientationAngle,omitempty"`
	Magnetisation    []float64 `toml:"magnetisation,omitempty" json:"magnetisation,omitempty" yaml:"magnetisation,omitempty"`
	MagAngle         string    `toml:"magAngle,omitempty" json:"magAngle,omitempty" yaml:"magAngle,omitempty"`
}

// Vertices holds a vertex loop as parallel coordinate lists
type Vertices struct {
	X []float64 `toml:"x" json:"x" yaml:"x"`
	Y []float64 `toml:"y" json:"y" yaml:"y"`
}

// Size accepts either a single number or a list of numbers
type Size []float64

// UnmarshalTOML implements toml.Unmarshaler
func (s *Size) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case float64:
		*s = Size{val}
	case int64:
		*s = Size{float64(val)}
	case []any:
		out := make(Size, len(val))
		for i, item := range val {
			switch n := item.(type) {
			case float64:
				out[i] = n
			case int64:
				out[i] = float64(n)
			default:
				return fmt.Errorf("size element %d: expected a number, got %T", i, item)
			}
		}
		*s = out
	default:
		return fmt.Errorf("size: expected a number or a list, got %T", v)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Size) UnmarshalJSON(data []byte) error {
	var single float64
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Size{single}
		return nil
	}
	var list []float64
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("size: expected a number or a list: %w", err)
	}
	*s = list
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var single float64
		if err := node.Decode(&single); err != nil {
			return fmt.Errorf("size: %w", err)
		}
		*s = Size{single}
		return nil
	}
	var list []float64
	if err := node.Decode(&list); err != nil {
		return fmt.Errorf("size: %w", err)
	}
	*s = list
	return nil
}

// ValidationError represents an invalid problem file
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
