package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a problem file encoding
type Format int

const (
	FormatTOML Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// DetectFormat picks the format from the file extension, defaulting to TOML
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads, defaults and validates a problem file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses data in the given format, fills defaults and validates the
// result.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("JSON parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, validationErrorf("unknown key %q", undecoded[0].String())
		}
	}

	f.ApplyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ApplyDefaults fills every unset field with its default
func (f *File) ApplyDefaults() {
	g := &f.Grid
	if g.Kind == "" {
		g.Kind = GridGrid
	}
	switch g.Kind {
	case GridPoint:
		if g.Point == nil {
			g.Point = []float64{1, 1}
		}
	case GridLine, GridGrid:
		if g.Start == nil {
			g.Start = []float64{-2, -2}
		}
		if g.Stop == nil {
			g.Stop = []float64{2, 2}
		}
		if g.NumPoints == 0 {
			g.NumPoints = 100
		}
	case GridCustom:
		if g.X == nil && g.Y == nil {
			g.X = []float64{-1, 0, 1}
			g.Y = []float64{-1, 0, 1}
		}
	}
	if g.Units == "" {
		g.Units = "m"
	}

	g3 := &f.Grid3D
	if g3.Kind == "" {
		g3.Kind = GridNone
		if len(f.Magnets3D) > 0 {
			g3.Kind = GridLine
		}
	}
	switch g3.Kind {
	case GridPoint:
		if g3.Point == nil {
			g3.Point = []float64{1, 1, 1}
		}
	case GridLine:
		if g3.Start == nil {
			g3.Start = []float64{0, 0, -2}
		}
		if g3.Stop == nil {
			g3.Stop = []float64{0, 0, 2}
		}
		if g3.NumPoints == 0 {
			g3.NumPoints = 100
		}
	case GridPlane:
		if g3.Start == nil {
			g3.Start = []float64{-2, -2, 0}
		}
		if g3.Stop == nil {
			g3.Stop = []float64{2, 2, 0}
		}
		if g3.NumPoints == 0 {
			g3.NumPoints = 100
		}
	}
	if g3.Units == "" {
		g3.Units = g.Units
	}

	for i := range f.Magnets {
		f.Magnets[i].applyDefaults()
	}
	for i := range f.Magnets3D {
		f.Magnets3D[i].applyDefaults()
	}
}

func (m *Magnet) applyDefaults() {
	if m.Size == nil {
		switch m.Kind {
		case KindRectangle:
			m.Size = Size{1, 1}
		default:
			m.Size = Size{1}
		}
	}
	if m.Center == nil {
		m.Center = []float64{0, 0}
	}
	if m.Magnetisation == nil {
		m.Magnetisation = []float64{1, 90}
	}
	if m.MagAngle == "" {
		m.MagAngle = "degrees"
	}
	if m.AlphaAngle == "" {
		m.AlphaAngle = "degrees"
	}
	switch m.Kind {
	case KindPolygon:
		if m.NumSides == 0 {
			m.NumSides = 4
		}
		if m.SizeType == "" {
			m.SizeType = "side"
		}
	case KindCustomPolygon:
		if m.Vertices == nil {
			m.Vertices = &Vertices{
				X: []float64{0.5, 0.5, -0.5, -0.5},
				Y: []float64{0.5, -0.5, -0.5, 0.5},
			}
		}
	}
}

func (m *Magnet3D) applyDefaults() {
	if m.Size == nil {
		switch m.Kind {
		case KindSolenoid:
			m.Size = []float64{1, 1}
		default:
			m.Size = []float64{1, 1, 1}
		}
	}
	if m.Center == nil {
		m.Center = []float64{0, 0, 0}
	}
	if m.Orientation == nil {
		m.Orientation = []float64{0, 0, 0}
	}
	if m.OrientationAngle == "" {
		m.OrientationAngle = "degrees"
	}
	if m.Magnetisation == nil {
		m.Magnetisation = []float64{1, 0, 0}
	}
	if m.MagAngle == "" {
		m.MagAngle = "degrees"
	}
}

// Validate checks the shape of every entry. Geometry that only the magnet
// constructors can judge, such as a degenerate custom polygon, is reported
// when the magnets are built.
func (f *File) Validate() error {
	if err := f.Grid.validate(); err != nil {
		return err
	}
	if err := f.Grid3D.validate(); err != nil {
		return err
	}
	for i := range f.Magnets {
		if err := f.Magnets[i].validate(); err != nil {
			return validationErrorf("magnet %d: %v", i+1, err)
		}
	}
	for i := range f.Magnets3D {
		if err := f.Magnets3D[i].validate(); err != nil {
			return validationErrorf("magnet3d %d: %v", i+1, err)
		}
	}
	return nil
}

func checkLen(name string, v []float64, n int) error {
	if len(v) != n {
		return validationErrorf("%s needs %d values, got %d", name, n, len(v))
	}
	return nil
}

func (g *Grid) validate() error {
	switch g.Kind {
	case GridPoint:
		return checkLen("grid point", g.Point, 2)
	case GridLine, GridGrid:
		if err := checkLen("grid start", g.Start, 2); err != nil {
			return err
		}
		if err := checkLen("grid stop", g.Stop, 2); err != nil {
			return err
		}
		if g.NumPoints < 0 {
			return validationErrorf("grid numPoints must not be negative")
		}
	case GridCustom:
		if len(g.X) != len(g.Y) {
			return validationErrorf("custom grid has %d x values but %d y values", len(g.X), len(g.Y))
		}
	case GridNone:
	default:
		return validationErrorf("unknown grid kind %q", g.Kind)
	}
	return nil
}

func (g *Grid3D) validate() error {
	switch g.Kind {
	case GridPoint:
		return checkLen("grid3d point", g.Point, 3)
	case GridLine, GridPlane:
		if err := checkLen("grid3d start", g.Start, 3); err != nil {
			return err
		}
		if err := checkLen("grid3d stop", g.Stop, 3); err != nil {
			return err
		}
		if g.NumPoints < 0 {
			return validationErrorf("grid3d numPoints must not be negative")
		}
	case GridCustom:
		if len(g.X) != len(g.Y) || len(g.X) != len(g.Z) {
			return validationErrorf("custom grid3d needs equal x, y and z lengths, got %d, %d, %d", len(g.X), len(g.Y), len(g.Z))
		}
	case GridNone:
	default:
		return validationErrorf("unknown grid3d kind %q", g.Kind)
	}
	return nil
}

func (m *Magnet) validate() error {
	if err := checkLen("center", m.Center, 2); err != nil {
		return err
	}
	if err := checkLen("magnetisation", m.Magnetisation, 2); err != nil {
		return err
	}
	switch m.Kind {
	case KindRectangle:
		return checkLen("rectangle size", m.Size, 2)
	case KindCircle, KindPolygon:
		return checkLen(m.Kind+" size", m.Size, 1)
	case KindCustomPolygon:
		if len(m.Vertices.X) != len(m.Vertices.Y) {
			return validationErrorf("vertices have %d x values but %d y values", len(m.Vertices.X), len(m.Vertices.Y))
		}
		return nil
	default:
		return validationErrorf("unknown magnet kind %q", m.Kind)
	}
}

func (m *Magnet3D) validate() error {
	if err := checkLen("center", m.Center, 3); err != nil {
		return err
	}
	if err := checkLen("orientation", m.Orientation, 3); err != nil {
		return err
	}
	switch m.Kind {
	case KindPrism:
		if err := checkLen("magnetisation", m.Magnetisation, 3); err != nil {
			return err
		}
		return checkLen("prism size", m.Size, 3)
	case KindSolenoid:
		if len(m.Magnetisation) == 0 {
			return validationErrorf("solenoid magnetisation needs a field strength")
		}
		return checkLen("solenoid size", m.Size, 2)
	default:
		return validationErrorf("unknown magnet3d kind %q", m.Kind)
	}
}
