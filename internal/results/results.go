// Package results writes evaluated fields to disk.
package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/alexiusacademia/gomagnet/internal/config"
	"github.com/alexiusacademia/gomagnet/internal/field"
	"github.com/alexiusacademia/gomagnet/internal/magnets"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

// Floats is a list of numbers that encodes non-finite values as JSON null
// and decodes null as NaN.
type Floats []float64

// MarshalJSON implements json.Marshaler
func (f Floats) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (f *Floats) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Floats, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	*f = out
	return nil
}

// Vec2 holds 2D vectors as parallel coordinate lists
type Vec2 struct {
	X Floats `json:"x"`
	Y Floats `json:"y"`
}

// NewVec2 splits pts into coordinate lists
func NewVec2(pts []points.Point2) *Vec2 {
	xs, ys := points.Unzip(pts)
	return &Vec2{X: xs, Y: ys}
}

// Points joins the coordinate lists back into points
func (v *Vec2) Points() []points.Point2 {
	return points.Zip(v.X, v.Y)
}

// Vec3 holds 3D vectors as parallel coordinate lists
type Vec3 struct {
	X Floats `json:"x"`
	Y Floats `json:"y"`
	Z Floats `json:"z"`
}

// NewVec3 splits pts into coordinate lists
func NewVec3(pts []points.Point3) *Vec3 {
	v := &Vec3{
		X: make(Floats, len(pts)),
		Y: make(Floats, len(pts)),
		Z: make(Floats, len(pts)),
	}
	for i, p := range pts {
		v.X[i], v.Y[i], v.Z[i] = p.X, p.Y, p.Z
	}
	return v
}

// Points joins the coordinate lists back into points
func (v *Vec3) Points() []points.Point3 {
	out := make([]points.Point3, len(v.X))
	for i := range v.X {
		out[i] = points.Point3{X: v.X[i], Y: v.Y[i], Z: v.Z[i]}
	}
	return out
}

// SimResult is one evaluation run: the magnets, the points and the field at
// each point.
type SimResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Units     string    `json:"units"`

	Magnets []config.Magnet `json:"magnets,omitempty"`
	Points  *Vec2           `json:"points,omitempty"`
	Field   *Vec2           `json:"field,omitempty"`
	Summary *field.Summary  `json:"summary,omitempty"`

	Magnets3D []config.Magnet3D `json:"magnets3d,omitempty"`
	Points3D  *Vec3             `json:"points3d,omitempty"`
	Field3D   *Vec3             `json:"field3d,omitempty"`
	Summary3D *field.Summary    `json:"summary3d,omitempty"`
}

// New starts an empty result with a fresh run id
func New(units string) *SimResult {
	return &SimResult{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Units:     units,
	}
}

// Add2D records a 2D evaluation. pts and f must have equal length.
func (r *SimResult) Add2D(mags []magnets.Magnet2D, pts, f []points.Point2) {
	summary := field.Summarize(f)
	r.Magnets = config.FromMagnets2D(mags)
	r.Points = NewVec2(pts)
	r.Field = NewVec2(f)
	r.Summary = &summary
}

// Add3D records a 3D evaluation. pts and f must have equal length.
func (r *SimResult) Add3D(mags []magnets.Magnet3D, pts, f []points.Point3) {
	summary := field.Summarize3(f)
	r.Magnets3D = config.FromMagnets3D(mags)
	r.Points3D = NewVec3(pts)
	r.Field3D = NewVec3(f)
	r.Summary3D = &summary
}

// Save writes the result as indented JSON, creating parent directories
func (r *SimResult) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a result written by Save
func Load(path string) (*SimResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r SimResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &r, nil
}

// SaveConfig writes f as a TOML problem file
func SaveConfig(path string, f *config.File) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(out).Encode(f); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return out.Close()
}
