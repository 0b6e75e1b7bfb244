// Package solid turns 3D magnet layouts into printable meshes.
package solid

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/alexiusacademia/gomagnet/internal/magnets"
)

// DefaultCells is the marching cubes resolution along the longest side of
// the layout.
const DefaultCells = 100

// ErrNoMagnets is returned when there is nothing to mesh
var ErrNoMagnets = errors.New("no 3D magnets to export")

// Build unions the bodies of mags, each placed at its center with its
// orientation.
func Build(mags []magnets.Magnet3D) (sdf.SDF3, error) {
	if len(mags) == 0 {
		return nil, ErrNoMagnets
	}

	bodies := make([]sdf.SDF3, 0, len(mags))
	for i, m := range mags {
		body, err := shape(m)
		if err != nil {
			return nil, fmt.Errorf("magnet3d %d (%s): %w", i+1, m.Kind(), err)
		}
		bodies = append(bodies, sdf.Transform3D(body, placement(m)))
	}
	return sdf.Union3D(bodies...), nil
}

// shape is the body in its own frame, centered at the origin
func shape(m magnets.Magnet3D) (sdf.SDF3, error) {
	switch v := m.(type) {
	case *magnets.Prism:
		size := v.Size()
		return sdf.Box3D(v3.Vec{X: size[0], Y: size[1], Z: size[2]}, 0)
	case *magnets.Solenoid:
		return sdf.Cylinder3D(v.Length(), v.Radius(), 0)
	default:
		return nil, fmt.Errorf("no solid for magnet kind %q", m.Kind())
	}
}

// placement matches the field kernels: Rz·Ry·Rx, then translate
func placement(m magnets.Magnet3D) sdf.M44 {
	o := m.Orientation()
	c := m.Center()
	return sdf.Translate3d(v3.Vec{X: c.X, Y: c.Y, Z: c.Z}).
		Mul(sdf.RotateZ(o[2].Rad())).
		Mul(sdf.RotateY(o[1].Rad())).
		Mul(sdf.RotateX(o[0].Rad()))
}

// Export meshes mags with marching cubes and writes the result as STL.
// cells <= 0 uses DefaultCells. It returns the number of triangles written.
func Export(path string, mags []magnets.Magnet3D, cells int) (int, error) {
	s, err := Build(mags)
	if err != nil {
		return 0, err
	}
	if cells <= 0 {
		cells = DefaultCells
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return 0, fmt.Errorf("meshing produced no triangles at %d cells", cells)
	}
	if err := render.SaveSTL(path, triangles); err != nil {
		return 0, fmt.Errorf("failed to write STL: %w", err)
	}
	return len(triangles), nil
}
