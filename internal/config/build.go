package config

import (
	"fmt"

	"github.com/alexiusacademia/gomagnet/internal/magnets"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

func angle(v float64, unit string) points.Angle {
	return points.NewAngle(v, points.ParseUnit(unit))
}

func point2(v []float64) points.Point2 {
	return points.Point2{X: v[0], Y: v[1]}
}

func point3(v []float64) points.Point3 {
	return points.Point3{X: v[0], Y: v[1], Z: v[2]}
}

// Build constructs the magnet described by the entry
func (m Magnet) Build() (magnets.Magnet2D, error) {
	center := point2(m.Center)
	alpha := angle(m.Alpha, m.AlphaAngle)
	jr := m.Magnetisation[0]
	phi := angle(m.Magnetisation[1], m.MagAngle)

	switch m.Kind {
	case KindRectangle:
		return magnets.NewRectangle(m.Size[0], m.Size[1], center, alpha, jr, phi)
	case KindCircle:
		return magnets.NewCircle(m.Size[0], center, alpha, jr, phi)
	case KindPolygon:
		spec := magnets.Regular{
			Sides:     m.NumSides,
			Dimension: magnets.ParseDimension(m.SizeType),
			Size:      m.Size[0],
		}
		return magnets.NewPolygon(spec, center, alpha, jr, phi)
	case KindCustomPolygon:
		spec := magnets.Custom{Vertices: points.Zip(m.Vertices.X, m.Vertices.Y)}
		return magnets.NewPolygon(spec, center, alpha, jr, phi)
	default:
		return nil, validationErrorf("unknown magnet kind %q", m.Kind)
	}
}

// Build constructs the magnet described by the entry
func (m Magnet3D) Build() (magnets.Magnet3D, error) {
	center := point3(m.Center)
	var orientation [3]points.Angle
	for i, v := range m.Orientation {
		orientation[i] = angle(v, m.OrientationAngle)
	}
	jr := m.Magnetisation[0]

	switch m.Kind {
	case KindPrism:
		phi := angle(m.Magnetisation[1], m.MagAngle)
		theta := angle(m.Magnetisation[2], m.MagAngle)
		return magnets.NewPrism([3]float64{m.Size[0], m.Size[1], m.Size[2]}, center, orientation, jr, phi, theta)
	case KindSolenoid:
		return magnets.NewSolenoid(m.Size[0], m.Size[1], center, orientation, jr)
	default:
		return nil, validationErrorf("unknown magnet3d kind %q", m.Kind)
	}
}

// Build2D builds every 2D magnet in file order
func (f *File) Build2D() ([]magnets.Magnet2D, error) {
	out := make([]magnets.Magnet2D, 0, len(f.Magnets))
	for i, m := range f.Magnets {
		mag, err := m.Build()
		if err != nil {
			return nil, fmt.Errorf("magnet %d: %w", i+1, err)
		}
		out = append(out, mag)
	}
	return out, nil
}

// Build3D builds every 3D magnet in file order
func (f *File) Build3D() ([]magnets.Magnet3D, error) {
	out := make([]magnets.Magnet3D, 0, len(f.Magnets3D))
	for i, m := range f.Magnets3D {
		mag, err := m.Build()
		if err != nil {
			return nil, fmt.Errorf("magnet3d %d: %w", i+1, err)
		}
		out = append(out, mag)
	}
	return out, nil
}

// Points2D generates the points described by the grid section
func (f *File) Points2D() []points.Point2 {
	g := f.Grid
	switch g.Kind {
	case GridPoint:
		return []points.Point2{point2(g.Point)}
	case GridLine:
		return points.Line2(point2(g.Start), point2(g.Stop), g.NumPoints)
	case GridGrid:
		return points.Grid2(point2(g.Start), point2(g.Stop), g.NumPoints)
	case GridCustom:
		return points.Zip(g.X, g.Y)
	default:
		return nil
	}
}

// Points3D generates the points described by the grid3d section
func (f *File) Points3D() []points.Point3 {
	g := f.Grid3D
	switch g.Kind {
	case GridPoint:
		return []points.Point3{point3(g.Point)}
	case GridLine:
		return points.Line3(point3(g.Start), point3(g.Stop), g.NumPoints)
	case GridPlane:
		return points.Plane3(point3(g.Start), point3(g.Stop), g.NumPoints)
	case GridCustom:
		out := make([]points.Point3, len(g.X))
		for i := range g.X {
			out[i] = points.Point3{X: g.X[i], Y: g.Y[i], Z: g.Z[i]}
		}
		return out
	default:
		return nil
	}
}

// FromMagnets2D describes built magnets as file entries, with every angle in
// degrees.
func FromMagnets2D(mags []magnets.Magnet2D) []Magnet {
	out := make([]Magnet, 0, len(mags))
	for _, mag := range mags {
		c := mag.Center()
		j := mag.Magnetisation()
		m := Magnet{
			Size:          Size(mag.Size()),
			Center:        []float64{c.X, c.Y},
			Magnetisation: []float64{j.Jr(), j.Phi().Deg()},
			MagAngle:      "degrees",
			Alpha:         mag.Alpha().Deg(),
			AlphaAngle:    "degrees",
		}

		switch v := mag.(type) {
		case *magnets.Rectangle:
			m.Kind = KindRectangle
		case *magnets.Circle:
			m.Kind = KindCircle
		case *magnets.Polygon:
			switch spec := v.Spec().(type) {
			case magnets.Regular:
				m.Kind = KindPolygon
				m.NumSides = spec.Sides
				m.SizeType = spec.Dimension.String()
				m.Size = Size{spec.Size}
			case magnets.Custom:
				m.Kind = KindCustomPolygon
				xs, ys := points.Unzip(spec.Vertices)
				m.Vertices = &Vertices{X: xs, Y: ys}
				m.Size = nil
			}
		default:
			m.Kind = string(mag.Kind())
		}
		out = append(out, m)
	}
	return out
}

// FromMagnets3D describes built 3D magnets as file entries, with every angle
// in degrees.
func FromMagnets3D(mags []magnets.Magnet3D) []Magnet3D {
	out := make([]Magnet3D, 0, len(mags))
	for _, mag := range mags {
		c := mag.Center()
		o := mag.Orientation()
		j := mag.Magnetisation()
		m := Magnet3D{
			Kind:             string(mag.Kind()),
			Size:             append([]float64(nil), mag.Size()...),
			Center:           []float64{c.X, c.Y, c.Z},
			Orientation:      []float64{o[0].Deg(), o[1].Deg(), o[2].Deg()},
			OrientationAngle: "degrees",
			Magnetisation:    []float64{j.Jr(), j.Phi().Deg(), j.Theta().Deg()},
			MagAngle:         "degrees",
		}
		out = append(out, m)
	}
	return out
}

// Demo is the two opposed square magnets over a 100×100 grid from -2 to 2
func Demo() *File {
	f := &File{
		Grid: Grid{Kind: GridGrid, Start: []float64{-2, -2}, Stop: []float64{2, 2}, NumPoints: 100},
		Magnets: []Magnet{
			{Kind: KindRectangle, Size: Size{1, 1}, Center: []float64{-1, -0.5}, Magnetisation: []float64{1, 90}},
			{Kind: KindRectangle, Size: Size{1, 1}, Center: []float64{1, -0.5}, Magnetisation: []float64{-1, 90}},
		},
	}
	f.ApplyDefaults()
	return f
}
