package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gomagnet/internal/points"
)

// FieldGrid is |B| sampled on a rectangular grid. It implements
// plotter.GridXYZ.
type FieldGrid struct {
	xs, ys []float64
	// mag[c*len(ys)+r] is |B| at (xs[c], ys[r])
	mag []float64
}

// NewFieldGrid arranges points laid out x-major, as produced by
// points.Grid2, with the field at each of them.
func NewFieldGrid(pts, field []points.Point2) (*FieldGrid, error) {
	if len(pts) != len(field) {
		return nil, fmt.Errorf("%d points but %d field values", len(pts), len(field))
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("no points to map")
	}

	nRows := 1
	for nRows < len(pts) && pts[nRows].X == pts[0].X {
		nRows++
	}
	if len(pts)%nRows != 0 {
		return nil, fmt.Errorf("%d points do not form a grid with %d rows", len(pts), nRows)
	}
	nCols := len(pts) / nRows
	if nRows < 2 || nCols < 2 {
		return nil, fmt.Errorf("a field map needs at least 2×2 points, got %d×%d", nCols, nRows)
	}

	g := &FieldGrid{
		xs:  make([]float64, nCols),
		ys:  make([]float64, nRows),
		mag: make([]float64, len(pts)),
	}
	for c := range g.xs {
		g.xs[c] = pts[c*nRows].X
	}
	for r := range g.ys {
		g.ys[r] = pts[r].Y
	}
	for i, b := range field {
		m := b.Magnitude()
		if math.IsInf(m, 0) {
			m = math.NaN()
		}
		g.mag[i] = m
	}
	return g, nil
}

func (g *FieldGrid) Dims() (c, r int) { return len(g.xs), len(g.ys) }
func (g *FieldGrid) Z(c, r int) float64 { return g.mag[c*len(g.ys)+r] }
func (g *FieldGrid) X(c int) float64 { return g.xs[c] }
func (g *FieldGrid) Y(r int) float64 { return g.ys[r] }

// Min returns the smallest finite |B|
func (g *FieldGrid) Min() float64 {
	lo, _ := g.extremes()
	return lo
}

// Max returns the largest finite |B|
func (g *FieldGrid) Max() float64 {
	_, hi := g.extremes()
	return hi
}

func (g *FieldGrid) extremes() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.mag {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// FieldMapData is everything drawn on a field map
type FieldMapData struct {
	Title string
	Units string
	Grid  *FieldGrid
	// Outlines are magnet boundaries in global coordinates
	Outlines [][]points.Point2
}

// ExportFieldMap draws |B| as a heat map with the magnet outlines on top
func ExportFieldMap(data FieldMapData, filename string) error {
	if data.Grid == nil {
		return fmt.Errorf("field map has no grid")
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Field magnitude |B| (T)"
	}
	p.X.Label.Text = axisLabel("x", data.Units)
	p.Y.Label.Text = axisLabel("y", data.Units)

	heat := plotter.NewHeatMap(data.Grid, palette.Heat(12, 1))
	heat.NaN = color.White
	p.Add(heat)

	for _, outline := range data.Outlines {
		if len(outline) < 2 {
			continue
		}
		xys := make(plotter.XYs, 0, len(outline)+1)
		for _, v := range outline {
			xys = append(xys, plotter.XY{X: v.X, Y: v.Y})
		}
		if len(outline) > 2 {
			xys = append(xys, plotter.XY{X: outline[0].X, Y: outline[0].Y})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	c, r := data.Grid.Dims()
	p.X.Min, p.X.Max = data.Grid.X(0), data.Grid.X(c-1)
	p.Y.Min, p.Y.Max = data.Grid.Y(0), data.Grid.Y(r-1)

	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

// Series is one named curve of a profile
type Series struct {
	Name   string
	Values []float64
}

// ProfileData is field components sampled along a path
type ProfileData struct {
	Title string
	Units string
	// Distance is the arc length along the path for each sample
	Distance []float64
	Series   []Series
}

// ProfileFromField builds |B|, Bx and By curves along the path pts
func ProfileFromField(pts, field []points.Point2) ProfileData {
	bx := make([]float64, len(field))
	by := make([]float64, len(field))
	mag := make([]float64, len(field))
	for i, b := range field {
		bx[i], by[i], mag[i] = b.X, b.Y, b.Magnitude()
	}
	return ProfileData{
		Distance: arcLength(len(pts), func(i int) float64 { return pts[i].Distance(pts[i-1]) }),
		Series:   []Series{{"|B|", mag}, {"Bx", bx}, {"By", by}},
	}
}

// ProfileFromField3 builds |B|, Bx, By and Bz curves along the path pts
func ProfileFromField3(pts, field []points.Point3) ProfileData {
	bx := make([]float64, len(field))
	by := make([]float64, len(field))
	bz := make([]float64, len(field))
	mag := make([]float64, len(field))
	for i, b := range field {
		bx[i], by[i], bz[i], mag[i] = b.X, b.Y, b.Z, b.Magnitude()
	}
	return ProfileData{
		Distance: arcLength(len(pts), func(i int) float64 { return pts[i].Sub(pts[i-1]).Magnitude() }),
		Series:   []Series{{"|B|", mag}, {"Bx", bx}, {"By", by}, {"Bz", bz}},
	}
}

func arcLength(n int, step func(i int) float64) []float64 {
	d := make([]float64, n)
	for i := 1; i < n; i++ {
		d[i] = d[i-1] + step(i)
	}
	return d
}

var seriesColors = []color.Color{
	color.RGBA{R: 0, G: 0, B: 0, A: 255},
	color.RGBA{R: 220, G: 20, B: 60, A: 255},
	color.RGBA{R: 30, G: 100, B: 200, A: 255},
	color.RGBA{R: 0, G: 128, B: 0, A: 255},
}

// ExportFieldProfile draws every series against distance along the path.
// Non-finite samples are skipped.
func ExportFieldProfile(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Field along path"
	}
	p.X.Label.Text = axisLabel("distance", data.Units)
	p.Y.Label.Text = "B (T)"
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, s := range data.Series {
		xys := make(plotter.XYs, 0, len(s.Values))
		for j, v := range s.Values {
			if j >= len(data.Distance) || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			xys = append(xys, plotter.XY{X: data.Distance[j], Y: v})
		}
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = seriesColors[i%len(seriesColors)]
		p.Add(line)
		p.Legend.Add(s.Name, line)
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("profile has no finite values")
	}
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func axisLabel(name, units string) string {
	if units == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, units)
}

// save writes p, choosing the format from the extension and falling back to
// PNG when it has none that gonum/plot knows.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
