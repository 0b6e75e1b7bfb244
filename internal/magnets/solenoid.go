package magnets

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomagnet/internal/elliptic"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

// Solenoid is a finite solenoid of the given radius and length, or
// equivalently a cylinder magnetised along its axis with jr = μ0·n·I. The
// axis is local z.
type Solenoid struct {
	radius, length float64
	center         points.Point3
	orientation    [3]points.Angle
	jr             float64
}

// NewSolenoid builds a solenoid centered at center with its axis along the
// local z direction of orientation.
func NewSolenoid(radius, length float64, center points.Point3, orientation [3]points.Angle, jr float64) (*Solenoid, error) {
	if !positive(radius) || !positive(length) {
		return nil, geometryErrorf(KindSolenoid, "radius %g and length %g must be positive", radius, length)
	}
	return &Solenoid{radius: radius, length: length, center: center, orientation: orientation, jr: jr}, nil
}

func (s *Solenoid) magnet3D() {}

func (s *Solenoid) Kind() Kind { return KindSolenoid }
func (s *Solenoid) Center() points.Point3 { return s.center }
func (s *Solenoid) Orientation() [3]points.Angle { return s.orientation }
func (s *Solenoid) Size() []float64 { return []float64{s.radius, s.length} }
func (s *Solenoid) Radius() float64 { return s.radius }
func (s *Solenoid) Length() float64 { return s.length }

// Magnetisation is jr along the local axis
func (s *Solenoid) Magnetisation() Magnetisation3D {
	return NewMagnetisation3D(s.jr, points.Radians(0), points.Radians(0))
}

// SetMagnetisation replaces the axial field strength
func (s *Solenoid) SetMagnetisation(jr float64) {
	s.jr = jr
}

func (s *Solenoid) String() string {
	return fmt.Sprintf("Solenoid[r=%g L=%g at %s, B0=%.3g T]", s.radius, s.length, s.center, s.jr)
}

// Field returns the flux density at pt. It is NaN on the rim of either end
// face, where the elliptic integral diverges.
func (s *Solenoid) Field(pt points.Point3) (points.Point3, error) {
	if err := checkPoint3(KindSolenoid, pt); err != nil {
		return points.Point3{}, err
	}
	f := orientationFrame(s.center, s.orientation)
	l := f.ToLocal(pt)

	rho := math.Hypot(l.X, l.Y)
	bRho, bZ := SolenoidField(s.radius, s.length/2, rho, l.Z, s.jr)

	local := points.Point3{Z: bZ}
	if rho > 0 {
		local.X = bRho * l.X / rho
		local.Y = bRho * l.Y / rho
	}
	return f.ToGlobal(local), nil
}

// SolenoidField returns the radial and axial flux density at cylindrical
// (rho, z) of a solenoid with radius a spanning z in [-b, b] and interior
// field b0 (Derby and Olbert).
func SolenoidField(a, b, rho, z, b0 float64) (bRho, bZ float64) {
	zp, zn := z+b, z-b
	sum, diff := a+rho, a-rho

	rp := math.Sqrt(zp*zp + sum*sum)
	rn := math.Sqrt(zn*zn + sum*sum)

	alphaP, alphaN := a/rp, a/rn
	betaP, betaN := zp/rp, zn/rn
	gamma := diff / sum

	kp := math.Sqrt(zp*zp+diff*diff) / rp
	kn := math.Sqrt(zn*zn+diff*diff) / rn

	bRho = b0 / math.Pi * (alphaP*elliptic.Cel(kp, 1, 1, -1) - alphaN*elliptic.Cel(kn, 1, 1, -1))
	bZ = b0 * a / (math.Pi * sum) * (betaP*elliptic.Cel(kp, gamma*gamma, 1, gamma) - betaN*elliptic.Cel(kn, gamma*gamma, 1, gamma))
	return bRho, bZ
}
