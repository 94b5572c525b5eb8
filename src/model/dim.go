// Package model holds the axis-model collaborator and the chart-scoped
// registry the zoom core reads series and axes from.
package model

// Dim is an axis dimension role in a coordinate system.
type Dim string

const (
	DimX      Dim = "x"
	DimY      Dim = "y"
	DimRadius Dim = "radius"
	DimAngle  Dim = "angle"
	DimSingle Dim = "single"
)

// Orthogonal returns the paired role sharing the same coordinate system
// (x<->y, radius<->angle). The single role has no pair.
func (d Dim) Orthogonal() (Dim, bool) {
	switch d {
	case DimX:
		return DimY, true
	case DimY:
		return DimX, true
	case DimRadius:
		return DimAngle, true
	case DimAngle:
		return DimRadius, true
	}
	return "", false
}
