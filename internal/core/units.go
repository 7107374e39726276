package core

import "fmt"

// UnitToCM is the length of one document unit (1/72 inch) in centimetres.
const UnitToCM = 0.0352778

// UnitsPerInch is the number of document units in one inch.
const UnitsPerInch = 72

// ToDocumentUnits converts a CSS-pixel offset inside the page to document
// coordinates in centimetres. The offset is expected to be clamped to the
// page already.
func ToDocumentUnits(p Point, scale float64) Point {
	return Point{
		X: (p.X / scale) * UnitToCM,
		Y: (p.Y / scale) * UnitToCM,
	}
}

// ToPixels is the inverse of ToDocumentUnits.
func ToPixels(d Point, scale float64) Point {
	return Point{
		X: d.X / UnitToCM * scale,
		Y: d.Y / UnitToCM * scale,
	}
}

// FormatCM renders a coordinate pair as "(X.XXcm,Y.YYcm)".
func FormatCM(d Point) string {
	return fmt.Sprintf("(%.2fcm,%.2fcm)", d.X, d.Y)
}
