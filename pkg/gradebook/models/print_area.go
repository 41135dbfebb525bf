package models

// PrintArea is a rectangular cell range defined as a sheet's print area.
// Coordinates are 1-based and inclusive.
type PrintArea struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}
