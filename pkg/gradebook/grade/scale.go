// Package grade provides the grade-point scale, GPA computation and class-of-award ladder.
package grade

import (
	"math"
	"strconv"
	"strings"
)

// Class labels, highest first.
const (
	ClassFirst       = "First Class"
	ClassSecondUpper = "Second Class (Upper Division)"
	ClassSecondLower = "Second Class (Lower Division)"
	ClassPass        = "Pass"
	ClassFail        = "Fail"
)

// letters lists the recognised grades in scale order.
var letters = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "E", "F"}

// PointMap maps a recognised letter grade to its grade point.
var PointMap = map[string]float64{
	"A+": 4.00, "A": 4.00, "A-": 3.70,
	"B+": 3.30, "B": 3.00, "B-": 2.70,
	"C+": 2.30, "C": 2.00, "C-": 1.70,
	"D+": 1.30, "D": 1.00, "E": 0.00,
	"F": 0.00,
}

// classBand is one step of the class ladder.
type classBand struct {
	min   float64
	label string
}

// ladder is evaluated top-down; the first band whose minimum is met wins.
var ladder = []classBand{
	{3.70, ClassFirst},
	{3.30, ClassSecondUpper},
	{3.00, ClassSecondLower},
	{2.00, ClassPass},
}

// truncateGuard absorbs binary representation error before flooring,
// e.g. 3.72 stored as 3.7199999999999998.
const truncateGuard = 1e-9

// Normalize returns the comparison form of a cell value: trimmed and upper-cased.
func Normalize(g string) string {
	return strings.ToUpper(strings.TrimSpace(g))
}

// Point returns the grade point for g and whether g is a recognised grade.
// Blank and unknown values are ungraded.
func Point(g string) (float64, bool) {
	p, ok := PointMap[Normalize(g)]
	return p, ok
}

// Grades returns the recognised letter grades in scale order.
func Grades() []string {
	out := make([]string, len(letters))
	copy(out, letters)
	return out
}

// ClassOf maps a GPA to its class-of-award label.
func ClassOf(gpa float64) string {
	for _, b := range ladder {
		if gpa >= b.min {
			return b.label
		}
	}
	return ClassFail
}

// Truncate floors gpa to two decimal places. It never rounds up.
func Truncate(gpa float64) float64 {
	return math.Floor(gpa*100+truncateGuard) / 100
}

// Format renders the truncated GPA with exactly two decimals.
func Format(gpa float64) string {
	return strconv.FormatFloat(Truncate(gpa), 'f', 2, 64)
}
