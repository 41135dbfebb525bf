package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"A+", 4.00, true},
		{" a ", 4.00, true},
		{"a-", 3.70, true},
		{"B+", 3.30, true},
		{"C-", 1.70, true},
		{"D+", 1.30, true},
		{"E", 0, true},
		{"f", 0, true},
		{"", 0, false},
		{"AB", 0, false},
		{"D-", 0, false},
		{"-", 0, false},
	}

	for _, tt := range tests {
		p, ok := Point(tt.input)
		assert.Equal(t, tt.ok, ok, "Point(%q) ok", tt.input)
		assert.Equal(t, tt.expected, p, "Point(%q)", tt.input)
	}
}

func TestComputeGPAUnweightedIgnoresUngraded(t *testing.T) {
	gpa := ComputeGPA([]string{"A", "B", "", "AB", "absent"}, nil)
	assert.InDelta(t, 3.5, gpa, 1e-9)

	assert.Equal(t, 0.0, ComputeGPA([]string{"", "x"}, nil))
	assert.Equal(t, 0.0, ComputeGPA(nil, nil))
}

func TestComputeGPALengthMismatchFallsBackToMean(t *testing.T) {
	gpa := ComputeGPA([]string{"A", "C"}, []float64{3})
	assert.InDelta(t, 3.0, gpa, 1e-9)
}

func TestComputeGPAWeighted(t *testing.T) {
	gpa := ComputeGPA([]string{"A", "B+"}, []float64{3, 2})
	assert.InDelta(t, 3.72, gpa, 1e-9)
	assert.Equal(t, "3.72", Format(gpa))
	assert.Equal(t, ClassFirst, ClassOf(Truncate(gpa)))
}

func TestComputeGPAWeightedSkipsMissingCredit(t *testing.T) {
	// The B has no credit and the blank is ungraded; only the A counts.
	gpa := ComputeGPA([]string{"A", "B", ""}, []float64{3, 0, 4})
	assert.InDelta(t, 4.0, gpa, 1e-9)
}

func TestComputeGPAWeightedZeroCredit(t *testing.T) {
	assert.Equal(t, 0.0, ComputeGPA([]string{"A", "B"}, []float64{0, 0}))
	assert.Equal(t, 0.0, ComputeGPA([]string{"", "X"}, []float64{3, 2}))
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		gpa      float64
		expected string
	}{
		{4.00, ClassFirst},
		{3.70, ClassFirst},
		{3.6999, ClassSecondUpper},
		{3.30, ClassSecondUpper},
		{3.29, ClassSecondLower},
		{3.00, ClassSecondLower},
		{2.99, ClassPass},
		{2.00, ClassPass},
		{1.99, ClassFail},
		{0, ClassFail},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassOf(tt.gpa), "ClassOf(%v)", tt.gpa)
	}
}

func TestClassOfMonotonic(t *testing.T) {
	rank := map[string]int{ClassFail: 0, ClassPass: 1, ClassSecondLower: 2, ClassSecondUpper: 3, ClassFirst: 4}
	prev := -1
	for x := 0; x <= 400; x++ {
		r := rank[ClassOf(float64(x)/100)]
		assert.GreaterOrEqual(t, r, prev, "ClassOf(%v)", float64(x)/100)
		prev = r
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		gpa      float64
		expected string
	}{
		{3.699, "3.69"},
		{3.6999, "3.69"},
		{3.70, "3.70"},
		{3.72, "3.72"},
		{2.0, "2.00"},
		{3.456789, "3.45"},
		{0, "0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Format(tt.gpa), "Format(%v)", tt.gpa)
	}
}

func TestEvaluateClassifiesDisplayedValue(t *testing.T) {
	s := Evaluate([]string{"A", "A-", "A-"}, nil)
	// (4.0 + 3.7 + 3.7) / 3 = 3.8
	assert.InDelta(t, 3.8, s.GPA, 1e-9)
	assert.Equal(t, 3.8, s.Truncated)
	assert.Equal(t, ClassFirst, s.Class)

	s = Evaluate([]string{"A-", "B+", "A"}, []float64{3, 3, 1})
	// (11.1 + 9.9 + 4.0) / 7 = 3.5714...
	assert.Equal(t, 3.57, s.Truncated)
	assert.Equal(t, ClassSecondUpper, s.Class)
}

func TestGradesReturnsCopy(t *testing.T) {
	g := Grades()
	assert.Len(t, g, 13)
	g[0] = "Z"
	assert.Equal(t, "A+", Grades()[0])
}
