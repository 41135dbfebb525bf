package grade

// ComputeGPA computes the grade-point average of grades.
//
// When credits is non-nil and parallel to grades the result is credit weighted:
// only positions with a recognised grade and a present credit (> 0) contribute.
// Otherwise the plain mean over recognised grades is returned. Ungraded entries
// never count as zero. The result is 0 when nothing contributes.
func ComputeGPA(grades []string, credits []float64) float64 {
	if credits != nil && len(credits) == len(grades) {
		return weighted(grades, credits)
	}
	return unweighted(grades)
}

func weighted(grades []string, credits []float64) float64 {
	var quality, total float64
	for i, g := range grades {
		p, ok := Point(g)
		if !ok || credits[i] <= 0 {
			continue
		}
		quality += p * credits[i]
		total += credits[i]
	}
	if total == 0 {
		return 0
	}
	return quality / total
}

func unweighted(grades []string) float64 {
	var sum float64
	count := 0
	for _, g := range grades {
		if p, ok := Point(g); ok {
			sum += p
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Standing is a computed GPA with its display form and class.
type Standing struct {
	GPA       float64
	Truncated float64
	Class     string
}

// Evaluate computes the GPA for grades/credits and classifies the truncated value,
// so the class always agrees with the displayed GPA.
func Evaluate(grades []string, credits []float64) Standing {
	gpa := ComputeGPA(grades, credits)
	t := Truncate(gpa)
	return Standing{GPA: gpa, Truncated: t, Class: ClassOf(t)}
}
