package catalog

import (
	"strings"

	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// DominanceOutcome tells which of the three dominant-department answers applies.
type DominanceOutcome int

const (
	// DominanceEmpty means the list holds no courses.
	DominanceEmpty DominanceOutcome = iota
	// DominanceTie means two or more departments share the highest count.
	DominanceTie
	// DominanceFound means one department has strictly the most courses.
	DominanceFound
)

// String returns a lowercase name for the outcome.
func (o DominanceOutcome) String() string {
	switch o {
	case DominanceEmpty:
		return "empty"
	case DominanceTie:
		return "tie"
	case DominanceFound:
		return "found"
	default:
		return "unknown"
	}
}

// DepartmentDominance is the result of CourseList.DominantDepartment.
// Name is only set when Outcome is DominanceFound.
type DepartmentDominance struct {
	Outcome DominanceOutcome
	Name    string // lowercased
	Count   int    // highest course count, 0 when empty
}

// Err converts a non-found outcome into the matching sentinel error.
func (d DepartmentDominance) Err() error {
	switch d.Outcome {
	case DominanceEmpty:
		return apperrors.NewCustomError(apperrors.ErrEmptyCatalog, "").WithCode(apperrors.CodeEmptyCatalog)
	case DominanceTie:
		return apperrors.NewCustomError(apperrors.ErrDepartmentTie, "").
			WithCode(apperrors.CodeDepartmentTie).
			WithDetails(map[string]interface{}{"count": d.Count})
	default:
		return nil
	}
}

// DominantDepartment returns the department with strictly the most courses.
// Departments are grouped case-insensitively.
func (l *CourseList) DominantDepartment() DepartmentDominance {
	if len(l.courses) == 0 {
		return DepartmentDominance{Outcome: DominanceEmpty}
	}

	counts := make(map[string]int)
	for _, c := range l.courses {
		counts[strings.ToLower(c.Department())]++
	}

	var (
		best    string
		highest int
		leaders int
	)
	for dept, n := range counts {
		switch {
		case n > highest:
			best, highest, leaders = dept, n, 1
		case n == highest:
			leaders++
		}
	}

	if leaders > 1 {
		return DepartmentDominance{Outcome: DominanceTie, Count: highest}
	}
	return DepartmentDominance{Outcome: DominanceFound, Name: best, Count: highest}
}
