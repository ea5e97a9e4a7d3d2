package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/pkg/validation"
)

// CourseList is a bounded collection of courses with unique, case-insensitive IDs.
//
// Courses are stored by value: Add copies the course in and every query returns
// copies, so callers cannot change an ID behind the list's back.
// Deleting swaps the last course into the freed slot, so insertion order only
// holds until the first delete.
//
// A CourseList is not safe for concurrent use.
type CourseList struct {
	courses  []models.Course
	capacity int
}

// NewCourseList creates an empty list that holds at most capacity courses.
func NewCourseList(capacity int) (*CourseList, error) {
	if err := validation.Field("Capacity", capacity, validation.CapacityRule); err != nil {
		return nil, err
	}
	return &CourseList{
		courses:  make([]models.Course, 0, capacity),
		capacity: capacity,
	}, nil
}

// Len returns the number of courses in the list.
func (l *CourseList) Len() int {
	return len(l.courses)
}

// Capacity returns the maximum number of courses.
func (l *CourseList) Capacity() int {
	return l.capacity
}

// IsFull reports whether another Add would exceed the capacity.
func (l *CourseList) IsFull() bool {
	return len(l.courses) == l.capacity
}

// Add appends a course.
func (l *CourseList) Add(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course must not be nil")
	}
	if err := course.Validate(); err != nil {
		return err
	}
	if l.IsFull() {
		return apperrors.NewCapacityError(l.capacity)
	}
	if l.indexOf(course.ID()) >= 0 {
		return apperrors.NewDuplicateError(course.ID())
	}

	l.courses = append(l.courses, *course)
	return nil
}

// GetAll returns the courses currently held. The result is never nil.
func (l *CourseList) GetAll() []models.Course {
	return slices.Clone(l.courses)
}

// Delete removes the course with the given ID, moving the last course into its slot.
func (l *CourseList) Delete(id string) error {
	i := l.indexOf(id)
	if i < 0 {
		return apperrors.NewNotFoundError(id)
	}

	last := len(l.courses) - 1
	l.courses[i] = l.courses[last]
	l.courses[last] = models.Course{}
	l.courses = l.courses[:last]
	return nil
}

// SearchByID returns the course whose ID matches id, ignoring case.
func (l *CourseList) SearchByID(id string) (models.Course, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Course{}, apperrors.NewNotFoundError(id)
	}
	return l.courses[i], nil
}

// SearchByTitle returns the courses whose title contains text, ignoring case.
func (l *CourseList) SearchByTitle(text string) []models.Course {
	query := strings.ToLower(text)
	return l.filter(func(c models.Course) bool {
		return strings.Contains(strings.ToLower(c.Title()), query)
	})
}

// SearchByDepartment returns the courses whose department equals dept, ignoring case.
func (l *CourseList) SearchByDepartment(dept string) []models.Course {
	key := strings.ToLower(dept)
	return l.filter(func(c models.Course) bool {
		return strings.ToLower(c.Department()) == key
	})
}

// SortByTitle returns a sorted copy of the list: by title, then by ID.
// Both comparisons are byte-wise and case-sensitive.
func (l *CourseList) SortByTitle() []models.Course {
	sorted := l.GetAll()
	slices.SortFunc(sorted, func(a, b models.Course) int {
		return cmp.Or(
			strings.Compare(a.Title(), b.Title()),
			strings.Compare(a.ID(), b.ID()),
		)
	})
	return sorted
}

// MaxCredit returns every course carrying the highest credit value.
func (l *CourseList) MaxCredit() []models.Course {
	maxCredit := 0
	for _, c := range l.courses {
		maxCredit = max(maxCredit, c.Credit())
	}
	return l.filter(func(c models.Course) bool {
		return c.Credit() == maxCredit
	})
}

// indexOf returns the slot holding id, or -1.
func (l *CourseList) indexOf(id string) int {
	key := strings.ToLower(id)
	return slices.IndexFunc(l.courses, func(c models.Course) bool {
		return strings.ToLower(c.ID()) == key
	})
}

// filter returns the matching courses in slot order, never nil.
func (l *CourseList) filter(match func(models.Course) bool) []models.Course {
	matches := make([]models.Course, 0)
	for _, c := range l.courses {
		if match(c) {
			matches = append(matches, c)
		}
	}
	return matches
}
