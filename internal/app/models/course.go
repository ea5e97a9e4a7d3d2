package models

import (
	"fmt"
	"strings"

	"github.com/yigit/coursecatalog/internal/pkg/validation"
)

// renderFormat lays out a course as ID(10) TITLE(25) CREDIT(6) DEPARTMENT(20).
const (
	renderFormat = "%-10s %-25s %-6d %-20s"
	headerFormat = "%-10s %-25s %-6s %-20s"
)

// Course represents a course offered by a department.
// Every field is valid once the course has been built with NewCourse; setters
// reject invalid values and leave the course untouched.
type Course struct {
	id         string
	title      string
	credit     int
	department string
}

// NewCourse creates a validated course. Department is not checked.
func NewCourse(id, title string, credit int, department string) (*Course, error) {
	c := &Course{}
	if err := c.SetID(id); err != nil {
		return nil, err
	}
	if err := c.SetTitle(title); err != nil {
		return nil, err
	}
	if err := c.SetCredit(credit); err != nil {
		return nil, err
	}
	c.department = department
	return c, nil
}

// ID returns the course ID as it was given.
func (c Course) ID() string {
	return c.id
}

// Title returns the course title.
func (c Course) Title() string {
	return c.title
}

// Credit returns the number of credits.
func (c Course) Credit() int {
	return c.credit
}

// Department returns the department responsible for the course.
func (c Course) Department() string {
	return c.department
}

// SetID replaces the course ID.
func (c *Course) SetID(id string) error {
	if err := validation.Field("ID", id, validation.CourseIDRule); err != nil {
		return err
	}
	c.id = id
	return nil
}

// SetTitle replaces the course title.
func (c *Course) SetTitle(title string) error {
	if err := validation.Field("Title", title, validation.CourseTitleRule); err != nil {
		return err
	}
	c.title = title
	return nil
}

// SetCredit replaces the number of credits.
func (c *Course) SetCredit(credit int) error {
	if err := validation.Field("Credit", credit, validation.CourseCreditRule); err != nil {
		return err
	}
	c.credit = credit
	return nil
}

// SetDepartment replaces the department. Any value is accepted.
func (c *Course) SetDepartment(department string) {
	c.department = department
}

// Validate re-checks every field. A zero Course fails here.
func (c Course) Validate() error {
	if err := validation.Field("ID", c.id, validation.CourseIDRule); err != nil {
		return err
	}
	if err := validation.Field("Title", c.title, validation.CourseTitleRule); err != nil {
		return err
	}
	return validation.Field("Credit", c.credit, validation.CourseCreditRule)
}

// String renders the course as a fixed-width table row.
func (c Course) String() string {
	return fmt.Sprintf(renderFormat,
		strings.ToUpper(c.id), c.title, c.credit, strings.ToUpper(c.department))
}

// RenderHeader returns the column header matching String.
func RenderHeader() string {
	return fmt.Sprintf(headerFormat, "ID", "TITLE", "CREDIT", "DEPARTMENT")
}
