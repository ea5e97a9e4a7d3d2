package controllers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/coursecatalog/internal/app/catalog"
	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// CourseCatalog is the set of catalog operations the menu drives.
type CourseCatalog interface {
	Add(course *models.Course) error
	GetAll() []models.Course
	Delete(id string) error
	SearchByID(id string) (models.Course, error)
	SearchByTitle(text string) []models.Course
	SearchByDepartment(dept string) []models.Course
	SortByTitle() []models.Course
	MaxCredit() []models.Course
	DominantDepartment() catalog.DepartmentDominance
}

// Menu options
const (
	OptionExit = iota
	OptionAdd
	OptionList
	OptionDelete
	OptionSearchByID
	OptionSearchByTitle
	OptionSearchByDepartment
	OptionSortByTitle
	OptionMaxCredit
	OptionDominantDepartment
)

const menuText = `== Menu ==
1. Add course
2. List courses
3. Delete course
4. Search course by ID
5. Search courses by title
6. Search courses by department
7. Sort courses by title
8. Courses with max credit
9. Dominant department
0. Exit
`

// Messages printed by the menu
const (
	MsgEmptyList      = "Course list is empty."
	MsgInvalidNumber  = "Error: please enter a valid integer."
	MsgInvalidOption  = "Invalid option. Please choose again."
	MsgInvalidCredit  = "Credit must be a whole number greater than 0."
	MsgCourseAdded    = "Course added."
	MsgCourseDeleted  = "Course deleted."
	MsgNoIDMatch      = "No course found with the given ID."
	MsgNoTitleMatch   = "No courses match the given title."
	MsgNoDeptMatch    = "No courses found for the given department."
	MsgDepartmentTie  = "No single department has the most courses; the leaders are tied."
	MsgDominantPrefix = "Department with the most courses: "
	MsgCourseMissing  = "Course does not exist."
	MsgDuplicateID    = "A course with this ID already exists."
	MsgCatalogFull    = "Course list is full. Delete a course first."
	MsgInvalidCourse  = "Invalid course: "
	MsgExit           = "Exiting."
	promptOption      = "Choose an option: "
	promptID          = "Course ID: "
	promptTitle       = "Course title: "
	promptDepartment  = "Department: "
	promptCredit      = "Credit: "
	promptDeleteID    = "ID of the course to delete: "
	promptSearchID    = "ID of the course to find: "
	promptSearchTitle = "Title (or part of it): "
	promptSearchDept  = "Department to find: "
	msgCourseFound    = "Course found:"
	msgCoursesHeading = "Courses:"
)

// MenuController runs the numbered text menu over a course catalog.
type MenuController struct {
	catalog CourseCatalog
	in      *bufio.Scanner
	out     io.Writer
	logger  zerolog.Logger
}

// NewMenuController creates a new MenuController reading commands from in and printing to out
func NewMenuController(courses CourseCatalog, in io.Reader, out io.Writer, logger zerolog.Logger) *MenuController {
	return &MenuController{
		catalog: courses,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
func (c *MenuController) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.print(menuText)
		option, ok := c.readOption()
		if !ok {
			return c.in.Err()
		}

		c.logger.Debug().Int("option", option).Msg("Menu option selected")
		if option == OptionExit {
			c.println(MsgExit)
			return nil
		}
		if !c.dispatch(option) {
			return c.in.Err()
		}
	}
}

// dispatch runs one menu option. It returns false when input ran out mid-command.
func (c *MenuController) dispatch(option int) bool {
	switch option {
	case OptionAdd:
		return c.addCourse()
	case OptionList:
		c.showCourses(c.catalog.GetAll(), MsgEmptyList, msgCoursesHeading)
	case OptionDelete:
		return c.deleteCourse()
	case OptionSearchByID:
		return c.searchByID()
	case OptionSearchByTitle:
		text, ok := c.prompt(promptSearchTitle)
		if !ok {
			return false
		}
		c.showCourses(c.catalog.SearchByTitle(text), MsgNoTitleMatch, "")
	case OptionSearchByDepartment:
		dept, ok := c.prompt(promptSearchDept)
		if !ok {
			return false
		}
		c.showCourses(c.catalog.SearchByDepartment(dept), MsgNoDeptMatch, "")
	case OptionSortByTitle:
		c.showCourses(c.catalog.SortByTitle(), MsgEmptyList, "")
	case OptionMaxCredit:
		c.showCourses(c.catalog.MaxCredit(), MsgEmptyList, "")
	case OptionDominantDepartment:
		c.showDominantDepartment()
	default:
		c.println(MsgInvalidOption)
	}
	return true
}

func (c *MenuController) addCourse() bool {
	id, ok := c.prompt(promptID)
	if !ok {
		return false
	}
	title, ok := c.prompt(promptTitle)
	if !ok {
		return false
	}
	department, ok := c.prompt(promptDepartment)
	if !ok {
		return false
	}
	credit, ok := c.readCredit()
	if !ok {
		return false
	}

	course, err := models.NewCourse(id, title, credit, department)
	if err == nil {
		err = c.catalog.Add(course)
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("id", id).Str("code", apperrors.CodeOf(err)).Msg("Course rejected")
		c.println(userMessage(err))
		return true
	}

	c.logger.Debug().Str("id", id).Msg("Course added")
	c.println(MsgCourseAdded)
	return true
}

func (c *MenuController) deleteCourse() bool {
	id, ok := c.prompt(promptDeleteID)
	if !ok {
		return false
	}

	if err := c.catalog.Delete(id); err != nil {
		c.logger.Warn().Err(err).Str("id", id).Str("code", apperrors.CodeOf(err)).Msg("Delete rejected")
		c.println(userMessage(err))
		return true
	}

	c.logger.Debug().Str("id", id).Msg("Course deleted")
	c.println(MsgCourseDeleted)
	return true
}

// userMessage maps a catalog error to the line shown to the user.
// Validation errors keep their field message.
func userMessage(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrCourseNotFound):
		return MsgCourseMissing
	case apperrors.Is(err, apperrors.ErrDuplicateCourse):
		return MsgDuplicateID
	case apperrors.Is(err, apperrors.ErrCapacityExceeded):
		return MsgCatalogFull
	case errors.Is(err, apperrors.ErrValidationFailed):
		return MsgInvalidCourse + err.Error()
	default:
		return "Error: " + err.Error()
	}
}

func (c *MenuController) searchByID() bool {
	id, ok := c.prompt(promptSearchID)
	if !ok {
		return false
	}

	course, err := c.catalog.SearchByID(id)
	if err != nil {
		c.println(MsgNoIDMatch)
		return true
	}
	c.println(msgCourseFound)
	c.println(models.RenderHeader())
	c.println(course.String())
	return true
}

func (c *MenuController) showDominantDepartment() {
	result := c.catalog.DominantDepartment()
	switch result.Outcome {
	case catalog.DominanceFound:
		c.println(MsgDominantPrefix + result.Name)
	case catalog.DominanceTie:
		c.println(MsgDepartmentTie)
	default:
		c.println(MsgEmptyList)
	}
}

// showCourses prints a course table, or emptyMsg when there is nothing to show.
func (c *MenuController) showCourses(courses []models.Course, emptyMsg, heading string) {
	if len(courses) == 0 {
		c.println(emptyMsg)
		return
	}
	if heading != "" {
		c.println(heading)
	}
	c.println(models.RenderHeader())
	for _, course := range courses {
		c.println(course.String())
	}
}

// readOption prompts until a whole number is entered.
func (c *MenuController) readOption() (int, bool) {
	for {
		line, ok := c.prompt(promptOption)
		if !ok {
			return 0, false
		}
		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.println(MsgInvalidNumber)
			continue
		}
		return option, true
	}
}

// readCredit prompts until a whole number is entered. Range is checked by Course.
func (c *MenuController) readCredit() (int, bool) {
	for {
		line, ok := c.prompt(promptCredit)
		if !ok {
			return 0, false
		}
		credit, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.println(MsgInvalidCredit)
			continue
		}
		return credit, true
	}
}

// prompt prints label and reads one line. It returns false at end of input.
func (c *MenuController) prompt(label string) (string, bool) {
	c.print(label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimRight(c.in.Text(), "\r"), true
}

func (c *MenuController) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *MenuController) println(s string) {
	fmt.Fprintln(c.out, s)
}
