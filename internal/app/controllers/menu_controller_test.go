package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/catalog"
	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// newTestMenu builds a menu over a list seeded with {id, title, department} triples.
func newTestMenu(t *testing.T, capacity int, input string, seed ...[3]string) (*MenuController, *bytes.Buffer, *catalog.CourseList) {
	t.Helper()
	list, err := catalog.NewCourseList(capacity)
	require.NoError(t, err)

	for _, s := range seed {
		c, err := models.NewCourse(s[0], s[1], 3, s[2])
		require.NoError(t, err)
		require.NoError(t, list.Add(c))
	}

	out := &bytes.Buffer{}
	return NewMenuController(list, strings.NewReader(input), out, zerolog.Nop()), out, list
}

func TestMenu_ExitImmediately(t *testing.T) {
	menu, out, _ := newTestMenu(t, 2, "0\n")

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "== Menu ==")
	assert.Contains(t, out.String(), MsgExit)
}

func TestMenu_EndOfInput(t *testing.T) {
	menu, out, _ := newTestMenu(t, 2, "")

	require.NoError(t, menu.Run(context.Background()))
	assert.NotContains(t, out.String(), MsgExit)
}

func TestMenu_CancelledContext(t *testing.T) {
	menu, _, _ := newTestMenu(t, 2, "2\n0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, menu.Run(ctx), context.Canceled)
}

func TestMenu_InvalidOptions(t *testing.T) {
	menu, out, _ := newTestMenu(t, 2, "abc\n42\n0\n")

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), MsgInvalidNumber)
	assert.Contains(t, out.String(), MsgInvalidOption)
}

func TestMenu_AddAndList(t *testing.T) {
	input := strings.Join([]string{
		"1", "cs101", "Intro", "cs", "three", "3",
		"2",
		"0",
	}, "\n") + "\n"
	menu, out, list := newTestMenu(t, 2, input)

	require.NoError(t, menu.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, MsgInvalidCredit)
	assert.Contains(t, got, MsgCourseAdded)
	assert.Contains(t, got, models.RenderHeader())
	assert.Contains(t, got, "CS101      Intro")
	assert.Equal(t, 1, list.Len())
}

func TestMenu_AddRejected(t *testing.T) {
	input := strings.Join([]string{
		"1", "CS101", "Again", "CS", "3",
		"1", "x", "Bad", "CS", "3",
		"1", "MATH1", "Calc", "Math", "4",
		"1", "PHY10", "Mechanics", "Physics", "4",
		"0",
	}, "\n") + "\n"
	menu, out, list := newTestMenu(t, 2, input, [3]string{"CS101", "Intro", "CS"})

	require.NoError(t, menu.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, MsgDuplicateID)
	assert.Contains(t, got, MsgInvalidCourse+"ID must have at least 3 characters")
	assert.Contains(t, got, MsgCatalogFull)
	assert.NotContains(t, got, "course ID is duplicated")
	assert.Equal(t, 1, strings.Count(got, MsgCourseAdded))
	assert.Equal(t, 2, list.Len())
}

func TestMenu_ListEmpty(t *testing.T) {
	menu, out, _ := newTestMenu(t, 2, "2\n7\n8\n9\n0\n")

	require.NoError(t, menu.Run(context.Background()))
	assert.Equal(t, 4, strings.Count(out.String(), MsgEmptyList))
}

func TestMenu_Delete(t *testing.T) {
	menu, out, list := newTestMenu(t, 2, "3\ncs101\n3\ncs101\n0\n", [3]string{"CS101", "Intro", "CS"})

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), MsgCourseDeleted)
	assert.Contains(t, out.String(), MsgCourseMissing)
	assert.NotContains(t, out.String(), "course ID is not found")
	assert.Equal(t, 0, list.Len())
}

func TestMenu_Searches(t *testing.T) {
	input := strings.Join([]string{
		"4", "cs101",
		"4", "nope1",
		"5", "STRUCT",
		"5", "biology",
		"6", "math",
		"6", "physics",
		"0",
	}, "\n") + "\n"
	menu, out, _ := newTestMenu(t, 3, input,
		[3]string{"CS101", "Intro", "CS"},
		[3]string{"CS201", "Data Structures", "CS"},
		[3]string{"MATH1", "Calculus", "Math"},
	)

	require.NoError(t, menu.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Course found:")
	assert.Contains(t, got, MsgNoIDMatch)
	assert.Contains(t, got, "CS201      Data Structures")
	assert.Contains(t, got, MsgNoTitleMatch)
	assert.Contains(t, got, "MATH1      Calculus")
	assert.Contains(t, got, MsgNoDeptMatch)
}

func TestMenu_SortAndAggregates(t *testing.T) {
	menu, out, _ := newTestMenu(t, 3, "7\n9\n0\n",
		[3]string{"CS200", "Algorithms", "CS"},
		[3]string{"CS100", "Algorithms", "cs"},
		[3]string{"MATH1", "Calculus", "Math"},
	)

	require.NoError(t, menu.Run(context.Background()))

	got := out.String()
	first := strings.Index(got, "CS100      Algorithms")
	second := strings.Index(got, "CS200      Algorithms")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, got, MsgDominantPrefix+"cs")
}

func TestMenu_DominantTie(t *testing.T) {
	menu, out, _ := newTestMenu(t, 2, "9\n0\n",
		[3]string{"CS100", "Algorithms", "CS"},
		[3]string{"MATH1", "Calculus", "Math"},
	)

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), MsgDepartmentTie)
}

func TestMenu_MaxCredit(t *testing.T) {
	list, err := catalog.NewCourseList(3)
	require.NoError(t, err)
	for _, entry := range []struct {
		id     string
		credit int
	}{{"AAA1", 3}, {"BBB2", 4}, {"CCC3", 2}} {
		c, err := models.NewCourse(entry.id, "Course", entry.credit, "X")
		require.NoError(t, err)
		require.NoError(t, list.Add(c))
	}

	out := &bytes.Buffer{}
	menu := NewMenuController(list, strings.NewReader("8\n0\n"), out, zerolog.Nop())
	require.NoError(t, menu.Run(context.Background()))

	assert.Contains(t, out.String(), "BBB2")
	assert.NotContains(t, out.String(), "AAA1")
	assert.NotContains(t, out.String(), "CCC3")
}

func TestMenu_InputEndsMidCommand(t *testing.T) {
	menu, out, list := newTestMenu(t, 2, "1\nCS101\nIntro\n")

	require.NoError(t, menu.Run(context.Background()))
	assert.NotContains(t, out.String(), MsgCourseAdded)
	assert.Equal(t, 0, list.Len())
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "not found", err: apperrors.NewNotFoundError("CS999"), want: MsgCourseMissing},
		{name: "duplicate", err: apperrors.NewDuplicateError("CS101"), want: MsgDuplicateID},
		{name: "full", err: apperrors.NewCapacityError(2), want: MsgCatalogFull},
		{name: "validation keeps field message", err: apperrors.NewValidationError("Title must not be blank"), want: MsgInvalidCourse + "Title must not be blank"},
		{name: "wrapped not found", err: fmt.Errorf("delete: %w", apperrors.NewNotFoundError("CS999")), want: MsgCourseMissing},
		{name: "unknown", err: errors.New("boom"), want: "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
