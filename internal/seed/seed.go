package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/yigit/coursecatalog/internal/app/catalog"
	"github.com/yigit/coursecatalog/internal/app/models"
)

// CourseEntry is one course as written in a seed file.
type CourseEntry struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Credit     int    `yaml:"credit"`
	Department string `yaml:"department"`
}

// File is the layout of a seed file.
type File struct {
	Courses []CourseEntry `yaml:"courses"`
}

// LoadFile reads and parses a YAML seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// CreateDefaultData adds every seed entry to list.
// A bad entry is logged and skipped; the returned error joins all failures
// so the caller can decide whether a partial seed is acceptable.
func CreateDefaultData(list *catalog.CourseList, f *File, lgr zerolog.Logger) (int, error) {
	lgr.Info().Int("entries", len(f.Courses)).Msg("Seeding course catalog...")

	var finalErr error
	added := 0
	for i, entry := range f.Courses {
		course, err := models.NewCourse(entry.ID, entry.Title, entry.Credit, entry.Department)
		if err == nil {
			err = list.Add(course)
		}
		if err != nil {
			lgr.Warn().Err(err).Int("entry", i).Str("id", entry.ID).Msg("Skipping seed course")
			finalErr = errors.Join(finalErr, fmt.Errorf("seed entry %d (%q): %w", i, entry.ID, err))
			continue
		}
		added++
	}

	lgr.Info().Int("added", added).Int("capacity", list.Capacity()).Msg("Course catalog seeded")
	return added, finalErr
}
