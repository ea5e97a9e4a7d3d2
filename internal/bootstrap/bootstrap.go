package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/coursecatalog/internal/app/catalog"
	"github.com/yigit/coursecatalog/internal/app/controllers"
	"github.com/yigit/coursecatalog/internal/config"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
	"github.com/yigit/coursecatalog/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Courses        *catalog.CourseList
	MenuController *controllers.MenuController
	SessionID      string
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string, logOutput io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		Output: logOutput,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupCatalog creates the course list and applies the seed file, if any.
// A partially applied seed is logged but does not stop startup.
func SetupCatalog(cfg *config.Config, lgr zerolog.Logger) (*catalog.CourseList, error) {
	courses, err := catalog.NewCourseList(cfg.Catalog.Capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create course list: %w", err)
	}
	lgr.Info().Int("capacity", courses.Capacity()).Msg("Course list created")

	if cfg.Catalog.SeedFile == "" {
		return courses, nil
	}

	seedFile, err := seed.LoadFile(cfg.Catalog.SeedFile)
	if err != nil {
		return nil, err
	}
	if _, err := seed.CreateDefaultData(courses, seedFile, lgr); err != nil {
		lgr.Error().Err(err).Msg("Some seed courses were rejected, proceeding anyway...")
	}
	return courses, nil
}

// BuildDependencies wires the course list into the menu controller.
func BuildDependencies(cfg *config.Config, in io.Reader, out io.Writer, lgr zerolog.Logger) (*Dependencies, error) {
	sessionID := uuid.NewString()
	lgr = lgr.With().Str("session", sessionID).Logger()

	courses, err := SetupCatalog(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to set up course catalog")
		return nil, err
	}

	return &Dependencies{
		Courses:        courses,
		MenuController: controllers.NewMenuController(courses, in, out, lgr),
		SessionID:      sessionID,
		Logger:         lgr,
	}, nil
}
