package migration

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
	"github.com/deskline-inc/deskline/internal/shared/config"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

//go:embed scripts
var scriptsFS embed.FS

// goose keeps its dialect and filesystem in package state.
var gooseMu sync.Mutex

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}

// GormAutoMigrateStrategy creates the schema from the gorm models and seeds
// the roles lookup table.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.WithComponent("migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, list ...interface{}) error {
	if len(list) == 0 {
		list = AutoMigrateModels()
	}
	s.logger.Infow("running gorm auto migrate", "models_count", len(list))

	if err := db.AutoMigrate(list...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	roles := models.DefaultRoles()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}

// GooseStrategy applies the embedded SQL scripts of one dialect.
type GooseStrategy struct {
	dialect   string
	scriptDir string
	// createDir is the on-disk directory new migrations are written to.
	createDir string
	logger    logger.Interface
}

// NewGooseStrategy picks the script directory matching the database driver.
func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	dir, dialect, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &GooseStrategy{
		dialect:   dialect,
		scriptDir: "scripts/" + dir,
		createDir: "internal/infrastructure/migration/scripts/" + dir,
		logger:    logger.WithComponent("migration.goose"),
	}, nil
}

func dialectFor(driver string) (dir, dialect string, err error) {
	switch strings.ToLower(driver) {
	case config.DriverMySQL, "":
		return "mysql", "mysql", nil
	case config.DriverPostgres:
		return "postgres", "postgres", nil
	case config.DriverSQLite:
		return "sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// withGoose runs fn with goose pointed at the embedded scripts.
func (s *GooseStrategy) withGoose(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scriptsFS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log: s.logger})

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn()
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.withGoose(func() error {
		currentVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			s.logger.Errorw("failed to get current version", "error", err)
			return fmt.Errorf("failed to get current version: %w", err)
		}

		if err := goose.Up(sqlDB, s.scriptDir); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		finalVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}

		s.logger.Infow("migration completed successfully",
			"dialect", s.dialect,
			"from_version", currentVersion,
			"to_version", finalVersion)
		return nil
	})
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.withGoose(func() error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, s.scriptDir); err != nil {
				s.logger.Errorw("down migration failed", "error", err)
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		return nil
	})
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var version int64
	err = s.withGoose(func() error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.withGoose(func() error {
		if err := goose.Status(sqlDB, s.scriptDir); err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return nil
	})
}

// Create writes a new timestamped SQL migration into the source tree.
func (s *GooseStrategy) Create(name string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(nil)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Create(nil, s.createDir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", s.createDir)
	return nil
}

// Scripts lists the embedded script names for the strategy's dialect.
func (s *GooseStrategy) Scripts() ([]string, error) {
	entries, err := fs.ReadDir(scriptsFS, s.scriptDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

type gooseLogger struct {
	log logger.Interface
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infow(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Fatal(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
