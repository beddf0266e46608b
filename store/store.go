package store

import (
	"errors"
	"strings"

	"bitbucket.org/wilckenslagers/brewery_backend/config"
	"bitbucket.org/wilckenslagers/brewery_backend/models"
	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store owns the persisted state. It is constructed once per process and
// injected into every component; nothing else holds a database handle.
type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

// Open connects to the local SQLite database and migrates the entity
// tables. The caller is responsible for Close at process exit.
func Open(cfg config.Config, logger *logrus.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := models.MigrateTable(db); err != nil {
		return nil, err
	}
	return &Store{db: db, log: logger}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB exposes the handle for read-side projections. Writers go through the
// generic operations below.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Create persists a new record after running its invariants. On any
// failure nothing is persisted.
func Create[T models.Resource](s *Store, rec T) error {
	if err := rec.Validate(s.db); err != nil {
		return err
	}
	count, err := utils.ResourceCountWhere[T](s.db, "id = ?", rec.ResourceID())
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewDuplicateKeyError("%s id %q already exists", rec.ResourceKind(), rec.ResourceID())
	}
	if err := s.db.Create(&rec).Error; err != nil {
		// Two writers racing on the same id: the loser sees the unique
		// constraint, not a merge.
		if isDuplicate(err) {
			return utils.NewDuplicateKeyError("%s id %q already exists", rec.ResourceKind(), rec.ResourceID())
		}
		return err
	}
	return nil
}

// Replace overwrites an existing record wholesale. Same invariants as
// Create; the row must already exist.
func Replace[T models.Resource](s *Store, rec T) error {
	if err := rec.Validate(s.db); err != nil {
		return err
	}
	existing, err := FindByID[T](s, rec.ResourceID())
	if err != nil {
		return err
	}
	// Full-record replace: every column is written, including nulls, so a
	// cleared StartDate actually clears. Creation metadata survives.
	return s.db.Model(existing).Select("*").Omit("created_at").Updates(&rec).Error
}

// Delete removes a record by id. Dependents are never checked; deciding
// whether any exist is the caller's concern.
func Delete[T models.Resource](s *Store, id string) error {
	var rec T
	count, err := utils.ResourceCountWhere[T](s.db, "id = ?", id)
	if err != nil {
		return err
	}
	if count <= 0 {
		return utils.NewNotFoundError("%s id %q does not exist", rec.ResourceKind(), id)
	}
	return s.db.Delete(&rec, "id = ?", id).Error
}

func FindByID[T models.Resource](s *Store, id string) (*T, error) {
	var rec T
	err := s.db.First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("%s id %q does not exist", rec.ResourceKind(), id)
		}
		return nil, err
	}
	return &rec, nil
}

// ListAll returns every row of a kind in store-defined order.
func ListAll[T any](s *Store) ([]T, error) {
	var recs []T
	if err := s.db.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
