package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/ds"
)

// Entity - запись, хранимая по ключу и принадлежащая ремесленнику
type Entity interface {
	Key() string
	Owner() string
}

// Store - хранилище записей. Owner "" в List - все записи.
type Store[T Entity] interface {
	Get(ctx context.Context, key string) (*T, error)
	Put(ctx context.Context, v *T) error
	List(ctx context.Context, owner string) ([]T, error)
}

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	logrus.Info("database connected")
	return &Repository{
		db: db,
	}, nil
}

// Migrate создаёт таблицы хранимых моделей
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&ds.Artisan{},
		&ds.Submission{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (r *Repository) Artisans() Store[ds.Artisan] {
	return &gormStore[ds.Artisan]{db: r.db, subject: "artisan", keyColumn: "artisan_id"}
}

func (r *Repository) Submissions() Store[ds.Submission] {
	return &gormStore[ds.Submission]{db: r.db, subject: "submission", keyColumn: "submission_id"}
}

type gormStore[T Entity] struct {
	db        *gorm.DB
	subject   string
	keyColumn string
}

func (s *gormStore[T]) Get(ctx context.Context, key string) (*T, error) {
	var v T
	err := s.db.WithContext(ctx).Where(s.keyColumn+" = ?", key).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(s.subject, "%s %s not found", s.subject, key)
	}
	if err != nil {
		return nil, apperr.Unexpected(fmt.Errorf("get %s %s: %w", s.subject, key, err))
	}
	return &v, nil
}

// Put создаёт запись или полностью перезаписывает существующую
func (s *gormStore[T]) Put(ctx context.Context, v *T) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(v).Error
	if err != nil {
		return apperr.Unexpected(fmt.Errorf("put %s %s: %w", s.subject, (*v).Key(), err))
	}
	return nil
}

func (s *gormStore[T]) List(ctx context.Context, owner string) ([]T, error) {
	var out []T
	q := s.db.WithContext(ctx).Order("created_at")
	if owner != "" {
		q = q.Where("artisan_id = ?", owner)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, apperr.Unexpected(fmt.Errorf("list %s: %w", s.subject, err))
	}
	return out, nil
}
