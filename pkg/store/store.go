// Package store persists one row per comparison so feedback can be
// attached to it later.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("log not found")

// ResponseLog records both model outputs for a single prompt, plus any
// feedback the user left afterwards.
type ResponseLog struct {
	ID             string    `gorm:"primaryKey" json:"log_id"`
	Timestamp      time.Time `gorm:"autoCreateTime" json:"timestamp"`
	UserPrompt     string    `gorm:"not null" json:"user_prompt"`
	NormalResponse string    `gorm:"not null" json:"normal_response"`
	AtlasResponse  string    `gorm:"not null" json:"atlas_response"`
	UserRating     *int      `json:"user_rating,omitempty"`
	UserFeedback   *string   `json:"user_feedback,omitempty"`
}

func (l *ResponseLog) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = ksuid.New().String()
	}
	return nil
}

type Store struct {
	db *gorm.DB
}

// Open connects to Postgres when dsn is set, otherwise falls back to a
// local SQLite file at path. The schema is migrated on open.
func Open(dsn, path string) (*Store, error) {
	var (
		db  *gorm.DB
		err error
	)
	config := &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	}
	if dsn != "" {
		log.Info("connecting to postgres")
		db, err = gorm.Open(postgres.Open(dsn), config)
	} else {
		log.Info("opening sqlite store", "path", path)
		db, err = gorm.Open(sqlite.Open(path), config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.AutoMigrate(&ResponseLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

// Create inserts a new log row and fills in its generated ID.
func (s *Store) Create(ctx context.Context, entry *ResponseLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create log: %w", err)
	}
	return nil
}

// GetByID fetches a single log row. Returns ErrNotFound when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*ResponseLog, error) {
	var entry ResponseLog
	err := s.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch log: %w", err)
	}
	return &entry, nil
}

// AttachFeedback stores a rating and an optional note on an existing row.
func (s *Store) AttachFeedback(ctx context.Context, id string, rating int, feedback string) (*ResponseLog, error) {
	entry, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.UserRating = &rating
	if feedback != "" {
		entry.UserFeedback = &feedback
	}
	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return entry, nil
}
