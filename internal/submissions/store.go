package submissions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vincentbai/watss-forms/internal/models"
)

type CorruptPolicy string

const (
	// PolicyReset warns, keeps a copy of the bad value and carries on with an empty list.
	PolicyReset CorruptPolicy = "reset"
	// PolicyStrict surfaces the CorruptStorageError and writes nothing.
	PolicyStrict CorruptPolicy = "strict"
)

const (
	DefaultDateLayout = "1/2/2006"
	DefaultTimeLayout = "3:04:05 PM"
	isoLayout         = "2006-01-02T15:04:05.000Z"
)

type Options struct {
	Policy     CorruptPolicy
	DateLayout string
	TimeLayout string
	Location   *time.Location
	Now        func() time.Time
	Logger     *zap.Logger
}

// Store validates and appends submissions on top of a Repository.
type Store struct {
	repo       *Repository
	policy     CorruptPolicy
	dateLayout string
	timeLayout string
	location   *time.Location
	now        func() time.Time
	logger     *zap.Logger

	mu sync.Mutex
}

func NewStore(repo *Repository, opts Options) *Store {
	s := &Store{
		repo:       repo,
		policy:     opts.Policy,
		dateLayout: opts.DateLayout,
		timeLayout: opts.TimeLayout,
		location:   opts.Location,
		now:        opts.Now,
		logger:     opts.Logger,
	}
	if s.policy == "" {
		s.policy = PolicyReset
	}
	if s.dateLayout == "" {
		s.dateLayout = DefaultDateLayout
	}
	if s.timeLayout == "" {
		s.timeLayout = DefaultTimeLayout
	}
	if s.location == nil {
		s.location = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// List returns the stored submissions in append order.
// Under PolicyReset a corrupt slot reads as empty and the error is only logged.
func (s *Store) List(ctx context.Context) ([]models.Submission, error) {
	list, err := s.repo.Load(ctx)
	if err == nil {
		return list, nil
	}
	var corrupt *CorruptStorageError
	if errors.As(err, &corrupt) && s.policy == PolicyReset {
		s.logger.Warn("stored submissions unreadable, treating as empty",
			zap.String("key", corrupt.Key), zap.Error(corrupt.Err))
		return []models.Submission{}, nil
	}
	return nil, err
}

// Append validates the fields, appends one record and persists the whole list.
func (s *Store) Append(ctx context.Context, name, email string, events []string) ([]models.Submission, error) {
	name, email, err := Validate(name, email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.Load(ctx)
	if err != nil {
		var corrupt *CorruptStorageError
		if !errors.As(err, &corrupt) || s.policy != PolicyReset {
			return nil, err
		}
		s.logger.Warn("stored submissions unreadable, starting a new list",
			zap.String("key", corrupt.Key),
			zap.String("backup_key", corrupt.Key+".corrupt"),
			zap.Error(corrupt.Err))
		if err := s.repo.backupRaw(ctx); err != nil {
			return nil, fmt.Errorf("failed to back up unreadable submissions: %w", err)
		}
		list = []models.Submission{}
	}

	list = append(list, s.newRecord(name, email, events))
	if err := s.repo.Save(ctx, list); err != nil {
		return nil, err
	}
	s.logger.Debug("submission saved", zap.String("name", name), zap.Int("count", len(list)))
	return list, nil
}

func (s *Store) newRecord(name, email string, events []string) models.Submission {
	now := s.now()
	local := now.In(s.location)
	selected := make([]string, 0, len(events))
	selected = append(selected, events...)
	return models.Submission{
		ID:        now.UnixMilli(),
		Name:      name,
		Email:     email,
		Events:    selected,
		Timestamp: now.UTC().Format(isoLayout),
		Date:      local.Format(s.dateLayout),
		Time:      local.Format(s.timeLayout),
	}
}

func (s *Store) Status(ctx context.Context) (models.Status, error) {
	list, err := s.List(ctx)
	if err != nil {
		return models.Status{}, err
	}
	return StatusOf(len(list)), nil
}

// StatusOf projects a submission count onto the count display.
func StatusOf(count int) models.Status {
	if count == 0 {
		return models.Status{Count: 0, Label: "No submissions yet.", DownloadEnabled: false}
	}
	return models.Status{
		Count:           count,
		Label:           fmt.Sprintf("Total submissions: %d", count),
		DownloadEnabled: true,
	}
}
