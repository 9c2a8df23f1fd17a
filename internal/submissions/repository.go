package submissions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vincentbai/watss-forms/internal/models"
	"github.com/vincentbai/watss-forms/internal/storage"
)

const DefaultSlotKey = "formSubmissions"

// Repository reads and writes the whole submission list under one slot.
type Repository struct {
	slots storage.Slots
	key   string
}

func NewRepository(slots storage.Slots, key string) *Repository {
	if key == "" {
		key = DefaultSlotKey
	}
	return &Repository{slots: slots, key: key}
}

func (r *Repository) Key() string {
	return r.key
}

// Load returns an empty list when the slot has never been written.
func (r *Repository) Load(ctx context.Context) ([]models.Submission, error) {
	raw, found, err := r.slots.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	if !found {
		return []models.Submission{}, nil
	}
	var list []models.Submission
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, &CorruptStorageError{Key: r.key, Err: err}
	}
	if list == nil {
		// a stored "null" reads back as empty
		list = []models.Submission{}
	}
	return list, nil
}

func (r *Repository) Save(ctx context.Context, list []models.Submission) error {
	if list == nil {
		list = []models.Submission{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal submissions: %w", err)
	}
	if err := r.slots.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("failed to write submissions: %w", err)
	}
	return nil
}

// backupRaw copies the unreadable slot value aside before it is overwritten.
func (r *Repository) backupRaw(ctx context.Context) error {
	raw, found, err := r.slots.Get(ctx, r.key)
	if err != nil || !found {
		return err
	}
	return r.slots.Set(ctx, r.key+".corrupt", raw)
}
