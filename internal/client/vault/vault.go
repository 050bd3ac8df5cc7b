// Package vault implements the PIN-gated private task store. The PIN and
// the serialized task list live in the encrypted secure store under two
// fixed keys; the unlocked flag is in-memory only, so every process start
// begins locked.
package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/johnp-05/sumativatr1/internal/client/models"
	"github.com/johnp-05/sumativatr1/internal/client/securestore"
	"github.com/johnp-05/sumativatr1/internal/common"
	"github.com/johnp-05/sumativatr1/internal/validation"
)

const (
	pinKey   = "vault_pin"
	tasksKey = "vault_tasks"
)

// nowMillisID is a seam for tests; vault task ids are the creation time in
// Unix millis, matching the original client-generated ids.
var nowMillisID = func() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Service owns the vault credential and the vault task list.
//
// It is not safe for concurrent use: like the conversation context, it
// relies on the UI's one-outstanding-request serialization.
type Service struct {
	store    securestore.Store
	unlocked bool
}

func New(store securestore.Store) *Service {
	return &Service{store: store}
}

// HasPIN reports whether a vault credential exists. Absence means the
// vault was never initialized.
func (s *Service) HasPIN(ctx context.Context) (bool, error) {
	_, err := s.store.Get(ctx, pinKey)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Unlock validates the entered PIN and opens the vault for this session.
//
// On an uninitialized vault the first valid PIN entry both sets the
// credential and unlocks — there is no separate "create PIN" step. This
// mirrors the observed behavior of the original app.
func (s *Service) Unlock(ctx context.Context, pin string) (bool, error) {
	if err := validation.PIN(pin); err != nil {
		return false, err
	}

	stored, err := s.store.Get(ctx, pinKey)
	if errors.Is(err, common.ErrorNotFound) {
		if err := s.store.Set(ctx, pinKey, pin); err != nil {
			return false, fmt.Errorf("storing pin: %w", err)
		}
		s.unlocked = true
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if stored != pin {
		return false, nil
	}
	s.unlocked = true
	return true, nil
}

// Lock drops the in-memory unlock flag. Stored state is untouched.
func (s *Service) Lock() {
	s.unlocked = false
}

func (s *Service) IsUnlocked() bool {
	return s.unlocked
}

// Reset deletes the credential and all vault tasks and locks the vault.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, pinKey); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, tasksKey); err != nil {
		return err
	}
	s.unlocked = false
	return nil
}

// List returns all vault tasks. The vault must be unlocked.
func (s *Service) List(ctx context.Context) ([]models.VaultTask, error) {
	if !s.unlocked {
		return nil, common.ErrVaultLocked
	}
	return s.load(ctx)
}

// Add creates a vault task with a fresh client-generated id.
func (s *Service) Add(ctx context.Context, title, description string, completed bool) (models.VaultTask, error) {
	if !s.unlocked {
		return models.VaultTask{}, common.ErrVaultLocked
	}

	tasks, err := s.load(ctx)
	if err != nil {
		return models.VaultTask{}, err
	}

	task := models.VaultTask{
		ID:          nowMillisID(),
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   time.Now().UTC(),
	}
	tasks = append(tasks, task)

	if err := s.save(ctx, tasks); err != nil {
		return models.VaultTask{}, err
	}
	return task, nil
}

// Update applies a partial update to the vault task with the given id.
func (s *Service) Update(ctx context.Context, id string, upd models.TaskUpdate) (models.VaultTask, error) {
	if !s.unlocked {
		return models.VaultTask{}, common.ErrVaultLocked
	}

	tasks, err := s.load(ctx)
	if err != nil {
		return models.VaultTask{}, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if upd.Title != nil {
			tasks[i].Title = *upd.Title
		}
		if upd.Description != nil {
			tasks[i].Description = *upd.Description
		}
		if upd.Completed != nil {
			tasks[i].Completed = *upd.Completed
		}
		if err := s.save(ctx, tasks); err != nil {
			return models.VaultTask{}, err
		}
		return tasks[i], nil
	}

	return models.VaultTask{}, common.ErrorNotFound
}

// ToggleComplete flips the completed flag of the vault task with the given id.
func (s *Service) ToggleComplete(ctx context.Context, id string) (models.VaultTask, error) {
	if !s.unlocked {
		return models.VaultTask{}, common.ErrVaultLocked
	}

	tasks, err := s.load(ctx)
	if err != nil {
		return models.VaultTask{}, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Completed = !tasks[i].Completed
		if err := s.save(ctx, tasks); err != nil {
			return models.VaultTask{}, err
		}
		return tasks[i], nil
	}

	return models.VaultTask{}, common.ErrorNotFound
}

// Delete removes the vault task with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.unlocked {
		return common.ErrVaultLocked
	}

	tasks, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return s.save(ctx, tasks)
		}
	}
	return common.ErrorNotFound
}

func (s *Service) load(ctx context.Context) ([]models.VaultTask, error) {
	raw, err := s.store.Get(ctx, tasksKey)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tasks []models.VaultTask
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("decoding vault tasks: %w", err)
	}
	return tasks, nil
}

// save rewrites the entire serialized list; there is no partial update.
func (s *Service) save(ctx context.Context, tasks []models.VaultTask) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encoding vault tasks: %w", err)
	}
	return s.store.Set(ctx, tasksKey, string(raw))
}
