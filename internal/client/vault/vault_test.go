package vault

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/johnp-05/sumativatr1/internal/client/models"
	"github.com/johnp-05/sumativatr1/internal/client/securestore"
	"github.com/johnp-05/sumativatr1/internal/common"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return New(securestore.NewMemoryStore())
}

func TestUnlock_FirstPINSetsAndUnlocks(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	has, err := s.HasPIN(ctx)
	require.NoError(t, err)
	require.False(t, has)

	ok, err := s.Unlock(ctx, "123456")
	require.NoError(t, err)
	require.True(t, ok, "first PIN entry on an uninitialized vault unlocks")
	require.True(t, s.IsUnlocked())

	has, err = s.HasPIN(ctx)
	require.NoError(t, err)
	require.True(t, has, "first PIN entry also sets the credential")
}

func TestUnlock_RoundTripAfterRelock(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	ok, err := s.Unlock(ctx, "123456")
	require.NoError(t, err)
	require.True(t, ok)

	s.Lock()
	require.False(t, s.IsUnlocked())

	ok, err = s.Unlock(ctx, "123456")
	require.NoError(t, err)
	require.True(t, ok, "same PIN unlocks again")

	s.Lock()
	ok, err = s.Unlock(ctx, "999999")
	require.NoError(t, err)
	require.False(t, ok, "a different PIN fails once initialized")
	require.False(t, s.IsUnlocked())
}

func TestUnlock_RejectsMalformedPIN(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	for _, bad := range []string{"", "12345", "abcdef", "1234567"} {
		_, err := s.Unlock(ctx, bad)
		require.Error(t, err, "pin %q", bad)
		require.True(t, errors.Is(err, common.ErrInvalidPIN))
	}

	// A malformed PIN on an uninitialized vault must not become the credential.
	has, err := s.HasPIN(ctx)
	require.NoError(t, err)
	require.False(t, has)
}

func TestVault_LockedOperationsFail(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.List(ctx)
	require.True(t, errors.Is(err, common.ErrVaultLocked))

	_, err = s.Add(ctx, "secreta", "", false)
	require.True(t, errors.Is(err, common.ErrVaultLocked))

	err = s.Delete(ctx, "1")
	require.True(t, errors.Is(err, common.ErrVaultLocked))
}

func TestVault_TaskCRUD(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Unlock(ctx, "123456")
	require.NoError(t, err)

	created, err := s.Add(ctx, "pagar alquiler", "antes del día 5", false)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "pagar alquiler", list[0].Title)

	newTitle := "pagar alquiler y luz"
	updated, err := s.Update(ctx, created.ID, models.TaskUpdate{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, newTitle, updated.Title)
	require.Equal(t, "antes del día 5", updated.Description, "untouched fields survive")

	toggled, err := s.ToggleComplete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	require.NoError(t, s.Delete(ctx, created.ID))

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestVault_UpdateUnknownIDIsNotFound(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Unlock(ctx, "123456")
	require.NoError(t, err)

	_, err = s.Update(ctx, "nope", models.TaskUpdate{})
	require.True(t, errors.Is(err, common.ErrorNotFound))

	err = s.Delete(ctx, "nope")
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestVault_IDsAreUniquePerTask(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Unlock(ctx, "123456")
	require.NoError(t, err)

	// Freeze the id seam to simulate two adds in the same millisecond and
	// make sure the list still holds both entries.
	orig := nowMillisID
	defer func() { nowMillisID = orig }()
	seq := 0
	nowMillisID = func() string {
		seq++
		return fmt.Sprintf("17000000000%02d", seq)
	}

	a, err := s.Add(ctx, "una", "", false)
	require.NoError(t, err)
	b, err := s.Add(ctx, "otra", "", false)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestVault_ResetClearsEverything(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Unlock(ctx, "123456")
	require.NoError(t, err)
	_, err = s.Add(ctx, "privada", "", false)
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	require.False(t, s.IsUnlocked())

	has, err := s.HasPIN(ctx)
	require.NoError(t, err)
	require.False(t, has)

	// A new first PIN reinitializes and the list starts empty.
	ok, err := s.Unlock(ctx, "000000")
	require.NoError(t, err)
	require.True(t, ok)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
