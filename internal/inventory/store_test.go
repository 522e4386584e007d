package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/accountbot/internal/model"
)

func batch(ids ...string) []model.Account {
	out := make([]model.Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Account{ID: id, Status: model.AccountStatusActive})
	}
	return out
}

func ids(accounts []model.Account) []string {
	out := make([]string, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.ID)
	}
	return out
}

func TestStore_PrependKeepsBatchOrder(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Prepend(batch("a", "b", "c")))
	require.NoError(t, s.Prepend(batch("d", "e")))

	assert.Equal(t, []string{"d", "e", "a", "b", "c"}, ids(s.Snapshot()))
	assert.Equal(t, 5, s.Len())
}

func TestStore_PrependRejectsDuplicates(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Prepend(batch("a")))
	version := s.Version()

	err := s.Prepend(batch("b", "a"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	err = s.Prepend(batch("x", "x"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	assert.Equal(t, []string{"a"}, ids(s.Snapshot()))
	assert.Equal(t, version, s.Version())
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Prepend(batch("a", "b")))

	require.NoError(t, s.Replace(batch("c", "d", "e")))
	assert.Equal(t, []string{"c", "d", "e"}, ids(s.Snapshot()))

	_, ok := s.Get("a")
	assert.False(t, ok)

	err := s.Replace(batch("f", "f"))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, []string{"c", "d", "e"}, ids(s.Snapshot()))
}

func TestStore_Update(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Prepend(batch("a", "b")))
	before := s.Version()

	updated, err := s.Update("b", func(a model.Account) (model.Account, error) {
		a.Status = model.AccountStatusRevoked
		a.ID = "hijacked"
		return a, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "b", updated.ID)
	assert.Greater(t, s.Version(), before)

	got, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, model.AccountStatusRevoked, got.Status)
	assert.Equal(t, []string{"a", "b"}, ids(s.Snapshot()))
}

func TestStore_UpdateErrorLeavesRecord(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Prepend(batch("a")))
	before := s.Version()

	boom := errors.New("boom")
	_, err := s.Update("a", func(a model.Account) (model.Account, error) {
		a.Status = model.AccountStatusPaused
		return a, boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ := s.Get("a")
	assert.Equal(t, model.AccountStatusActive, got.Status)
	assert.Equal(t, before, s.Version())

	_, err = s.Update("missing", func(a model.Account) (model.Account, error) { return a, nil })
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Prepend([]model.Account{{ID: "a", Email: "x@accountbot.shop", GeneratedAt: time.Now()}}))

	snap := s.Snapshot()
	snap[0].Email = "changed"

	got, _ := s.Get("a")
	assert.Equal(t, "x@accountbot.shop", got.Email)
}
