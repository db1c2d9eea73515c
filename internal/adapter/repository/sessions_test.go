package repository

import (
	"testing"
	"time"

	"resume-architect/internal/domain"
	"resume-architect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(time.Minute)
	sess := domain.NewSession("s1", model.UUIDGen{})
	store.Save(sess)

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, 1, store.Count())

	store.Delete("s1")
	_, err = store.Get("s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewSessionStore(time.Minute)
	_, err := store.Get("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)
	store.Save(domain.NewSession("s1", model.UUIDGen{}))

	time.Sleep(30 * time.Millisecond)
	_, err := store.Get("s1")
	assert.ErrorIs(t, err, ErrNotFound)
}
