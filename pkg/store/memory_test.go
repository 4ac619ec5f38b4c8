package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/courier/pkg/compose"
	"github.com/dmitrymomot/courier/pkg/store"
)

func TestMemoryFindRenditions(t *testing.T) {
	t.Parallel()

	m := store.NewMemory()
	old := &compose.Rendition{
		ID:           uuid.New(),
		DefinitionID: "welcome",
		Enabled:      true,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &compose.Rendition{
		ID:           uuid.New(),
		DefinitionID: "welcome",
		Enabled:      true,
		CreatedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	disabled := &compose.Rendition{
		ID:           uuid.New(),
		DefinitionID: "welcome",
		Enabled:      false,
		CreatedAt:    time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	other := &compose.Rendition{
		ID:           uuid.New(),
		DefinitionID: "digest",
		Enabled:      true,
		CreatedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	m.AddRendition(old)
	m.AddRendition(newer)
	m.AddRendition(disabled)
	m.AddRendition(other)

	t.Run("newest first, enabled only", func(t *testing.T) {
		got, err := m.FindRenditions(context.Background(), "welcome", true)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, newer.ID, got[0].ID)
		require.Equal(t, old.ID, got[1].ID)
	})

	t.Run("includes disabled when asked", func(t *testing.T) {
		got, err := m.FindRenditions(context.Background(), "welcome", false)
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, disabled.ID, got[0].ID)
	})

	t.Run("unknown definition", func(t *testing.T) {
		got, err := m.FindRenditions(context.Background(), "missing", true)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestMemoryFindTemplates(t *testing.T) {
	t.Parallel()

	m := store.NewMemory()
	old := &compose.Template{
		ID:        uuid.New(),
		Enabled:   true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &compose.Template{
		ID:        uuid.New(),
		Enabled:   true,
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	m.AddTemplate(old)
	m.AddTemplate(newer)
	m.AddTemplate(&compose.Template{ID: uuid.New(), Enabled: false})

	got, err := m.FindTemplates(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, newer.ID, got[0].ID)
	require.Equal(t, old.ID, got[1].ID)
}

func TestMemoryIdentities(t *testing.T) {
	t.Parallel()

	m := store.NewMemory()
	m.AddUser(&compose.Recipient{Email: "Jamie@Example.com", Name: "Jamie Doe", Username: "jamie"})
	m.AddGroup(&compose.Recipient{Email: "team@example.com", GroupName: "Support Team"})

	t.Run("user lookup is case-insensitive", func(t *testing.T) {
		got, err := m.FindUserByEmail(context.Background(), "jamie@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "jamie", got.Username)
	})

	t.Run("group lookup", func(t *testing.T) {
		got, err := m.FindGroupByEmail(context.Background(), "team@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "Support Team", got.GroupName)
	})

	t.Run("miss returns nil, nil", func(t *testing.T) {
		got, err := m.FindUserByEmail(context.Background(), "nobody@example.com")
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
