// Copyright Kieran C., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun(id string, at time.Time) Run {
	return Run{
		ID:         id,
		StartedAt:  at,
		InputFile:  "export.csv",
		OutputFile: "out.csv",
		NotesFile:  "notes.csv",
		Format:     types.FormatProton,
		Vault:      "Personal",
		Summary: types.Summary{
			TotalRows: 12, LoginRows: 9, NoteRows: 3,
			PasswordCleaned: 1, ProblemRows: 2,
		},
	}
}

func TestStore_RecordAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run := sampleRun("run-1", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, s.Record(ctx, run))

	got, err := s.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.InputFile, got.InputFile)
	assert.Equal(t, run.Format, got.Format)
	assert.Equal(t, run.Summary, got.Summary)
	assert.True(t, run.StartedAt.Equal(got.StartedAt))
}

func TestStore_GetMissing(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, s.Record(ctx, sampleRun(id, base.Add(time.Duration(i)*time.Hour))))
	}

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "old", runs[2].ID)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStore_DuplicateIDRejected(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run := sampleRun("dup", time.Now())
	require.NoError(t, s.Record(ctx, run))
	require.Error(t, s.Record(ctx, run))
}

func TestStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{Dir: dir}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), sampleRun("persisted", time.Now())))
	require.NoError(t, s.Close())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(context.Background(), "persisted")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.ID)
}
