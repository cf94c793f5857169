package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-insights/internal/model"
)

func writeSeed(t *testing.T, dir string) string {
	t.Helper()
	seed := filepath.Join(dir, "seed.csv")
	content := StoreHeader + "\n2026-08-01,T1,abc,4,seeded row\n"
	require.NoError(t, os.WriteFile(seed, []byte(content), 0644))
	return seed
}

func TestWritableStore(t *testing.T) {
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	t.Run("seeds from the sample on first use", func(t *testing.T) {
		dir := t.TempDir()
		seed := writeSeed(t, dir)
		s, err := NewWritableStore(filepath.Join(dir, "pulses.csv"), seed)
		require.NoError(t, err)

		records, err := s.Snapshot()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "seeded row", records[0].CommentText)
	})

	t.Run("starts from a bare header when no seed exists", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewWritableStore(filepath.Join(dir, "pulses.csv"), filepath.Join(dir, "missing.csv"))
		require.NoError(t, err)

		records, err := s.Snapshot()
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("comment with comma and quote round-trips exactly", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewWritableStore(filepath.Join(dir, "pulses.csv"), writeSeed(t, dir))
		require.NoError(t, err)

		comment := `manager said "we'll see", then nothing happened`
		err = s.Append(model.PulseRecord{
			Timestamp:   day,
			TeamID:      "T1",
			EmpHash:     "xyz",
			Rating:      2,
			CommentText: comment,
		})
		require.NoError(t, err)

		records, err := s.Snapshot()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, comment, records[1].CommentText)
		assert.Equal(t, day, records[1].Timestamp)
	})

	t.Run("newline in comment round-trips", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewWritableStore(filepath.Join(dir, "pulses.csv"), writeSeed(t, dir))
		require.NoError(t, err)

		comment := "first thought\nsecond thought"
		require.NoError(t, s.Append(model.PulseRecord{
			Timestamp: day, TeamID: "T1", Rating: 3, CommentText: comment,
		}))

		records, err := s.Snapshot()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, comment, records[1].CommentText)
	})

	t.Run("existing store is not reseeded", func(t *testing.T) {
		dir := t.TempDir()
		seed := writeSeed(t, dir)
		path := filepath.Join(dir, "pulses.csv")

		s, err := NewWritableStore(path, seed)
		require.NoError(t, err)
		require.NoError(t, s.Append(model.PulseRecord{Timestamp: day, TeamID: "T2", Rating: 5}))

		// A second startup over the same path must keep the appended row.
		s2, err := NewWritableStore(path, seed)
		require.NoError(t, err)
		records, err := s2.Snapshot()
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestReadOnlyStore(t *testing.T) {
	t.Run("serves the seed and rejects appends", func(t *testing.T) {
		dir := t.TempDir()
		seed := writeSeed(t, dir)

		s, err := NewProvider("readonly", filepath.Join(dir, "unused.csv"), seed)
		require.NoError(t, err)

		records, err := s.Snapshot()
		require.NoError(t, err)
		assert.Len(t, records, 1)

		err = s.Append(model.PulseRecord{TeamID: "T1", Rating: 3})
		assert.ErrorIs(t, err, ErrReadOnly)

		// The seed file is untouched.
		records, err = s.Snapshot()
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
