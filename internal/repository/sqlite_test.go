package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DanRulev/vokabot/internal/config"
	"github.com/DanRulev/vokabot/internal/models"
	"github.com/DanRulev/vokabot/internal/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) Repository {
	t.Helper()

	conn, err := db.InitDB(config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(context.Background(), conn.DB, config.DriverSQLite))

	return NewRepository(conn, config.DriverSQLite)
}

func TestSQLite_VocabRoundTrip(t *testing.T) {
	t.Parallel()

	repo := setupSQLite(t)
	ctx := context.Background()

	count, err := repo.CountVocab(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	id1, err := repo.AddVocab(ctx, "hello", "Hallo")
	require.NoError(t, err)
	id2, err := repo.AddVocab(ctx, "car", "PKW")
	require.NoError(t, err)
	// duplicates are kept
	id3, err := repo.AddVocab(ctx, "hello", "Servus")
	require.NoError(t, err)
	assert.Less(t, id1, id2)
	assert.Less(t, id2, id3)

	count, err = repo.CountVocab(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := repo.ListVocab(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []models.VocabEntry{
		{ID: id1, English: "hello", German: "Hallo"},
		{ID: id2, English: "car", German: "PKW"},
		{ID: id3, English: "hello", German: "Servus"},
	}, all)

	limited, err := repo.ListVocab(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLite_SearchVocab(t *testing.T) {
	t.Parallel()

	repo := setupSQLite(t)
	ctx := context.Background()

	for _, p := range [][2]string{{"hello", "Hallo"}, {"car", "PKW"}, {"100% sure", "ganz sicher"}, {"house", "Haus"}, {"exercise", "Übung"}, {"apples", "Äpfel"}} {
		_, err := repo.AddVocab(ctx, p[0], p[1])
		require.NoError(t, err)
	}

	tests := []struct {
		term string
		want []string
	}{
		{term: "HAL", want: []string{"hello"}},
		{term: "pkw", want: []string{"car"}},
		{term: "ha", want: []string{"hello", "house"}},
		{term: "%", want: []string{"100% sure"}},
		{term: "_", want: nil},
		{term: "zebra", want: nil},
		{term: "Übung", want: []string{"exercise"}},
		{term: "übung", want: []string{"exercise"}},
		{term: "ÜBUNG", want: []string{"exercise"}},
		{term: "bung", want: []string{"exercise"}},
		{term: "äPFEL", want: []string{"apples"}},
	}
	for _, tt := range tests {
		tt := tt
		got, err := repo.SearchVocab(ctx, tt.term)
		require.NoError(t, err, tt.term)

		var english []string
		for _, e := range got {
			english = append(english, e.English)
		}
		assert.Equal(t, tt.want, english, tt.term)
	}

	// searching never changes the table
	first, err := repo.SearchVocab(ctx, "ha")
	require.NoError(t, err)
	second, err := repo.SearchVocab(ctx, "ha")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	count, err := repo.CountVocab(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestSQLite_TrainingStats(t *testing.T) {
	t.Parallel()

	repo := setupSQLite(t)
	ctx := context.Background()

	stats, err := repo.TrainingStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TrainingStats{}, stats)

	require.NoError(t, repo.AddTrainingResult(ctx, models.TrainingResult{UserID: 1, Total: 5, Correct: 4, FinishedAt: time.Now()}))
	require.NoError(t, repo.AddTrainingResult(ctx, models.TrainingResult{UserID: 1, Total: 2, Correct: 0, FinishedAt: time.Now()}))
	require.NoError(t, repo.AddTrainingResult(ctx, models.TrainingResult{UserID: 2, Total: 9, Correct: 9, FinishedAt: time.Now()}))

	stats, err = repo.TrainingStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TrainingStats{Sessions: 2, Questions: 7, Correct: 4}, stats)
}
