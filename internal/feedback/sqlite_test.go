package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmxd-server/internal/domain"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	return store
}

func sampleFeedback() *Feedback {
	return &Feedback{
		DrugID:                  "clopidogrel",
		Gene:                    "CYP2C19",
		PhenotypeKey:            "intermediate_metabolizer",
		SuggestedClassification: domain.CAUTION,
		UserClassification:      domain.AVOID,
		UserAgreed:              false,
		Notes:                   "Recent stent placement; switched to ticagrelor",
	}
}

func TestNewSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "Database file should exist")
}

func TestSQLiteStore_Save(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()
	fb := sampleFeedback()

	err := store.Save(ctx, fb)

	require.NoError(t, err)
	assert.NotZero(t, fb.ID, "ID should be assigned")
	assert.False(t, fb.CreatedAt.IsZero(), "CreatedAt should be set")
	assert.False(t, fb.UpdatedAt.IsZero(), "UpdatedAt should be set")
}

func TestSQLiteStore_SaveUpsert(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()

	first := sampleFeedback()
	require.NoError(t, store.Save(ctx, first))

	// Same drug+gene+phenotype updates in place instead of inserting.
	second := sampleFeedback()
	second.UserClassification = domain.CAUTION
	second.UserAgreed = true
	second.Notes = "Reconsidered after follow-up"
	require.NoError(t, store.Save(ctx, second))

	assert.Equal(t, first.ID, second.ID)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := store.Get(ctx, "clopidogrel", "CYP2C19", "intermediate_metabolizer")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.UserAgreed)
	assert.Equal(t, "Reconsidered after follow-up", got.Notes)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	got, err := store.Get(context.Background(), "warfarin", "CYP2C9", "poor_metabolizer")
	require.NoError(t, err)
	assert.Nil(t, got, "missing feedback is nil, not an error")
}

func TestSQLiteStore_ListAndDelete(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()

	a := sampleFeedback()
	require.NoError(t, store.Save(ctx, a))

	b := sampleFeedback()
	b.DrugID = "codeine"
	b.Gene = "CYP2D6"
	b.PhenotypeKey = "poor_metabolizer"
	b.SuggestedClassification = domain.AVOID
	b.UserClassification = domain.AVOID
	b.UserAgreed = true
	require.NoError(t, store.Save(ctx, b))

	all, err := store.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, store.Delete(ctx, a.ID))

	all, err = store.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "codeine", all[0].DrugID)
}

func TestSQLiteStore_ExportJSON(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleFeedback()))

	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(ctx, &buf))

	var export Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &export))
	assert.Equal(t, "1.0", export.Version)
	assert.Equal(t, 1, export.Count)
	require.Len(t, export.Feedback, 1)
	assert.Equal(t, "clopidogrel", export.Feedback[0].DrugID)
}
