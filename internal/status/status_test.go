package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dusk-indust/phrasebook/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestScan_CompleteCorpus(t *testing.T) {
	dir := t.TempDir()
	for _, name := range corpus.Manifest() {
		writeFile(t, dir, name, `["one", "two"]`)
	}

	st, err := Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.True(t, st.Complete())
	assert.Equal(t, -1, st.NextMissing)
	assert.Equal(t, 16, st.TotalPhrases())

	require.Len(t, st.Categories, 8)
	for i, ci := range st.Categories {
		assert.Equal(t, corpus.Categories[i], ci.Category, "results must stay in corpus order")
		assert.True(t, ci.Present)
		assert.True(t, ci.Valid)
		assert.Equal(t, 2, ci.Phrases)
	}
}

func TestScan_EmptyDir(t *testing.T) {
	st, err := Scan(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.False(t, st.Complete())
	assert.Equal(t, 0, st.NextMissing)
	for _, ci := range st.Categories {
		assert.False(t, ci.Present)
		assert.False(t, ci.Valid)
		assert.Equal(t, -1, ci.Phrases)
	}
}

func TestScan_InvalidFileReported(t *testing.T) {
	dir := t.TempDir()
	for _, name := range corpus.Manifest() {
		writeFile(t, dir, name, `[]`)
	}
	writeFile(t, dir, corpus.Direct.FileName(), `{"broken":`)

	st, err := Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.False(t, st.Complete())
	assert.Equal(t, 2, st.NextMissing)

	ci := st.Categories[2]
	assert.True(t, ci.Present)
	assert.False(t, ci.Valid)
	assert.Equal(t, -1, ci.Phrases)
}

func TestScan_NonArrayDocument_ValidWithoutCount(t *testing.T) {
	dir := t.TempDir()
	for _, name := range corpus.Manifest() {
		writeFile(t, dir, name, `["x"]`)
	}
	writeFile(t, dir, corpus.Comment.FileName(), `{"note": "not a list"}`)

	st, err := Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.True(t, st.Complete(), "non-array documents are still mergeable")
	ci := st.Categories[6]
	assert.True(t, ci.Valid)
	assert.Equal(t, -1, ci.Phrases)
	assert.Equal(t, 7, st.TotalPhrases())
}

func TestScan_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
