package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/sorting"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st := New(filepath.Join(t.TempDir(), "runs"))
	require.NoError(t, st.Init())

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return st
}

func TestStoreSaveLoad(t *testing.T) {
	st := newTestStore(t)
	input := []int{3, 1, 2}

	runID, err := st.Save(sorting.Bubble, 42, input, sorting.BubbleSort(input))
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "bubble", meta.Algorithm)
	assert.Equal(t, int64(42), meta.Seed)
	assert.Equal(t, 3, meta.Size)
	assert.Equal(t, 3, meta.Steps)
	assert.Equal(t, []int{3, 1, 2}, meta.Input)
	assert.Equal(t, []int{1, 2, 3}, meta.Final)

	steps, err := st.LoadSteps(runID)
	require.NoError(t, err)
	want := []sorting.Step{
		{Array: []int{3, 1, 2}, Highlight: sorting.NoHighlight},
		{Array: []int{1, 3, 2}, Highlight: sorting.Pair{0, 1}},
		{Array: []int{1, 2, 3}, Highlight: sorting.Pair{1, 2}},
	}
	assert.Equal(t, want, steps)
}

func TestStoreCountingTraceKeepsOutputBuffer(t *testing.T) {
	st := newTestStore(t)
	input := []int{2, 1, 2}

	runID, err := st.Save(sorting.Counting, 1, input, sorting.CountingSort(input))
	require.NoError(t, err)

	steps, err := st.LoadSteps(runID)
	require.NoError(t, err)
	require.Len(t, steps, 10)
	assert.Equal(t, []int{0, 0, 2}, steps[4].Array)
}

func TestStoreList(t *testing.T) {
	st := newTestStore(t)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	first, err := st.Save(sorting.Merge, 1, []int{2, 1}, sorting.MergeSort([]int{2, 1}))
	require.NoError(t, err)
	second, err := st.Save(sorting.Heap, 2, []int{2, 1}, sorting.HeapSort([]int{2, 1}))
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(st.baseDir, "junk"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first, runs[0].ID)
	assert.Equal(t, second, runs[1].ID)
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Load("missing")
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = st.LoadSteps("missing")
	assert.ErrorIs(t, err, ErrRunNotFound)

	assert.ErrorIs(t, st.ExportJSON(&bytes.Buffer{}, "missing"), ErrRunNotFound)
}

func TestStoreCorruptSteps(t *testing.T) {
	st := newTestStore(t)
	runID, err := st.Save(sorting.Bubble, 1, []int{2, 1}, sorting.BubbleSort([]int{2, 1}))
	require.NoError(t, err)

	path := filepath.Join(st.baseDir, runID, "steps.csv")
	require.NoError(t, os.WriteFile(path, []byte("step,h0,h1,v0\n0,x,1,2\n"), 0644))

	_, err = st.LoadSteps(runID)
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	st := newTestStore(t)
	input := []int{2, 1}
	runID, err := st.Save(sorting.Insertion, 7, input, sorting.InsertionSort(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, st.ExportJSON(&buf, runID))

	var got ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, runID, got.ID)
	assert.Equal(t, "insertion", got.Algorithm)
	require.Len(t, got.Trace, got.Steps)
	assert.Equal(t, [2]int{-1, -1}, got.Trace[0].Highlight)
	assert.Equal(t, []int{1, 2}, got.Trace[len(got.Trace)-1].Array)
}
