package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

var ErrRunNotFound = errors.New("storage: run not found")

// Store keeps recorded step traces on disk, one directory per run holding
// metadata.json and steps.csv.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Algorithm string    `json:"algorithm"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Size      int       `json:"size"`
	Steps     int       `json:"steps"`
	Input     []int     `json:"input"`
	Final     []int     `json:"final"`
}

// Save drains steps into a new run and returns its id. Steps are streamed
// to disk, so the trace is never held in memory.
func (s *Store) Save(algorithm sorting.ID, seed int64, input []int, steps iter.Seq[sorting.Step]) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%d", algorithm, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	header := []string{"step", "h0", "h1"}
	for i := range input {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	count := 0
	final := input
	for step := range steps {
		row := make([]string, 0, 3+len(step.Array))
		row = append(row,
			strconv.Itoa(count),
			strconv.Itoa(step.Highlight[0]),
			strconv.Itoa(step.Highlight[1]),
		)
		for _, v := range step.Array {
			row = append(row, strconv.Itoa(v))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
		final = step.Array
		count++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: string(algorithm),
		Timestamp: ts,
		Seed:      seed,
		Size:      len(input),
		Steps:     count,
		Input:     input,
		Final:     final,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns stored runs, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadSteps(runID string) ([]sorting.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "steps.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sorting.Step{}, nil
	}

	steps := make([]sorting.Step, 0, len(records)-1)
	for line, record := range records[1:] {
		if len(record) < 3 {
			return nil, fmt.Errorf("%s line %d: short record", runID, line+2)
		}
		ints := make([]int, len(record)-1)
		for j, field := range record[1:] {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", runID, line+2, err)
			}
			ints[j] = v
		}
		steps = append(steps, sorting.Step{
			Highlight: sorting.Pair{ints[0], ints[1]},
			Array:     ints[2:],
		})
	}
	return steps, nil
}

type ExportData struct {
	RunMetadata
	Trace []ExportStep `json:"trace"`
}

type ExportStep struct {
	Array     []int  `json:"array"`
	Highlight [2]int `json:"highlight"`
}

// ExportJSON writes a run, metadata and full trace, as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	steps, err := s.LoadSteps(runID)
	if err != nil {
		return err
	}

	data := ExportData{RunMetadata: *meta, Trace: make([]ExportStep, len(steps))}
	for i, st := range steps {
		data.Trace[i] = ExportStep{Array: st.Array, Highlight: st.Highlight}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
