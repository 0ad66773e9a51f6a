// Package record stores simulated face runs on disk: one directory per run
// holding metadata.json and a frames.csv with every row's state per frame.
package record

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/slidetime/internal/driver"
	"github.com/san-kum/slidetime/internal/slide"
)

var ErrRunNotFound = errors.New("record: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Start     time.Time `json:"start"`
	Minutes   int       `json:"minutes"`
	Layout    string    `json:"layout"`
	Width     int       `json:"width"`
	Delays    []int     `json:"delays"`
	Frames    int       `json:"frames"`
}

// Recorder collects frames from a driver.
type Recorder struct {
	Frames []driver.FrameStats
}

func (r *Recorder) OnFrame(f driver.FrameStats) { r.Frames = append(r.Frames, f) }

func (s *Store) Save(meta RunMetadata, frames []driver.FrameStats) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("run_%s_%d", meta.Start.Format("1504"), now.UnixNano())
	meta.Timestamp = now
	meta.Frames = len(frames)
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	header := []string{"frame", "hour", "minute", "changed"}
	for i := 0; i < driver.NumRows; i++ {
		header = append(header, fmt.Sprintf("r%d_state", i), fmt.Sprintf("r%d_pos", i), fmt.Sprintf("r%d_text", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, f := range frames {
		row := []string{
			strconv.Itoa(f.Frame),
			strconv.Itoa(f.Hour),
			strconv.Itoa(f.Minute),
			strconv.FormatBool(f.Changed),
		}
		for _, r := range f.Rows {
			row = append(row, strconv.Itoa(int(r.State)), strconv.Itoa(r.Position), r.Text)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns all runs, oldest first.
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
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

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
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]driver.FrameStats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []driver.FrameStats{}, nil
	}

	frames := make([]driver.FrameStats, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 4+3*driver.NumRows {
			continue
		}
		f, err := parseFrame(rec)
		if err != nil {
			continue
		}
		frames = append(frames, f)
	}

	return frames, nil
}

func parseFrame(rec []string) (driver.FrameStats, error) {
	var f driver.FrameStats
	var err error
	if f.Frame, err = strconv.Atoi(rec[0]); err != nil {
		return f, err
	}
	if f.Hour, err = strconv.Atoi(rec[1]); err != nil {
		return f, err
	}
	if f.Minute, err = strconv.Atoi(rec[2]); err != nil {
		return f, err
	}
	if f.Changed, err = strconv.ParseBool(rec[3]); err != nil {
		return f, err
	}
	for i := 0; i < driver.NumRows; i++ {
		base := 4 + 3*i
		state, err := strconv.Atoi(rec[base])
		if err != nil {
			return f, err
		}
		f.Rows[i].State = slide.State(state)
		if f.Rows[i].Position, err = strconv.Atoi(rec[base+1]); err != nil {
			return f, err
		}
		f.Rows[i].Text = rec[base+2]
	}
	return f, nil
}

// Positions extracts the position series of one row.
func Positions(frames []driver.FrameStats, row int) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = float64(f.Rows[row].Position)
	}
	return out
}
