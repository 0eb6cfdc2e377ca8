package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GameRecord summarizes one benchmark game.
type GameRecord struct {
	ID        int
	Truth     string
	Guesses   int
	Solved    bool
	Score     int
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // Summed over the game's searches
	Cutoffs   int64
}

// MoveRecord is one guess of a benchmark game.
type MoveRecord struct {
	Game     int // GameRecord.ID
	Step     int
	Guess    string
	Feedback string
	Nodes    int64
	Cutoffs  int64
	Duration time.Duration
}

type Writer struct {
	baseDir string
}

// NewWriter creates dir/name/<timestamp> for one experiment's files.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "truth", "guesses", "solved", "score", "start_time", "duration", "nodes", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Truth,
			strconv.Itoa(record.Guesses),
			strconv.FormatBool(record.Solved),
			strconv.Itoa(record.Score),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "guess", "feedback", "nodes", "cutoffs", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Guess,
			record.Feedback,
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			record.Duration.String(),
		})
	}
	return w.write("moves.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows) // Flushes
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
