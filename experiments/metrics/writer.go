package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type MatchRecord struct {
	ID      uuid.UUID
	MatchUp int // MatchUp.ID
	MatchMetric
}

type MoveRecord struct {
	Match uuid.UUID // MatchRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a directory for the experiment under outputDir, named by
// the current timestamp.
func NewWriter(outputDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(outputDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchUps(matchUps []MatchUp) error {
	rows := make([][]string, len(matchUps))
	for i, matchUp := range matchUps {
		rows[i] = []string{
			strconv.Itoa(matchUp.ID),
			matchUp.First.String(),
			matchUp.Second.String(),
		}
	}
	return w.write("matchups.csv", []string{"id", "first", "second"}, rows)
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			record.ID.String(),
			strconv.Itoa(record.MatchUp),
			strconv.FormatBool(record.FirstWinning),
			record.Winner,
			strconv.Itoa(record.Games),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Positions),
			strconv.FormatInt(record.CacheHits, 10),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		}
	}
	header := []string{"id", "matchup", "first_winning", "winner", "games", "moves", "positions", "cache_hits", "start_time", "end_time", "duration"}
	return w.write("matches.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			record.Match.String(),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Slot),
			strconv.Itoa(record.NimSumBefore),
			strconv.Itoa(record.NimSumAfter),
		}
	}
	return w.write("moves.csv", []string{"match", "step", "player", "slot", "nim_sum_before", "nim_sum_after"}, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
