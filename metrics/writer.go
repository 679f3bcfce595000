package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type ActionRecord struct {
	Game int // GameRecord.ID
	ActionMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder under root for this run's records.
func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
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

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "starting_player", "start_time", "end_time", "duration", "actions", "rejected", "turns_a", "turns_b", "gold_a", "gold_b", "units_a", "units_b"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.StartingPlayer,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalActions),
			strconv.Itoa(record.Rejected),
			strconv.Itoa(record.TurnsA),
			strconv.Itoa(record.TurnsB),
			strconv.Itoa(record.GoldA),
			strconv.Itoa(record.GoldB),
			strconv.Itoa(record.UnitsA),
			strconv.Itoa(record.UnitsB),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteActionRecords(records []ActionRecord) error {
	header := []string{"game", "step", "player", "phase", "action", "accepted", "code"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Phase,
			record.Action,
			strconv.FormatBool(record.Accepted),
			record.Code,
		})
	}
	return w.writeCSV("action_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
