package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(dir, timestamp)
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

func (w *Writer) WriteSummary(reports []Report) error {
	header := []string{"game", "symmetry", "value", "root", "entries", "collisions", "lookups", "hits", "primitives", "expansions", "duration"}

	rows := [][]string{}
	for _, report := range reports {
		rows = append(rows, []string{
			report.Game,
			report.Symmetry,
			report.Value,
			report.Root,
			strconv.Itoa(report.Entries),
			strconv.Itoa(report.Collisions),
			strconv.FormatInt(report.Solver.Lookups, 10),
			strconv.FormatInt(report.Solver.Hits, 10),
			strconv.FormatInt(report.Solver.Primitives, 10),
			strconv.FormatInt(report.Solver.Expansions, 10),
			report.Solver.Duration.String(),
		})
	}

	return w.writeFile("summary", header, rows)
}

// WriteRemoteness writes one row per (outcome, remoteness) pair, or per
// outcome when the report carries no remoteness.
func (w *Writer) WriteRemoteness(report Report) error {
	header := []string{"outcome", "remoteness", "positions"}

	rows := [][]string{}
	for _, record := range report.Rows {
		rows = append(rows, []string{record.Outcome.String(), record.Remoteness.String(), strconv.Itoa(record.Positions)})
	}
	if len(report.Rows) == 0 {
		for _, record := range report.Outcomes {
			rows = append(rows, []string{record.Outcome.String(), "", strconv.Itoa(record.Positions)})
		}
	}

	return w.writeFile("remoteness", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", name, err)
	}

	err = writeRecords(f, header, rows)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s file: %w", name, err)
	}
	return nil
}

// writeRecords writes header and rows and reports any error surfaced by the
// final flush.
func writeRecords(out io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(out)

	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
