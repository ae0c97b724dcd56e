package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spacesedan/sentimeter/internal/models"
)

var unsafeName = regexp.MustCompile(`[^\w-]+`)

// CSVPath names the per-term dump: result_<term>.csv, where every run of
// characters outside [A-Za-z0-9_-] becomes a single underscore. The file
// always lands directly inside dir.
func CSVPath(dir, term string) string {
	return filepath.Join(dir, fmt.Sprintf("result_%s.csv", unsafeName.ReplaceAllString(term, "_")))
}

// WriteCSV writes every post as a Source,Text row, replacing any existing file.
func WriteCSV(path string, posts []models.Post) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("[Report] failed to create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Report] failed to create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Source", "Text"}); err != nil {
		return fmt.Errorf("[Report] failed to write csv header: %w", err)
	}
	for _, p := range posts {
		if err := w.Write([]string{string(p.Source), p.Text}); err != nil {
			return fmt.Errorf("[Report] failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("[Report] failed to flush csv: %w", err)
	}
	return f.Close()
}
