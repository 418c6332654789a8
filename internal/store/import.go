package store

import (
	"strings"

	"github.com/songbook/songbook/internal/model"
)

// ImportDelimiter separates the title from the optional trailing number in
// bulk-import lines ("Greensleeves - 42"). Only the first occurrence
// splits; later ones belong to the number.
const ImportDelimiter = " - "

// SkippedLine describes one bulk-import line that could not be parsed.
type SkippedLine struct {
	LineNo int // 1-based line number in the pasted text
	Text   string
	Reason string
}

// ImportReport summarizes a bulk import: how many songs were appended and
// which lines were skipped.
type ImportReport struct {
	Added   int
	Skipped []SkippedLine
}

// ImportBulk parses multi-line text, one song per line, and appends each
// parsed song to the collection. Blank lines are ignored; lines with an
// empty title are skipped and reported. A skipped line never aborts the
// batch.
func (s *Store) ImportBulk(text string) (ImportReport, error) {
	var report ImportReport
	for no, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		title, number := line, ""
		if i := strings.Index(line, ImportDelimiter); i >= 0 {
			title, number = line[:i], line[i+len(ImportDelimiter):]
		}
		title = strings.TrimSpace(title)
		number = strings.TrimSpace(number)
		if title == "" {
			skip := SkippedLine{LineNo: no + 1, Text: strings.TrimSpace(line), Reason: "missing title"}
			report.Skipped = append(report.Skipped, skip)
			s.log.Warnw("import line skipped", "line", skip.LineNo, "reason", skip.Reason)
			continue
		}

		s.songs = append(s.songs, model.Song{Title: title, Number: number})
		report.Added++
	}

	s.log.Infow("bulk import finished", "added", report.Added, "skipped", len(report.Skipped))
	if report.Added == 0 {
		return report, nil
	}
	return report, s.flush()
}
