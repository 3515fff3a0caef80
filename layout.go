package pagemeta

import "path/filepath"

// Layout resolves the directories of one wget run. Pages are read from
// <Base>/<Date>/<Time>/pages and rows are written to
// <Base>/<Date>/<Time>/nodes.csv.
//
// Stamps are used verbatim. Nothing is checked here; callers report
// missing directories when they first touch them.
type Layout struct {
	Base string
	Date string
	Time string
}

// OutputFile is the name of the CSV file written for each run.
const OutputFile = "nodes.csv"

// Dir returns the run directory, which is also where the CSV is written.
func (l Layout) Dir() string {
	base := l.Base
	if base == "" {
		base = "."
	}
	return filepath.Join(base, l.Date, l.Time)
}

// PagesDir returns the directory holding the downloaded pages.
func (l Layout) PagesDir() string {
	return filepath.Join(l.Dir(), "pages")
}

// OutputPath returns the path of the CSV file.
func (l Layout) OutputPath() string {
	return filepath.Join(l.Dir(), OutputFile)
}
