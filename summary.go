package pagemeta

import (
	"fmt"
	"io"
	"sort"
)

// summaryWidth is the column width content types are padded to.
const summaryWidth = 50

// Summary counts processed pages by content type.
type Summary struct {
	Counts map[string]int
	Total  int

	// Unknown lists records whose content type is Unknown, in processing order.
	Unknown []*PageRecord

	// PossibleDuplicates counts pages whose node ID was probably already
	// seen on another page during the run.
	PossibleDuplicates int
}

// Summarize groups records by content type.
func Summarize(records []*PageRecord) *Summary {
	s := &Summary{Counts: make(map[string]int)}
	for _, r := range records {
		s.Counts[r.ContentType]++
		s.Total++
		if r.ContentType == Unknown {
			s.Unknown = append(s.Unknown, r)
		}
	}
	return s
}

// Types returns the distinct content types in ascending byte order.
func (s *Summary) Types() []string {
	types := make([]string, 0, len(s.Counts))
	for t := range s.Counts {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// WriteSummary prints the summary report to w. Unknown content types are
// listed first, followed by one padded line per content type and the total.
// If outputDir is not empty a pointer to the CSV location closes the report.
func WriteSummary(w io.Writer, s *Summary, outputDir string) error {
	for _, r := range s.Unknown {
		if _, err := fmt.Fprintf(w, "'%s' content type: %s (%s)\n", Unknown, r.File, r.AbsoluteURI); err != nil {
			return err
		}
	}

	for _, t := range s.Types() {
		if _, err := fmt.Fprintf(w, "%-*s: %d\n", summaryWidth, t, s.Counts[t]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%-*s: %d\n", summaryWidth, "Total pages", s.Total); err != nil {
		return err
	}

	if s.PossibleDuplicates > 0 {
		if _, err := fmt.Fprintf(w, "%-*s: %d\n", summaryWidth, "Possible duplicate nodes", s.PossibleDuplicates); err != nil {
			return err
		}
	}

	if outputDir != "" {
		if _, err := fmt.Fprintf(w, "See output CSV in %s\n", outputDir); err != nil {
			return err
		}
	}
	return nil
}
