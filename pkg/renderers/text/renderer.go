// Package text writes a view as plain terminal output.
package text

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goliatone/go-keywordform/pkg/view"
)

// Render writes v to w. Idle views produce no output.
func Render(w io.Writer, v view.View) error {
	bw := bufio.NewWriter(w)

	switch {
	case v.Progress != nil:
		for _, line := range v.Progress.Lines {
			fmt.Fprintln(bw, line)
		}
	case v.Error != nil:
		fmt.Fprintf(bw, "Error: %s\n", v.Error.Message)
	case v.Results != nil:
		writeResults(bw, *v.Results)
	}

	return bw.Flush()
}

func writeResults(w io.Writer, r view.Results) {
	fmt.Fprintln(w, r.Summary.Title)
	for _, stat := range r.Summary.Stats {
		fmt.Fprintf(w, "  %s: %s\n", stat.Label, stat.Value)
	}
	if r.AdGroups == nil {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, r.AdGroups.Title)
	for i, group := range r.AdGroups.Groups {
		fmt.Fprintf(w, "[%d] %s (%s)  %s  %s\n", i+1, group.Name, group.Type, group.Budget, group.Percentage)
		fmt.Fprintf(w, "    Keywords (%s):\n", group.KeywordCount)
		for _, kw := range group.Keywords {
			fmt.Fprintf(w, "    - \"%s\"  %s searches/month\n", kw.Text, kw.SearchVolume)
			fmt.Fprintf(w, "      %s | %s CPC | %s\n", kw.Competition, kw.CPCRange, kw.MatchTypes)
		}
	}
}
