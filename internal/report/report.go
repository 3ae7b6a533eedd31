// Package report builds the results printed by the isocal command and
// renders them as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/helixml/isocal/internal/config"
)

// Report is a result that can be rendered as aligned text rows.
type Report interface {
	Rows() [][2]string
}

// Render writes r to w in the given format.
func Render(w io.Writer, format config.OutputFormat, r Report) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, row := range r.Rows() {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
				return err
			}
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown output format %q", format)
}
