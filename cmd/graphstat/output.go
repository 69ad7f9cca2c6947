package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// printer renders a command result either as an aligned table or as YAML.
type printer struct {
	w      io.Writer
	format string
}

func (a *app) printer(w io.Writer) *printer {
	return &printer{w: w, format: a.cfg.Format}
}

// emit writes doc as YAML, or headers/rows as a table in text mode.
func (p *printer) emit(doc any, headers []string, rows [][]string) error {
	if p.format == formatYAML {
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	if len(headers) > 0 {
		if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func ftoa(f float64) string { return fmt.Sprintf("%.6g", f) }
