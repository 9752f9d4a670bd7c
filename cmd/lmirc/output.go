package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/openlmi/lmirc/internal/conf"
	"github.com/openlmi/lmirc/internal/l10n"
)

// renderListing writes the resolved configuration as one row per option,
// honoring the Format section: ListerFormat picks the encoding, NoHeadings
// drops the header row and HumanFriendly prettifies values.
func renderListing(w io.Writer, config conf.Config) error {
	var rows [][]string
	if !config.NoHeadings {
		rows = append(rows, []string{l10n.T("Section"), l10n.T("Option"), l10n.T("Value")})
	}
	for _, opt := range conf.Options() {
		rows = append(rows, []string{opt.Section, opt.Name, renderValue(config, opt)})
	}

	if config.ListerFormat == conf.ListerCSV {
		return writeCSV(w, rows)
	}
	return writeTable(w, rows)
}

// renderValue formats one option's resolved value. Raw output keeps the
// file spelling; human-friendly output capitalizes booleans and marks
// unset values.
func renderValue(config conf.Config, opt conf.Option) string {
	value := config.Value(opt)
	if !config.HumanFriendly {
		return value
	}
	switch {
	case opt.Kind == conf.KindBool:
		if value == "true" {
			return l10n.T("True")
		}
		return l10n.T("False")
	case value == "":
		return l10n.T("(none)")
	default:
		return value
	}
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to render csv: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
