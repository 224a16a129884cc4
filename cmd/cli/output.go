package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// printTable writes rows as a tab-aligned table with a header line
func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// printField writes one label/value line of a detail view
func printField(label, value string) {
	fmt.Printf("%-16s %s\n", label+":", dash(value))
}

// dash substitutes a placeholder for empty values in table cells
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
