package models

import (
	"strconv"
	"strings"
)

// Cell coercion helpers. Spreadsheet cells are plain strings; parsing is
// lenient on purpose so a hand-edited sheet degrades to zero values instead
// of failing every read.

func parseInt(cell string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(cell))
	return v
}

func parseFloat(cell string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	return v
}

func parseOptFloat(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

// SplitCSV parses a comma-joined reference list cell into ids.
func SplitCSV(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinCSV renders a reference list back into its comma-joined cell form.
func JoinCSV(ids []string) string {
	return strings.Join(ids, ",")
}
