package schema

// Encode flattens a record into one cell per header, in header order.
// Missing fields become empty cells; columns are never reordered or dropped.
func Encode(headers []string, record map[string]string) []string {
	cells := make([]string, len(headers))
	for i, header := range headers {
		cells[i] = record[header]
	}
	return cells
}

// Decode zips headers with cells positionally. Trailing cells the backend
// trimmed come back as empty strings. Numeric and enum coercion is the
// caller's job.
func Decode(headers []string, cells []string) map[string]string {
	record := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(cells) {
			record[header] = cells[i]
		} else {
			record[header] = ""
		}
	}
	return record
}
