package models

// ConfigEntry is one row of the key-value Config table.
type ConfigEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
