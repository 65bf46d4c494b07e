package models

// BackupDocument is the full-dataset snapshot produced by backup export and
// by the legacy converter, and accepted by backup import.
type BackupDocument struct {
	Regions   []Region             `json:"regions"`
	Clients   []Client             `json:"clients"`
	Operators []Operator           `json:"operators"`
	Machines  []Machine            `json:"machines"`
	Readings  []Reading            `json:"readings"`
	Links     []ClientOperatorLink `json:"links,omitempty"`
}

// BackupImportResult reports the outcome of a bulk import. Per-record
// failures land in Errors and never abort the import.
type BackupImportResult struct {
	Imported map[string]int `json:"imported"`
	Errors   []string       `json:"errors"`
}
