package domain

import "strings"

// JobRecord is one listing as returned by the portal backend's job search.
// Immutable once received; it travels between screens as the job context and,
// for interview prep only, is mirrored into durable local storage.
type JobRecord struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Company         string  `json:"company"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	SalaryMin       float64 `json:"salary_min,omitempty"`
	SalaryMax       float64 `json:"salary_max,omitempty"`
	SalaryPredicted string  `json:"salary_is_predicted,omitempty"` // upstream sends "1"/"0"
	RedirectURL     string  `json:"redirect_url"`
	Created         string  `json:"created,omitempty"`
	ContractType    string  `json:"contract_type,omitempty"`
	ContractTime    string  `json:"contract_time,omitempty"`
	Category        string  `json:"category,omitempty"`
}

// Usable reports whether the record carries enough context for the AI
// screens. A record without a title is treated the same as no record.
func (j JobRecord) Usable() bool {
	return strings.TrimSpace(j.Title) != ""
}
