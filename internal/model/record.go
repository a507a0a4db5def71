package model

import "time"

// Record is one stored job-application contact entry.
//
// Field names on the wire are fixed: the exported CSV and the persisted JSON both
// feed the downstream scrape/email pipeline, so renaming a field is a breaking change.
type Record struct {
	EmployerName string `json:"employer_name"`
	EmployerRole string `json:"employer_role"`
	EmailID      string `json:"email_id"`
	JobLink      string `json:"job_link"`

	// Timestamp is assigned exactly once, when the record is appended.
	// ISO-8601 (RFC 3339); never recomputed afterwards.
	Timestamp string `json:"timestamp"`
}

// NewRecord stamps a record at creation time. All text fields are free-form;
// empty strings are accepted and persisted as-is.
func NewRecord(employerName, employerRole, emailID, jobLink string, now time.Time) Record {
	return Record{
		EmployerName: employerName,
		EmployerRole: employerRole,
		EmailID:      emailID,
		JobLink:      jobLink,
		Timestamp:    now.Format(time.RFC3339),
	}
}
