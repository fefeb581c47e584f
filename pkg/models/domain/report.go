package domain

import "time"

// Report represents a rendered audit, independent of output format
type Report struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Sections    []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
