// Package model defines the lead, probe, and enrichment records that flow
// through the outreach pipeline.
package model

import "strings"

// Canonical input column names recognized in lead source documents.
const (
	ColCompany      = "Company"
	ColWebsite      = "Website"
	ColContactName  = "ContactName"
	ColContactEmail = "ContactEmail"
	ColLocation     = "Location"
)

// Enrichment columns appended to the output table, in order.
const (
	ColPhone         = "Phone"
	ColProfile       = "Profile"
	ColTailoredEmail = "TailoredEmail"
	ColScrapeError   = "ScrapeError"
)

// Extended-mode columns (signals recovered by the prober beyond the default schema).
const (
	ColEmailFound    = "EmailFound"
	ColLocationGuess = "LocationGuess"
)

// Lead is one prospective business contact from the source sheet.
// Fields are sourced verbatim from the input row and never mutated.
type Lead struct {
	Company      string `json:"company"`
	Website      string `json:"website"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Location     string `json:"location,omitempty"`

	// Extra holds unrecognized input columns so the output table can
	// reproduce the full input row.
	Extra map[string]string `json:"extra,omitempty"`
}

// Field returns the lead's value for a named input column.
func (l Lead) Field(col string) string {
	switch col {
	case ColCompany:
		return l.Company
	case ColWebsite:
		return l.Website
	case ColContactName:
		return l.ContactName
	case ColContactEmail:
		return l.ContactEmail
	case ColLocation:
		return l.Location
	default:
		return l.Extra[col]
	}
}

// ProbeResult carries the signals scraped from a lead's website.
// Error is empty on success; on homepage failure it is set and every
// other field is left empty.
type ProbeResult struct {
	Brief         string   `json:"brief"`
	Keywords      []string `json:"keywords"` // sorted, deduplicated
	Phone         string   `json:"phone"`    // "(XXX) XXX-XXXX" or empty
	EmailFound    string   `json:"email_found,omitempty"`
	LocationGuess string   `json:"location_guess,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// KeywordList renders the keyword set as the comma-joined form used in
// prompts and the output table.
func (p ProbeResult) KeywordList() string {
	return strings.Join(p.Keywords, ", ")
}

// EnrichedLead is a lead plus its generated enrichment: one output row.
type EnrichedLead struct {
	Lead
	Phone         string `json:"phone"`
	Profile       string `json:"profile"`
	TailoredEmail string `json:"tailored_email"`
	ScrapeError   string `json:"scrape_error,omitempty"`
	EmailFound    string `json:"email_found,omitempty"`
	LocationGuess string `json:"location_guess,omitempty"`
}

// LeadSet is an ordered batch of leads plus the input header it was read
// from. Header preserves the source column order so the writer can emit
// input columns ahead of the enrichment columns.
type LeadSet struct {
	Header []string `json:"header"`
	Leads  []Lead   `json:"leads"`
}
