package domain

import (
	"fmt"
	"strings"
	"time"
)

// Unassigned is the sentinel stored whenever an asset has no assignee.
// Stored records never carry an empty AssignedTo.
const Unassigned = "Unassigned"

// Well-known statuses the metrics and filters depend on. The full set of
// selectable statuses (and categories) comes from configuration.
const (
	StatusAssigned  = "Assigned"
	StatusFaulty    = "Faulty"
	StatusAvailable = "Available"
	StatusRetired   = "Retired"
)

// Asset represents a tracked inventory record.
// The JSON tags define the persisted storage layout.
type Asset struct {
	ID             string `json:"id"`        // opaque unique identifier, assigned once
	SequenceNumber int    `json:"assetId"`   // human-facing, strictly increasing
	Name           string `json:"name"`
	Category       string `json:"category"`
	AssignedTo     string `json:"assignedTo"`
	Status         string `json:"status"`
	DateAdded      string `json:"dateAdded"` // RFC3339, stamped at creation
}

// NormalizeAssignee trims the raw input and maps blank to the Unassigned
// sentinel. Every write path goes through this.
func NormalizeAssignee(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Unassigned
	}
	return trimmed
}

// ActiveUserKey returns the normalized identity of an assignee for
// distinct-user counting: trimmed and lowercased. The second return is
// false for blank assignees and the Unassigned sentinel.
func ActiveUserKey(assignedTo string) (string, bool) {
	trimmed := strings.TrimSpace(assignedTo)
	if trimmed == "" || assignedTo == Unassigned {
		return "", false
	}
	return strings.ToLower(trimmed), true
}

// ValidateName checks that an asset name is usable as a display string.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("asset name cannot be empty")
	}
	if len(name) > 200 {
		return fmt.Errorf("asset name too long (max 200 characters)")
	}
	return nil
}

// StampDateAdded returns the creation timestamp in its stored form.
func StampDateAdded(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}

// GetDisplayDate renders DateAdded with the given layout, falling back to
// the raw stored value if it does not parse.
func (a *Asset) GetDisplayDate(layout string) string {
	t, err := time.Parse(time.RFC3339, a.DateAdded)
	if err != nil {
		return a.DateAdded
	}
	if layout == "" {
		layout = "2006-01-02"
	}
	return t.Format(layout)
}

// DisplaySeq returns the human-facing reference, e.g. "#12".
func (a *Asset) DisplaySeq() string {
	return fmt.Sprintf("#%d", a.SequenceNumber)
}
