package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Contact is a person attendees can reach about an event.
type Contact struct {
	Name  string
	Phone string
}

// Event is a campus event posted by a user.
type Event struct {
	ID                  string
	Title               string
	Description         string
	Campus              Campus
	Date                time.Time
	RegistrationEndDate time.Time
	Location            string
	Organizer           string
	Fee                 string
	HasStarpoints       bool
	IsRecruiting        bool
	Categories          []string
	PosterKeys          []string
	RegistrationLink    *string
	Contacts            []Contact
	AuthorID            string
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsOwnedBy reports whether userID authored the event.
func (e *Event) IsOwnedBy(userID string) bool {
	return userID != "" && e.AuthorID == userID
}

// IsFree reports whether the event fee is zero.
func (e *Event) IsFree() bool {
	return FeeIsZero(e.Fee)
}

// IsExpired reports whether the event date or registration deadline has passed.
func (e *Event) IsExpired(now time.Time) bool {
	return !e.Date.After(now) || !e.RegistrationEndDate.After(now)
}

// CoverKey returns the first poster key, or "" when the event has none.
func (e *Event) CoverKey() string {
	if len(e.PosterKeys) == 0 {
		return ""
	}
	return e.PosterKeys[0]
}

// EventSummary is the compact form used by recommendations.
type EventSummary struct {
	ID        string
	PosterKey string
}

// EventDetails holds the author-editable fields of an event, excluding the description.
type EventDetails struct {
	Title               string
	Campus              Campus
	Date                time.Time
	RegistrationEndDate time.Time
	Location            string
	Organizer           string
	Fee                 string
	HasStarpoints       bool
	IsRecruiting        bool
	Categories          []string
	RegistrationLink    *string
}

// EventFilter describes a discovery search. Nil or empty fields do not filter.
type EventFilter struct {
	Query         string   `json:"q,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Campus        *Campus  `json:"campus,omitempty"`
	HasFee        *bool    `json:"hasFee,omitempty"`
	HasStarpoints *bool    `json:"hasStarpoints,omitempty"`
	IsRecruiting  *bool    `json:"isRecruiting,omitempty"`
	Limit         int      `json:"limit"`
	Offset        int      `json:"offset"`
}

// feePattern is a plain non-negative amount with at most two decimals.
var feePattern = regexp.MustCompile(`^\d{1,7}(\.\d{1,2})?$`)

// ParseFee parses a decimal fee string such as "0", "5" or "12.50".
// Signs, exponents and NaN/Inf spellings are rejected.
func ParseFee(fee string) (float64, bool) {
	fee = strings.TrimSpace(fee)
	if !feePattern.MatchString(fee) {
		return 0, false
	}
	v, err := strconv.ParseFloat(fee, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizeFee canonicalises a fee string, mapping every zero form to "0".
func NormalizeFee(fee string) string {
	v, ok := ParseFee(fee)
	if !ok {
		return strings.TrimSpace(fee)
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FeeIsZero reports whether the fee string represents a free event.
func FeeIsZero(fee string) bool {
	v, ok := ParseFee(fee)
	return ok && v == 0
}
