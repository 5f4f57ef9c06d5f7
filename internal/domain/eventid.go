package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// EventIDLength is the length of generated event identifiers.
const EventIDLength = 21

const legacyEventIDPrefix = "post-"

var eventIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{21}$`)

// NewEventID returns a fresh URL-safe event identifier.
func NewEventID() string {
	return gonanoid.Must(EventIDLength)
}

// ValidEventID reports whether id is a generated event id or a legacy post-<uuid-v4> id.
func ValidEventID(id string) bool {
	if eventIDPattern.MatchString(id) {
		return true
	}
	rest, ok := strings.CutPrefix(id, legacyEventIDPrefix)
	if !ok || len(rest) != 36 {
		return false
	}
	u, err := uuid.Parse(rest)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.String() == strings.ToLower(rest)
}
