package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReporterAI marks reports raised by the moderation gate.
const ReporterAI = "AI"

// EventReport is a moderation flag awaiting administrator review.
type EventReport struct {
	ID         uuid.UUID
	EventID    string
	Reason     string
	ReportedBy string
	Status     ReportStatus
	Type       ReportType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
