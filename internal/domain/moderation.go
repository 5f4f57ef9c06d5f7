package domain

import "fmt"

// Image is an encoded image handed to the moderation gate.
type Image struct {
	ContentType string
	Data        []byte
}

// Flag points at the field that triggered a non-valid verdict.
type Flag struct {
	Field   ModerationField
	Message string
}

// ReportType maps the flagged field to the EventReport type.
func (f Flag) ReportType() ReportType {
	switch f.Field {
	case FieldTitle:
		return ReportTypeTitle
	case FieldImage:
		return ReportTypeImage
	default:
		return ReportTypeDescription
	}
}

// Reason renders the stored report reason, e.g. "[Title] contains a phone sale".
func (f Flag) Reason() string {
	label := "Description"
	switch f.Field {
	case FieldTitle:
		label = "Title"
	case FieldImage:
		label = "Image"
	}
	return fmt.Sprintf("[%s] %s", label, f.Message)
}

// Verdict is the moderation gate outcome.
type Verdict struct {
	Status ModerationStatus
	Flag   *Flag
}

// Reason returns the flag message, or "" for a clean verdict.
func (v Verdict) Reason() string {
	if v.Flag == nil {
		return ""
	}
	return v.Flag.Message
}
