package domain

// Campus is one of the physical university locations an event belongs to.
type Campus string

const (
	CampusGombak  Campus = "Gombak"
	CampusKuantan Campus = "Kuantan"
	CampusPagoh   Campus = "Pagoh"
	CampusGambang Campus = "Gambang"
)

func (c Campus) String() string { return string(c) }

func (c Campus) IsValid() bool {
	switch c {
	case CampusGombak, CampusKuantan, CampusPagoh, CampusGambang:
		return true
	}
	return false
}

// ReportStatus is the review state of an EventReport.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
	ReportStatusRejected ReportStatus = "rejected"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusRejected:
		return true
	}
	return false
}

// ReportType names the part of an event a report is about.
type ReportType string

const (
	ReportTypeTitle       ReportType = "title"
	ReportTypeDescription ReportType = "description"
	ReportTypeImage       ReportType = "image"
)

func (t ReportType) String() string { return string(t) }

func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeTitle, ReportTypeDescription, ReportTypeImage:
		return true
	}
	return false
}

// ModerationStatus is the outcome of the moderation gate.
type ModerationStatus string

const (
	ModerationValid   ModerationStatus = "valid"
	ModerationReview  ModerationStatus = "review"
	ModerationInvalid ModerationStatus = "invalid"
)

func (s ModerationStatus) String() string { return string(s) }

func (s ModerationStatus) IsValid() bool {
	switch s {
	case ModerationValid, ModerationReview, ModerationInvalid:
		return true
	}
	return false
}

// ModerationField is the submission field a moderation flag points at.
type ModerationField string

const (
	FieldTitle       ModerationField = "title"
	FieldDescription ModerationField = "description"
	FieldImage       ModerationField = "image"
)

func (f ModerationField) String() string { return string(f) }

func (f ModerationField) IsValid() bool {
	switch f {
	case FieldTitle, FieldDescription, FieldImage:
		return true
	}
	return false
}
