package event

import (
	"strings"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/validation"
)

const (
	MinPosters = 1
	MaxPosters = 3
)

// ContactInput is one contact person on the submission form.
type ContactInput struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,max=30"`
}

// CreateEventInput is the typed event submission. Posters travel separately.
type CreateEventInput struct {
	Title               string         `json:"title"               validate:"required,max=150"`
	Description         string         `json:"description"         validate:"required,max=20000"`
	Campus              domain.Campus  `json:"campus"              validate:"campus"`
	Date                time.Time      `json:"date"                validate:"required"`
	RegistrationEndDate time.Time      `json:"registrationEndDate" validate:"required,ltefield=Date"`
	Location            string         `json:"location"            validate:"required,max=200"`
	Organizer           string         `json:"organizer"           validate:"required,max=150"`
	Fee                 string         `json:"fee"                 validate:"fee"`
	HasStarpoints       bool           `json:"hasStarpoints"`
	IsRecruiting        bool           `json:"isRecruiting"`
	Categories          []string       `json:"categories"          validate:"min=1,max=10,dive,required,max=50"`
	RegistrationLink    *string        `json:"registrationLink"    validate:"omitempty,http_url"`
	Contacts            []ContactInput `json:"contacts"            validate:"min=1,max=2,dive"`
}

// Validate runs struct rules plus the checks that need the clock.
func (i *CreateEventInput) Validate(now time.Time) error {
	trimAll(&i.Title, &i.Location, &i.Organizer)
	i.RegistrationLink = trimOrNil(i.RegistrationLink)
	if err := validation.Struct(i); err != nil {
		return err
	}
	if err := checkCategories(i.Categories); err != nil {
		return err
	}
	return checkDeadline(i.RegistrationEndDate, now)
}

// UpdateDetailsInput replaces every author-editable field except the description.
type UpdateDetailsInput struct {
	EventID             string         `json:"eventId"             validate:"required,eventid"`
	Title               string         `json:"title"               validate:"required,max=150"`
	Campus              domain.Campus  `json:"campus"              validate:"campus"`
	Date                time.Time      `json:"date"                validate:"required"`
	RegistrationEndDate time.Time      `json:"registrationEndDate" validate:"required,ltefield=Date"`
	Location            string         `json:"location"            validate:"required,max=200"`
	Organizer           string         `json:"organizer"           validate:"required,max=150"`
	Fee                 string         `json:"fee"                 validate:"fee"`
	HasStarpoints       bool           `json:"hasStarpoints"`
	IsRecruiting        bool           `json:"isRecruiting"`
	Categories          []string       `json:"categories"          validate:"min=1,max=10,dive,required,max=50"`
	RegistrationLink    *string        `json:"registrationLink"    validate:"omitempty,http_url"`
	Contacts            []ContactInput `json:"contacts"            validate:"min=1,max=2,dive"`
}

func (i *UpdateDetailsInput) Validate(now time.Time) error {
	trimAll(&i.Title, &i.Location, &i.Organizer)
	i.RegistrationLink = trimOrNil(i.RegistrationLink)
	if err := validation.Struct(i); err != nil {
		return err
	}
	if err := checkCategories(i.Categories); err != nil {
		return err
	}
	return checkDeadline(i.RegistrationEndDate, now)
}

// UpdateDescriptionInput replaces the rich-text description.
type UpdateDescriptionInput struct {
	EventID     string `json:"eventId"     validate:"required,eventid"`
	Description string `json:"description" validate:"required,max=20000"`
}

func (i *UpdateDescriptionInput) Validate() error {
	return validation.Struct(i)
}

// checkCategories rejects lists that normalize to nothing, such as
// whitespace-only tags.
func checkCategories(categories []string) error {
	if len(domain.NormalizeCategories(categories)) == 0 {
		return domain.NewValidationError("categories", "at least one category is required")
	}
	return nil
}

func checkDeadline(regEnd, now time.Time) error {
	if !regEnd.After(now) {
		return domain.NewValidationError("registrationEndDate", "must be in the future")
	}
	return nil
}

func validatePosters(n int) error {
	if n < MinPosters || n > MaxPosters {
		return domain.NewValidationError("posters", "must contain between 1 and 3 images")
	}
	return nil
}

func toContacts(in []ContactInput) []domain.Contact {
	out := make([]domain.Contact, len(in))
	for i, c := range in {
		out[i] = domain.Contact{Name: strings.TrimSpace(c.Name), Phone: strings.TrimSpace(c.Phone)}
	}
	return out
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
