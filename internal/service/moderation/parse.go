package moderation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

// GenericReason is used when the classifier gave no usable reason.
const GenericReason = "the content could not be verified against the posting policy"

var (
	fieldPrefix  = regexp.MustCompile(`(?i)^\s*\[(title|description|image)\]\s*`)
	legacyFlag   = regexp.MustCompile(`(?i)"?\b(is_?valid|valid)"?\s*[:=]\s*"?(true|false)\b`)
	legacyReview = regexp.MustCompile(`(?i)"?\b(needs_?review|review)"?\s*[:=]\s*"?true\b`)
	legacyReason = regexp.MustCompile(`(?im)"?\breason"?\s*[:=]\s*"?([^"\n]*)"?`)
)

type answer struct {
	Status  string `json:"status"`
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	IsValid *bool  `json:"isValid"`
}

// ParseVerdict turns the classifier answer into a Verdict. The second
// return is false when the answer could not be read, in which case the
// verdict is invalid with GenericReason.
func ParseVerdict(raw string) (domain.Verdict, bool) {
	a, ok := decodeAnswer(raw)
	if !ok {
		a, ok = decodeLegacy(raw)
	}
	if !ok {
		return rejected(), false
	}

	status := domain.ModerationStatus(strings.ToLower(strings.TrimSpace(a.Status)))
	if !status.IsValid() {
		return rejected(), false
	}
	if status == domain.ModerationValid {
		return domain.Verdict{Status: status}, true
	}

	return domain.Verdict{Status: status, Flag: flagFrom(a.Field, a.Reason)}, true
}

func decodeAnswer(raw string) (answer, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return answer{}, false
	}

	var a answer
	if err := json.Unmarshal([]byte(raw[start:end+1]), &a); err != nil {
		return answer{}, false
	}
	if a.Status == "" && a.IsValid != nil {
		a.Status = string(statusFromFlag(*a.IsValid))
	}
	return a, a.Status != ""
}

// decodeLegacy reads the older "valid: false / reason: [Title] ..." answers.
func decodeLegacy(raw string) (answer, bool) {
	var a answer
	if m := legacyReason.FindStringSubmatch(raw); m != nil {
		a.Reason = strings.TrimSpace(m[1])
	}
	if legacyReview.MatchString(raw) {
		a.Status = string(domain.ModerationReview)
		return a, true
	}
	m := legacyFlag.FindStringSubmatch(raw)
	if m == nil {
		return answer{}, false
	}
	a.Status = string(statusFromFlag(strings.EqualFold(m[2], "true")))
	return a, true
}

func statusFromFlag(valid bool) domain.ModerationStatus {
	if valid {
		return domain.ModerationValid
	}
	return domain.ModerationInvalid
}

func flagFrom(field, reason string) *domain.Flag {
	f := domain.ModerationField(strings.ToLower(strings.TrimSpace(field)))

	if loc := fieldPrefix.FindStringSubmatchIndex(reason); loc != nil {
		if !f.IsValid() {
			f = domain.ModerationField(strings.ToLower(reason[loc[2]:loc[3]]))
		}
		reason = reason[loc[1]:]
	}
	if !f.IsValid() {
		f = domain.FieldDescription
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = GenericReason
	}
	return &domain.Flag{Field: f, Message: reason}
}

func rejected() domain.Verdict {
	return domain.Verdict{
		Status: domain.ModerationInvalid,
		Flag:   &domain.Flag{Field: domain.FieldDescription, Message: GenericReason},
	}
}
