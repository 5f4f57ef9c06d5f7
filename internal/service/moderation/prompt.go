package moderation

import (
	"regexp"
	"strings"
)

const maxDescriptionRunes = 4000

const systemPrompt = `You review event posts for a university event board.

Allowed: events organised by or for the campus community, such as talks,
workshops, competitions, club activities, sports, religious gatherings,
volunteering, career programmes, cultural and social events. Paid events are
allowed when the fee is for participation.

Not allowed: selling goods or services, personal advertisements, rentals,
lost and found, political campaigning, spam, scams, hateful, sexual or violent
content, and anything that is not an event.

Use "review" when the post is probably an event but something needs a human
to look at it, for example a misleading title or an unclear poster.

Answer with one JSON object and nothing else:
{"status": "valid" | "review" | "invalid", "field": "title" | "description" | "image", "reason": "<one short sentence>"}
"field" and "reason" may be empty when status is "valid".`

var htmlTag = regexp.MustCompile(`<[^>]*>`)

func buildPrompt(title, description string, hasPoster bool) string {
	var b strings.Builder
	b.WriteString("Title: ")
	b.WriteString(strings.TrimSpace(title))
	b.WriteString("\n\nDescription:\n")
	b.WriteString(truncate(plainText(description), maxDescriptionRunes))
	if hasPoster {
		b.WriteString("\n\nThe attached image is the event poster.")
	} else {
		b.WriteString("\n\nNo poster is attached.")
	}
	return b.String()
}

// plainText drops markup from the rich-text description.
func plainText(s string) string {
	s = htmlTag.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
