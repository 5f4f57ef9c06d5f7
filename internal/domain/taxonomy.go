package domain

import "strings"

// CategoryGroup is a top-level category and the subset tags events carry.
type CategoryGroup struct {
	Name  string
	Terms []string
}

// Taxonomy is the fixed two-level category set. Events are tagged with terms.
var Taxonomy = []CategoryGroup{
	{Name: "academic", Terms: []string{
		"workshop", "seminar", "talk", "conference", "lecture", "study group",
		"research", "competition", "quiz", "exhibition",
	}},
	{Name: "sports", Terms: []string{
		"football", "futsal", "badminton", "basketball", "volleyball", "running",
		"e-sports", "martial arts", "swimming", "hiking",
	}},
	{Name: "arts & culture", Terms: []string{
		"music", "theatre", "dance", "photography", "film", "poetry",
		"calligraphy", "cultural night", "art", "festival",
	}},
	{Name: "religious", Terms: []string{
		"tazkirah", "halaqah", "quran", "ramadan", "charity", "talk series",
		"iftar", "religious class",
	}},
	{Name: "career", Terms: []string{
		"career fair", "internship", "networking", "resume", "interview",
		"entrepreneurship", "leadership", "recruitment",
	}},
	{Name: "technology", Terms: []string{
		"hackathon", "coding", "ai", "robotics", "cybersecurity", "data science",
		"web development", "startup",
	}},
	{Name: "volunteering", Terms: []string{
		"community service", "environment", "blood donation", "fundraising",
		"outreach", "mentoring",
	}},
	{Name: "social", Terms: []string{
		"club fair", "gathering", "food", "bazaar", "games", "orientation",
		"movie night", "trip",
	}},
	{Name: "health & wellness", Terms: []string{
		"mental health", "fitness", "nutrition", "first aid", "yoga", "health screening",
	}},
}

// TaxonomyTerms returns every subset term in taxonomy order.
func TaxonomyTerms() []string {
	var terms []string
	for _, g := range Taxonomy {
		terms = append(terms, g.Terms...)
	}
	return terms
}

// ExpandCategory maps a top-level category name to its terms. Any other
// value is returned as a single normalized term.
func ExpandCategory(name string) []string {
	name = NormalizeText(name)
	if name == "" {
		return nil
	}
	for _, g := range Taxonomy {
		if g.Name == name {
			out := make([]string, len(g.Terms))
			copy(out, g.Terms)
			return out
		}
	}
	return []string{name}
}

// ExpandCategories expands and de-duplicates a list of category filters.
func ExpandCategories(names []string) []string {
	var out []string
	for _, n := range names {
		out = append(out, ExpandCategory(n)...)
	}
	return NormalizeCategories(out)
}

// JoinCategories renders categories as one phrase for embedding.
func JoinCategories(categories []string) string {
	return strings.Join(categories, ", ")
}
