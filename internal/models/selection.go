package models

import "strings"

// Selection is one of the four qualitative response values a respondent can give an item.
type Selection string

const (
	SelectionAvoids  Selection = "avoids"
	SelectionSeeks   Selection = "seeks"
	SelectionMixed   Selection = "mixed"
	SelectionNeutral Selection = "neutral"
)

// Selections lists the valid selection values in presentation order.
func Selections() []Selection {
	return []Selection{SelectionAvoids, SelectionSeeks, SelectionMixed, SelectionNeutral}
}

// Valid reports whether s is one of the four selection values.
func (s Selection) Valid() bool {
	switch s {
	case SelectionAvoids, SelectionSeeks, SelectionMixed, SelectionNeutral:
		return true
	}
	return false
}

// Label returns the uppercase display form used in reports and the response guide.
func (s Selection) Label() string {
	return strings.ToUpper(string(s))
}

// ParseSelection parses a selection value case-insensitively. It returns false for
// anything outside the four valid values.
func ParseSelection(raw string) (Selection, bool) {
	s := Selection(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// SelectionGuide describes a selection value for the response guide shown alongside the form.
type SelectionGuide struct {
	Selection   Selection
	Description string
	Example     string
}

// ResponseGuide returns the guide entries for all selection values.
func ResponseGuide() []SelectionGuide {
	return []SelectionGuide{
		{
			Selection:   SelectionAvoids,
			Description: "Generally moves away from or shows discomfort",
			Example:     "e.g., Removes tags immediately, declines hugs, covers ears",
		},
		{
			Selection:   SelectionSeeks,
			Description: "Actively pursues or shows preference",
			Example:     "e.g., Requests massage, turns up music, seeks spicy food",
		},
		{
			Selection:   SelectionMixed,
			Description: "Response varies by context or state",
			Example:     "e.g., Enjoys touch when calm, avoids when stressed",
		},
		{
			Selection:   SelectionNeutral,
			Description: "No strong preference either way",
			Example:     "e.g., Can take it or leave it, doesn't notice much",
		},
	}
}
