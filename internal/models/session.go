package models

import "time"

// ResponseRecord holds what the respondent has entered for one catalogue item.
// Selection is empty until a value has been chosen. Notes are free text and are
// never cleared by selection changes.
type ResponseRecord struct {
	Selection Selection `json:"response,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// Session is the unit of persistence: subject metadata plus all responses keyed by
// catalogue item key ("categoryID-index"). The JSON field names match the blob
// format of the original assessment app so saved sessions stay loadable.
type Session struct {
	Name           string                    `json:"name"`
	DateOfBirth    string                    `json:"dob"`
	AssessmentDate string                    `json:"assessmentDate"`
	CompletedBy    string                    `json:"completedBy"`
	AdditionalInfo string                    `json:"additionalInfo"`
	Responses      map[string]ResponseRecord `json:"responses"`
}

// NewSession returns an empty session with the assessment date defaulted to now's date.
func NewSession(now time.Time) *Session {
	return &Session{
		AssessmentDate: now.Format(time.DateOnly),
		Responses:      make(map[string]ResponseRecord),
	}
}

func (s *Session) record(itemKey string) ResponseRecord {
	if s.Responses == nil {
		s.Responses = make(map[string]ResponseRecord)
	}
	return s.Responses[itemKey]
}

// SetSelection sets the selection for an item, creating the record if needed.
// Selecting the currently active value clears the selection back to unanswered.
// Notes are left untouched.
func (s *Session) SetSelection(itemKey string, value Selection) {
	record := s.record(itemKey)
	if record.Selection == value {
		record.Selection = ""
	} else {
		record.Selection = value
	}
	s.Responses[itemKey] = record
}

// SetNotes replaces the notes for an item verbatim, creating the record if needed.
// The selection is left untouched.
func (s *Session) SetNotes(itemKey string, text string) {
	record := s.record(itemKey)
	record.Notes = text
	s.Responses[itemKey] = record
}

// AppendNotes appends a transcript fragment to an item's notes, separated from
// existing notes by a single space. Fragments are final when delivered, so each
// one is appended exactly once.
func (s *Session) AppendNotes(itemKey string, fragment string) {
	record := s.record(itemKey)
	if record.Notes == "" {
		record.Notes = fragment
	} else {
		record.Notes += " " + fragment
	}
	s.Responses[itemKey] = record
}

// IsAnswered reports whether the item has a selection.
func (s *Session) IsAnswered(itemKey string) bool {
	return s.Responses[itemKey].Selection != ""
}

// Normalize clears selections that are not one of the four valid values, so a
// tampered or partially corrupt blob degrades to unset selections instead of
// polluting tallies. Notes are kept as-is.
func (s *Session) Normalize() {
	if s.Responses == nil {
		s.Responses = make(map[string]ResponseRecord)
		return
	}
	for key, record := range s.Responses {
		if record.Selection != "" && !record.Selection.Valid() {
			record.Selection = ""
			s.Responses[key] = record
		}
	}
}

// AnsweredCount returns the number of items with a selection.
func (s *Session) AnsweredCount() int {
	count := 0
	for _, record := range s.Responses {
		if record.Selection != "" {
			count++
		}
	}
	return count
}
