// Package analysis derives completion and response-pattern metrics from a session.
// Everything here is a pure function of the current session state and is recomputed
// on demand, never cached.
package analysis

import (
	"math"

	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/models"
)

// Tally counts answered items per selection value.
type Tally struct {
	Avoids  int
	Seeks   int
	Mixed   int
	Neutral int
}

// Total returns the number of answered items covered by the tally.
func (t Tally) Total() int {
	return t.Avoids + t.Seeks + t.Mixed + t.Neutral
}

// Count returns the bucket for the given selection value.
func (t Tally) Count(s models.Selection) int {
	switch s {
	case models.SelectionAvoids:
		return t.Avoids
	case models.SelectionSeeks:
		return t.Seeks
	case models.SelectionMixed:
		return t.Mixed
	case models.SelectionNeutral:
		return t.Neutral
	}
	return 0
}

// Percentage returns round(100 * count / total), or 0 when total is zero.
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}

// Progress returns the completion percentage over the whole catalogue.
func Progress(session *models.Session) int {
	total := catalogue.TotalItems()
	answered := 0
	for _, key := range catalogue.AllKeys() {
		if session.IsAnswered(key) {
			answered++
		}
	}
	return Percentage(answered, total)
}

// ComputeTally scans the given item keys and buckets each answered record by its
// selection. Unanswered items are skipped.
func ComputeTally(session *models.Session, itemKeys []string) Tally {
	var tally Tally
	for _, key := range itemKeys {
		switch session.Responses[key].Selection {
		case models.SelectionAvoids:
			tally.Avoids++
		case models.SelectionSeeks:
			tally.Seeks++
		case models.SelectionMixed:
			tally.Mixed++
		case models.SelectionNeutral:
			tally.Neutral++
		}
	}
	return tally
}

// GlobalTally buckets every answered item in the catalogue.
func GlobalTally(session *models.Session) Tally {
	return ComputeTally(session, catalogue.AllKeys())
}

// CategoryTally buckets the answered items of one category.
func CategoryTally(session *models.Session, category catalogue.Category) Tally {
	return ComputeTally(session, category.Keys())
}

// minAnsweredForComplete is the answered-item count below which the assessment is
// flagged as incomplete for interpretation purposes.
const minAnsweredForComplete = 50

// Observations derives qualitative summary statements from the global tally using
// fixed threshold rules. Every matching rule contributes, in rule order; when none
// match, a single balanced-responses statement is returned. The thresholds are
// heuristic domain summaries, not tunable parameters.
func Observations(tally Tally, totalAnswered int) []string {
	var observations []string
	if tally.Avoids > tally.Seeks*2 {
		observations = append(observations,
			"The responses indicate a high avoidance pattern, suggesting heightened sensory sensitivity in several systems.")
	}
	if tally.Seeks > tally.Avoids*2 {
		observations = append(observations,
			"The responses indicate a strong seeking tendency, suggesting the nervous system benefits from additional sensory input.")
	}
	if tally.Mixed >= tally.Avoids && tally.Mixed >= tally.Seeks {
		observations = append(observations,
			"Mixed responses are prominent, indicating context-dependent sensory processing that varies with state and environment.")
	}
	if totalAnswered < minAnsweredForComplete {
		observations = append(observations,
			"This is an incomplete assessment; observations should be interpreted with caution until more items are answered.")
	}
	if len(observations) == 0 {
		observations = append(observations,
			"The responses are balanced across selection values with no single pattern dominating.")
	}
	return observations
}
