package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/models"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		count int
		total int
		want  int
	}{
		{name: "zero total", count: 0, total: 0, want: 0},
		{name: "all", count: 105, total: 105, want: 100},
		{name: "rounds half up", count: 1, total: 8, want: 13},
		{name: "rounds down", count: 1, total: 3, want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.count, tt.total))
		})
	}
}

func TestProgress(t *testing.T) {
	session := models.NewSession(time.Now())
	assert.Equal(t, 0, Progress(session))

	keys := catalogue.AllKeys()
	session.SetSelection(keys[0], models.SelectionAvoids)
	assert.Equal(t, 1, Progress(session))

	// Responses on unknown keys never count towards progress.
	session.SetSelection("nonexistent-0", models.SelectionSeeks)
	assert.Equal(t, 1, Progress(session))

	// Toggling the answer off takes progress back down.
	session.SetSelection(keys[0], models.SelectionAvoids)
	assert.Equal(t, 0, Progress(session))

	for _, key := range keys {
		session.SetSelection(key, models.SelectionNeutral)
	}
	assert.Equal(t, 100, Progress(session))
}

func TestTallyConservation(t *testing.T) {
	session := models.NewSession(time.Now())
	keys := catalogue.AllKeys()
	selections := models.Selections()
	for i, key := range keys[:20] {
		session.SetSelection(key, selections[i%len(selections)])
	}

	global := GlobalTally(session)
	assert.Equal(t, 20, global.Total())
	assert.Equal(t, session.AnsweredCount(), global.Total())

	// Category tallies partition the global tally.
	var sum Tally
	for _, category := range catalogue.Categories() {
		tally := CategoryTally(session, category)
		sum.Avoids += tally.Avoids
		sum.Seeks += tally.Seeks
		sum.Mixed += tally.Mixed
		sum.Neutral += tally.Neutral
	}
	assert.Equal(t, global, sum)
}

func TestTallyCount(t *testing.T) {
	tally := Tally{Avoids: 1, Seeks: 2, Mixed: 3, Neutral: 4}
	assert.Equal(t, 1, tally.Count(models.SelectionAvoids))
	assert.Equal(t, 2, tally.Count(models.SelectionSeeks))
	assert.Equal(t, 3, tally.Count(models.SelectionMixed))
	assert.Equal(t, 4, tally.Count(models.SelectionNeutral))
	assert.Equal(t, 10, tally.Total())
	assert.Equal(t, 0, tally.Count("sometimes"))
}

func TestObservations(t *testing.T) {
	tests := []struct {
		name          string
		tally         Tally
		totalAnswered int
		wantCount     int
		wantSubstring string
	}{
		{
			name:          "avoidance dominant and incomplete",
			tally:         Tally{Avoids: 10, Seeks: 2},
			totalAnswered: 12,
			wantCount:     2,
			wantSubstring: "avoidance",
		},
		{
			name:          "seeking dominant",
			tally:         Tally{Avoids: 2, Seeks: 60},
			totalAnswered: 62,
			wantCount:     1,
			wantSubstring: "seeking",
		},
		{
			name:          "mixed prominent",
			tally:         Tally{Avoids: 20, Seeks: 20, Mixed: 25},
			totalAnswered: 65,
			wantCount:     1,
			wantSubstring: "context-dependent",
		},
		{
			name:          "balanced fallback",
			tally:         Tally{Avoids: 20, Seeks: 19, Mixed: 10, Neutral: 11},
			totalAnswered: 60,
			wantCount:     1,
			wantSubstring: "balanced",
		},
		{
			name:          "no answers",
			tally:         Tally{},
			totalAnswered: 0,
			wantCount:     2,
			wantSubstring: "incomplete assessment",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observations := Observations(tt.tally, tt.totalAnswered)
			require.Len(t, observations, tt.wantCount)
			found := false
			for _, observation := range observations {
				if strings.Contains(observation, tt.wantSubstring) {
					found = true
				}
			}
			assert.Truef(t, found, "no observation mentions %q in %v", tt.wantSubstring, observations)
		})
	}
}

func TestObservationsRuleOrder(t *testing.T) {
	observations := Observations(Tally{Avoids: 10, Seeks: 2}, 12)

	require.Len(t, observations, 2)
	assert.Contains(t, observations[0], "avoidance")
	assert.Contains(t, observations[1], "incomplete")
}
