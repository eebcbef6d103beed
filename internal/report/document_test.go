package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "empty text still occupies a line",
			text:  "",
			width: 10,
			want:  []string{""},
		},
		{
			name:  "fits on one line",
			text:  "short text",
			width: 20,
			want:  []string{"short text"},
		},
		{
			name:  "breaks on word boundaries",
			text:  "one two three four",
			width: 9,
			want:  []string{"one two", "three", "four"},
		},
		{
			name:  "overlong word gets its own line",
			text:  "a incomprehensibilities b",
			width: 10,
			want:  []string{"a", "incomprehensibilities", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.text, tt.width))
		})
	}
}

func TestBlockLines(t *testing.T) {
	block := Block{
		Kind:           BlockItem,
		Ordinal:        3,
		Prompt:         "Reacts to loud noise",
		Examples:       "covers ears, leaves the room",
		SelectionLabel: "AVOIDS",
		Notes:          "worse when tired",
	}

	lines := block.Lines(80)
	require.Len(t, lines, 4)
	assert.Equal(t, "3. Reacts to loud noise", lines[0])
	assert.Equal(t, "Examples: covers ears, leaves the room", lines[1])
	assert.Equal(t, "Response: AVOIDS", lines[2])
	assert.Equal(t, "Notes: worse when tired", lines[3])

	// Unanswered items without notes only render the prompt and examples.
	block.SelectionLabel = ""
	block.Notes = ""
	require.Len(t, block.Lines(80), 2)

	labeled := Block{Kind: BlockLabeledValue, Label: "Name", Value: "Alex"}
	assert.Equal(t, []string{"Name: Alex"}, labeled.Lines(80))
}
