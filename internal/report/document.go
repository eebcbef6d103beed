// Package report turns a session and the catalogue into a linear document model and
// renders it as plain text or a paginated PDF. Building is pure: the same inputs
// always produce a structurally identical document and nothing is mutated.
package report

import (
	"fmt"
	"strings"
)

// BlockKind discriminates the block types a section can contain.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockLabeledValue
	BlockItem
)

// Block is one renderable unit. A block is never split across a page boundary when
// it can be moved whole to the next page, so renderers plan page breaks from the
// block's estimated line count.
type Block struct {
	Kind BlockKind

	// Text is the content for headings and paragraphs.
	Text string

	// Label and Value are set for labeled-value lines.
	Label string
	Value string

	// Item fields, set when Kind is BlockItem. SelectionLabel is empty for
	// unanswered items and the line is omitted entirely.
	Ordinal        int
	Prompt         string
	Examples       string
	SelectionLabel string
	Notes          string
}

// Section is an ordered run of blocks. Category sections start on a fresh page in
// paginated output.
type Section struct {
	Title    string
	Subtitle string
	Category bool
	Blocks   []Block
}

// Document is the fully derived report: an ordered sequence of sections. It is
// regenerated on demand and never persisted.
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
}

// Lines returns the block's content wrapped to the given width, one string per
// rendered line. Renderers use len(Lines) to plan page breaks.
func (b Block) Lines(width int) []string {
	switch b.Kind {
	case BlockHeading:
		return wrap(b.Text, width)
	case BlockParagraph:
		return wrap(b.Text, width)
	case BlockLabeledValue:
		return wrap(fmt.Sprintf("%s: %s", b.Label, b.Value), width)
	case BlockItem:
		lines := wrap(fmt.Sprintf("%d. %s", b.Ordinal, b.Prompt), width)
		lines = append(lines, wrap("Examples: "+b.Examples, width)...)
		if b.SelectionLabel != "" {
			lines = append(lines, wrap("Response: "+b.SelectionLabel, width)...)
		}
		if b.Notes != "" {
			lines = append(lines, wrap("Notes: "+b.Notes, width)...)
		}
		return lines
	}
	return nil
}

// EstimatedLines returns the number of lines the block occupies at the given width.
func (b Block) EstimatedLines(width int) int {
	return len(b.Lines(width))
}

// wrap breaks text into lines of at most width characters on word boundaries.
// Words longer than the width get a line of their own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines   []string
		current = words[0]
	)
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
