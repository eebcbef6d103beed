package report

// Layout carries the metrics a renderer needs to plan page breaks: how many
// wrapped lines fit on a page and how many characters fit on a line.
type Layout struct {
	LinesPerPage int
	LineWidth    int
}

// Page is one planned page of blocks.
type Page struct {
	Blocks []Block
}

// Paginate plans page breaks for the document. Every category section starts on a
// fresh page. Within a section a block moves whole to the next page when it does
// not fit the remaining space; a block taller than a full page starts a fresh page
// and is allowed to overflow, since it cannot be moved whole anywhere.
func Paginate(doc *Document, layout Layout) []Page {
	var (
		pages   []Page
		current Page
		used    int
	)

	flush := func() {
		if len(current.Blocks) > 0 {
			pages = append(pages, current)
			current = Page{}
			used = 0
		}
	}

	// A blank separator line is planned between blocks on the same page.
	for _, section := range doc.Sections {
		if section.Category {
			flush()
		}
		for _, block := range section.Blocks {
			lines := block.EstimatedLines(layout.LineWidth)
			needed := lines
			if len(current.Blocks) > 0 {
				needed++
			}
			if used+needed > layout.LinesPerPage && len(current.Blocks) > 0 {
				flush()
				needed = lines
			}
			current.Blocks = append(current.Blocks, block)
			used += needed
		}
	}
	flush()

	return pages
}
