package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/windgap/sensoryprofile/internal/errors"
)

// pdfLayout approximates an A4 page in wrapped text lines for page planning.
// Exact glyph metrics belong to the renderer; the planner only needs the block
// line counts to come out close enough that whole blocks land on one page.
var pdfLayout = Layout{
	LinesPerPage: 48,
	LineWidth:    95,
}

const (
	pdfLineHeight = 5.5
	pdfFontFamily = "Helvetica"
)

// RenderPDF renders the document as a paginated A4 PDF. Page breaks follow the
// planner: category sections start on a fresh page and blocks are moved whole to
// the next page when they would not fit.
func RenderPDF(doc *Document, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(15, 15, 15)
	// The planner owns page breaks; the automatic break is a backstop for blocks
	// taller than a full page.
	pdf.SetAutoPageBreak(true, 15)
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range Paginate(doc, pdfLayout) {
		pdf.AddPage()
		for i, block := range page.Blocks {
			if i > 0 {
				pdf.Ln(pdfLineHeight / 2)
			}
			renderPDFBlock(pdf, translate, block)
		}
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	return nil
}

func renderPDFBlock(pdf *gofpdf.Fpdf, translate func(string) string, block Block) {
	switch block.Kind {
	case BlockHeading:
		pdf.SetFont(pdfFontFamily, "B", 14)
		pdf.MultiCell(0, 7, translate(block.Text), "", "L", false)
	case BlockParagraph:
		pdf.SetFont(pdfFontFamily, "I", 10)
		pdf.MultiCell(0, pdfLineHeight, translate(block.Text), "", "L", false)
	case BlockLabeledValue:
		pdf.SetFont(pdfFontFamily, "B", 10)
		pdf.MultiCell(0, pdfLineHeight, translate(block.Label+": "+block.Value), "", "L", false)
	case BlockItem:
		pdf.SetFont(pdfFontFamily, "B", 10)
		pdf.MultiCell(0, pdfLineHeight, translate(fmt.Sprintf("%d. %s", block.Ordinal, block.Prompt)), "", "L", false)
		pdf.SetFont(pdfFontFamily, "I", 9)
		pdf.MultiCell(0, pdfLineHeight, translate("Examples: "+block.Examples), "", "L", false)
		pdf.SetFont(pdfFontFamily, "", 10)
		if block.SelectionLabel != "" {
			pdf.MultiCell(0, pdfLineHeight, translate("Response: "+block.SelectionLabel), "", "L", false)
		}
		if block.Notes != "" {
			pdf.MultiCell(0, pdfLineHeight, translate("Notes: "+block.Notes), "", "L", false)
		}
	}
}
