package typeset

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/typeset/color"
	"github.com/foliotype/resumate/internal/typeset/markup"
	"github.com/foliotype/resumate/internal/typeset/templates"
)

// RenderPDF lays out doc's content plan onto a single-flow PDF page,
// standing in for the engine's own PDF serialiser. Page content is a
// deterministic function of the document and template catalogue; the
// serialiser's embedded creation timestamp is not pinned, so two renders
// can differ in that field.
func (e *Engine) RenderPDF(doc entities.Document) ([]byte, error) {
	if _, err := e.GenerateSource(doc); err != nil {
		return nil, err
	}

	slug := doc.Metadata.Template
	if !templates.IsKnown(slug) {
		slug = templates.Default
	}
	theme := doc.Metadata.Theme
	width, height := templates.PageSize(doc.Metadata.Page.Format)
	margin := doc.Metadata.Page.Margin
	fontSize := doc.Metadata.Typography.Font.Size

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	primary := mustRGB(theme.Primary)
	text := mustRGB(theme.Text)

	plan := BuildPlan(doc)
	for _, block := range plan.Blocks {
		switch block.Kind {
		case BlockTitle:
			pdf.SetTextColor(text.R, text.G, text.B)
			pdf.SetFont("Arial", "B", fontSize*1.8)
			pdf.MultiCell(0, fontSize*2, block.Text, "", "L", false)
		case BlockSubtitle:
			pdf.SetTextColor(primary.R, primary.G, primary.B)
			pdf.SetFont("Arial", "", fontSize*0.9)
			pdf.MultiCell(0, fontSize*1.3, block.Text, "", "L", false)
		case BlockHeading:
			pdf.Ln(fontSize * 0.4)
			pdf.SetTextColor(primary.R, primary.G, primary.B)
			pdf.SetFont("Arial", "B", fontSize*1.1)
			pdf.MultiCell(0, fontSize*1.5, block.Text, "", "L", false)
		case BlockBody:
			pdf.SetTextColor(text.R, text.G, text.B)
			for _, line := range block.Lines {
				writeLine(pdf, line, fontSize, slug)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &entities.EngineError{Message: "pdf serialisation: " + err.Error()}
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *gofpdf.Fpdf, line markup.Line, fontSize float64, slug string) {
	prefix := ""
	if line.Bullet {
		prefix = "• "
	}
	if prefix != "" {
		pdf.SetFont("Arial", "", fontSize)
		pdf.Write(fontSize*1.3, prefix)
	}
	for _, run := range line.Runs {
		style := ""
		if run.Bold {
			style += "B"
		}
		if run.Italic {
			style += "I"
		}
		if run.Underline || run.LinkHref != "" {
			style += "U"
		}
		pdf.SetFont("Arial", style, fontSize)
		if run.LinkHref != "" {
			pdf.WriteLinkString(fontSize*1.3, run.Text, run.LinkHref)
			continue
		}
		pdf.Write(fontSize*1.3, run.Text)
	}
	pdf.Ln(fontSize * 1.3)
}

func mustRGB(hex string) struct{ R, G, B int } {
	r, g, b, ok := color.HexToRGB(hex)
	if !ok {
		return struct{ R, G, B int }{0, 0, 0}
	}
	return struct{ R, G, B int }{int(r), int(g), int(b)}
}
