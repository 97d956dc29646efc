package typeset

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/foliotype/resumate/internal/core/entities"
	resumecolor "github.com/foliotype/resumate/internal/typeset/color"
	"github.com/foliotype/resumate/internal/typeset/templates"
)

// previewScale is the rasterisation multiplier applied to the page's
// natural point size.
const previewScale = 2.0

// nativeDPI is the point-to-pixel basis (72 points per inch) the page
// dimensions from internal/typeset/templates are expressed against.
const nativeDPI = 72.0

// pointsToPixels maps a length in points onto pixels at dpi, via the color
// package's linear-transform helper rather than a freestanding
// multiplication.
func pointsToPixels(points, dpi float64) int {
	return int(resumecolor.LinearTransform(points, 0, nativeDPI, 0, dpi))
}

// RenderPreview rasterises the requested page of doc's content plan into a
// PNG, at 2x the page's natural size. Only page 0 exists; this port's
// engine never paginates a plan across multiple pages.
func (e *Engine) RenderPreview(doc entities.Document, page int) ([]byte, error) {
	if page != 0 {
		return nil, &entities.NotFoundError{Kind: "page", ID: itoa(page)}
	}
	if _, err := e.GenerateSource(doc); err != nil {
		return nil, err
	}

	width, height := templates.PageSize(doc.Metadata.Page.Format)
	requestedDPI := nativeDPI * previewScale
	w := pointsToPixels(width, requestedDPI)
	h := pointsToPixels(height, requestedDPI)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := mustRGBA(doc.Metadata.Theme.Background, 255)
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	face := pickFace(e.Bundled, doc.Metadata.Typography.Font.Size*previewScale)

	margin := doc.Metadata.Page.Margin * previewScale
	y := margin
	lineHeight := doc.Metadata.Typography.Font.Size * previewScale * 1.5

	primary := mustRGBA(doc.Metadata.Theme.Primary, 255)
	textColor := mustRGBA(doc.Metadata.Theme.Text, 255)

	plan := BuildPlan(doc)
	for _, block := range plan.Blocks {
		ink := color.Color(textColor)
		text := block.Text
		switch block.Kind {
		case BlockSubtitle, BlockHeading:
			ink = primary
		case BlockBody:
			for _, line := range block.Lines {
				for _, run := range line.Runs {
					text += run.Text
				}
				text += " "
			}
		}
		if text == "" {
			continue
		}
		if y > float64(h)-margin {
			break
		}
		drawText(img, face, ink, margin, y, text)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &entities.EngineError{Message: "png encoding: " + err.Error()}
	}
	return buf.Bytes(), nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}

func mustRGBA(hex string, alpha uint8) color.RGBA {
	r, g, b, ok := resumecolor.HexToRGB(hex)
	if !ok {
		return color.RGBA{A: alpha}
	}
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

// pickFace returns the best glyph face available: the first bundled font
// that parses as TrueType, scaled to size, or the stdlib's fixed 7x13
// bitmap face when no usable font data is bundled.
func pickFace(bundled map[string][]byte, size float64) font.Face {
	for _, data := range bundled {
		if f, err := truetype.Parse(data); err == nil {
			return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
		}
	}
	return basicfont.Face7x13
}

// drawText paints s with face starting at (x, y), baseline-aligned the way
// font.Drawer expects.
func drawText(img draw.Image, face font.Face, ink color.Color, x, y float64, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(int(x)), Y: fixed.I(int(y))},
	}
	d.DrawString(s)
}
