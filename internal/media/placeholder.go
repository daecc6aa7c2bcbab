package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	placeholderWidth  = 800
	placeholderHeight = 600
)

// RenderPlaceholder draws a placeholder PNG for an image question: a gray
// canvas with the question title and the wrapped scene description. Used when
// no real image generation backend is available.
func RenderPlaceholder(title, description string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))

	bg := color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	drawBorder(img, color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}, 2)

	ink := color.RGBA{A: 0xFF}
	drawText(img, title, 20, 40, ink)

	y := 80
	for _, line := range wrapText(description, 90) {
		drawText(img, line, 20, y, ink)
		y += 18
		if y > placeholderHeight-20 {
			break
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPlaceholderToStorage renders and saves a placeholder image, returning
// its storage reference.
func RenderPlaceholderToStorage(s *Storage, title, description string) (string, error) {
	data, err := RenderPlaceholder(title, description)
	if err != nil {
		return "", err
	}
	return s.SaveImage(bytes.NewReader(data), "png")
}

func drawBorder(img *image.RGBA, c color.Color, width int) {
	b := img.Bounds()
	for i := 0; i < width; i++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, b.Min.Y+i, c)
			img.Set(x, b.Max.Y-1-i, c)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.Set(b.Min.X+i, y, c)
			img.Set(b.Max.X-1-i, y, c)
		}
	}
}

func drawText(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func wrapText(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
