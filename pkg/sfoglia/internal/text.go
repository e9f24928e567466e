package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// TextWidth measures the rendered width of text, or 0 on failure.
func TextWidth(font *ttf.Font, text string) int32 {
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// RenderText draws a single line of text with its top-left corner at (x, y).
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
	if font == nil || text == "" {
		return
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &rect)
}

// wrapText splits text into lines that fit within maxWidth, breaking on
// word boundaries. Explicit newlines are preserved.
func wrapText(font *ttf.Font, text string, maxWidth int32) []string {
	var out []string

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			out = append(out, "")
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			test := current
			if test != "" {
				test += " "
			}
			test += word

			if TextWidth(font, test) > maxWidth && current != "" {
				out = append(out, current)
				current = word
			} else {
				current = test
			}
		}
		if current != "" {
			out = append(out, current)
		}
	}

	return out
}

// MultilineTextHeight returns the height RenderMultilineText will occupy.
func MultilineTextHeight(font *ttf.Font, text string, maxWidth int32) int32 {
	if font == nil || text == "" {
		return 0
	}
	lines := int32(len(wrapText(font, text, maxWidth)))
	lineHeight := int32(font.Height())
	spacing := lineHeight / 5
	return lines*lineHeight + (lines-1)*spacing
}

// RenderMultilineText draws word-wrapped text. The anchor x is the left
// edge, center, or right edge of each line depending on align. y is the
// top of the first line.
func RenderMultilineText(renderer *sdl.Renderer, font *ttf.Font, text string, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) {
	if font == nil || text == "" {
		return
	}

	lineHeight := int32(font.Height())
	spacing := lineHeight / 5

	for i, line := range wrapText(font, text, maxWidth) {
		lineX := x
		switch align {
		case constants.TextAlignCenter:
			lineX = x - TextWidth(font, line)/2
		case constants.TextAlignRight:
			lineX = x - TextWidth(font, line)
		}
		RenderText(renderer, font, line, lineX, y+int32(i)*(lineHeight+spacing), color)
	}
}
