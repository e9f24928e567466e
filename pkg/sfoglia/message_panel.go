package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// MessageOption is one selectable choice on a MessagePanel.
type MessageOption struct {
	// Label is the text shown to the user.
	Label string
	// Value is handed to OnSelect when this option is chosen.
	Value interface{}
}

// MessagePanel is a modal panel showing a message with horizontally
// selectable options. It traps all events, pops itself once an option is
// chosen or the user backs out, and registers a zone per option so touch
// and mouse work without any extra wiring.
type MessagePanel struct {
	BasePanel

	message  string
	options  []MessageOption
	selected int
	iconPath string

	// OnSelect is called with the chosen option before the panel pops.
	OnSelect func(index int, value interface{})
	// OnCancel is called when the user backs out before the panel pops.
	OnCancel func()
}

const messageIconSize = 96

// NewMessagePanel creates a message panel. With no options, a single
// localized "OK" option is used.
func NewMessagePanel(message string, options []MessageOption) *MessagePanel {
	if len(options) == 0 {
		options = []MessageOption{{Label: internal.T("message_panel.ok", "OK")}}
	}
	return &MessagePanel{message: message, options: options}
}

// SetIcon sets an SVG icon rendered above the message.
func (p *MessagePanel) SetIcon(path string) {
	p.iconPath = path
}

// Selected returns the index of the currently highlighted option.
func (p *MessagePanel) Selected() int {
	return p.selected
}

func (p *MessagePanel) choose(index int) {
	p.selected = index
	if p.OnSelect != nil {
		p.OnSelect(index, p.options[index].Value)
	}
	if ui := p.UI(); ui != nil {
		ui.Pop(p)
	}
}

func (p *MessagePanel) cancel() {
	if p.OnCancel != nil {
		p.OnCancel()
	}
	if ui := p.UI(); ui != nil {
		ui.Pop(p)
	}
}

func (p *MessagePanel) KeyDown(key int32, mod uint16, cmd command.Command, firstPress bool) bool {
	switch {
	case cmd.Has(command.Left):
		p.selected--
		if p.selected < 0 {
			p.selected = len(p.options) - 1
		}
		return true
	case cmd.Has(command.Right):
		p.selected++
		if p.selected >= len(p.options) {
			p.selected = 0
		}
		return true
	case cmd.Has(command.Confirm):
		if firstPress {
			p.choose(p.selected)
		}
		return true
	case cmd.Has(command.Back) || cmd.Has(command.Menu):
		if firstPress {
			p.cancel()
		}
		return true
	}
	return false
}

func (p *MessagePanel) Draw() {
	window := internal.GetWindow()
	if window == nil {
		return
	}
	renderer := window.Renderer
	theme := internal.GetTheme()

	messageFont := internal.Fonts.MediumFont
	optionFont := internal.Fonts.MediumFont
	if messageFont == nil {
		return
	}

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	// Dim whatever is below the modal.
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(theme.DimColor.R, theme.DimColor.G, theme.DimColor.B, theme.DimColor.A)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: windowWidth, H: windowHeight})

	maxMessageWidth := windowWidth * 3 / 4
	if maxMessageWidth > 800 {
		maxMessageWidth = 800
	}

	messageHeight := internal.MultilineTextHeight(messageFont, p.message, maxMessageWidth)
	optionHeight := int32(optionFont.Height())
	spacing := int32(30)

	iconHeight := int32(0)
	if p.iconPath != "" {
		iconHeight = messageIconSize + spacing
	}

	totalHeight := iconHeight + messageHeight + spacing + optionHeight
	y := (windowHeight - totalHeight) / 2
	centerX := windowWidth / 2

	if p.iconPath != "" {
		if icon := internal.IconTexture(renderer, p.iconPath, messageIconSize); icon != nil {
			renderer.Copy(icon, nil, &sdl.Rect{
				X: centerX - messageIconSize/2,
				Y: y,
				W: messageIconSize,
				H: messageIconSize,
			})
		}
		y += iconHeight
	}

	internal.RenderMultilineText(renderer, messageFont, p.message, maxMessageWidth,
		centerX, y, theme.TextColor, constants.TextAlignCenter)
	y += messageHeight + spacing

	p.drawOptions(renderer, centerX, y)
}

func (p *MessagePanel) drawOptions(renderer *sdl.Renderer, centerX, y int32) {
	theme := internal.GetTheme()
	optionFont := internal.Fonts.MediumFont

	const gap = int32(48)

	totalWidth := int32(0)
	widths := make([]int32, len(p.options))
	for i, opt := range p.options {
		widths[i] = internal.TextWidth(optionFont, opt.Label)
		totalWidth += widths[i]
		if i > 0 {
			totalWidth += gap
		}
	}

	x := centerX - totalWidth/2
	optionHeight := int32(optionFont.Height())

	for i, opt := range p.options {
		color := theme.HintColor
		if i == p.selected {
			color = theme.AccentColor
		}
		internal.RenderText(renderer, optionFont, opt.Label, x, y, color)

		if i == p.selected {
			renderer.SetDrawColor(color.R, color.G, color.B, color.A)
			renderer.FillRect(&sdl.Rect{X: x, Y: y + optionHeight + 4, W: widths[i], H: 3})
		}

		zone := ZoneFromPixels(x-8, y-8, widths[i]+16, optionHeight+16)
		index := i
		zone.OnRelease = func() { p.choose(index) }
		p.AddZone(zone)

		x += widths[i] + gap
	}
}
