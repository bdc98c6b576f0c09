//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"raycaster/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Target is what the HUD describes: a named view with a frame size.
type Target interface {
	Name() string
	Size() core.Size
}

// HUD renders the parameter panel to the right of the rendered view.
type HUD struct {
	target     Target
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     []hudControl
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

type hudControl struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided target and panel width.
func NewHUD(target Target, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{target: target, width: width, title: buildTitle(target)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControl{control: ctrl})
		}
		h.layoutControls()
	}
	h.intSetter, _ = target.(core.IntParameterSetter)
	h.floatSetter, _ = target.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the displayed values from the target and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refreshValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX, as tall as the scaled view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.target.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(target Target) string {
	if target == nil || target.Name() == "" {
		return "Controls"
	}
	name := target.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) refreshValues() {
	provider, ok := h.target.(core.ParameterProvider)
	if !ok {
		return
	}
	values := map[string]string{}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			values[param.Key] = param.Value
		}
	}
	for i := range h.controls {
		c := &h.controls[i]
		parsed, err := strconv.ParseFloat(values[c.control.Key], 64)
		c.value, c.hasValue = parsed, err == nil
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pointInRect(px, my, c.minusRect):
			h.adjust(c, -1)
			return
		case pointInRect(px, my, c.plusRect):
			h.adjust(c, 1)
			return
		}
	}
}

// next returns the value one step away in direction, clamped to the control
// bounds, and whether that differs from the current value.
func (h *HUD) next(c *hudControl, direction int) (float64, bool) {
	if !c.hasValue || direction == 0 {
		return 0, false
	}
	step := c.control.Step
	isInt := c.control.Type != core.ParamTypeFloat
	switch {
	case isInt && h.intSetter == nil, !isInt && h.floatSetter == nil:
		return 0, false
	case isInt:
		step = math.Max(1, math.Round(step))
	case step <= 0:
		step = 0.05
	}
	target := c.value + float64(direction)*step
	if c.control.HasMin {
		target = math.Max(target, c.control.Min)
	}
	if c.control.HasMax {
		target = math.Min(target, c.control.Max)
	}
	return target, math.Abs(target-c.value) > 1e-9
}

func (h *HUD) adjust(c *hudControl, direction int) {
	target, ok := h.next(c, direction)
	if !ok {
		return
	}
	var applied bool
	if c.control.Type == core.ParamTypeFloat {
		applied = h.floatSetter.SetFloatParameter(c.control.Key, target)
	} else {
		applied = h.intSetter.SetIntParameter(c.control.Key, int(math.Round(target)))
	}
	if applied {
		c.value = target
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, dimText)
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		labelY := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, labelY, brightText)

		value, valueColor := "--", dimText
		if c.hasValue {
			value, valueColor = formatValue(c.control, c.value), brightText
		}
		valueX := c.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		_, minus := h.next(c, -1)
		_, plus := h.next(c, 1)
		h.drawButton(c.minusRect, "-", minus)
		h.drawButton(c.plusRect, "+", plus)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	bounds := text.BoundString(basicfont.Face7x13, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	switch ctrl.Type {
	case core.ParamTypeBool:
		if value != 0 {
			return "on"
		}
		return "off"
	case core.ParamTypeInt:
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch {
	case ctrl.Step <= 0, ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	case ctrl.Step >= 1:
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	brightText = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimText    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
