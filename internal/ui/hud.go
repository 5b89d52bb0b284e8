//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"endscope/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the view's parameter panel in the bottom-left corner and lets
// the keyboard adjust the exposed controls: [ and ] select a control, - and
// = step its value.
type HUD struct {
	view     core.View
	controls []core.ParameterControl
	selected int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	values map[string]float64
}

// NewHUD constructs a HUD bound to the provided view's controls.
func NewHUD(view core.View) *HUD {
	h := &HUD{view: view, values: map[string]float64{}}
	if provider, ok := view.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	for _, ctrl := range h.controls {
		h.values[ctrl.Key] = ctrl.Min
	}
	// Prime tracked values from the view's current readout so the first
	// adjustment steps from where the view actually is.
	if provider, ok := view.(core.ParametersProvider); ok {
		for _, p := range provider.Parameters().Params {
			if _, tracked := h.values[p.Key]; tracked {
				if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
					h.values[p.Key] = v
				}
			}
		}
	}
	if setter, ok := view.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := view.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update processes control selection and adjustment keys. It reports whether
// a control changed, so the caller can trigger a re-render.
func (h *HUD) Update() bool {
	if len(h.controls) == 0 {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		h.selected = (h.selected + 1) % len(h.controls)
	}

	delta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		delta = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		delta = 1
	}
	if delta == 0 {
		return false
	}
	return h.adjust(h.controls[h.selected], delta)
}

func (h *HUD) adjust(ctrl core.ParameterControl, direction float64) bool {
	value := h.values[ctrl.Key] + direction*ctrl.Step
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}
	h.values[ctrl.Key] = value

	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			return h.intSetter.SetIntParameter(ctrl.Key, int(value))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			return h.floatSetter.SetFloatParameter(ctrl.Key, value)
		}
	}
	return false
}

// Seed primes a control's tracked value, e.g. from the view's defaults.
func (h *HUD) Seed(key string, value float64) {
	if _, ok := h.values[key]; ok {
		h.values[key] = value
	}
}

// Draw paints the parameter readout above the bottom edge of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	provider, ok := h.view.(core.ParametersProvider)
	if !ok {
		return
	}
	snapshot := provider.Parameters()
	if len(snapshot.Params) == 0 {
		return
	}

	_, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	y := sh - 8 - 14*(len(snapshot.Params)-1)
	for i, p := range snapshot.Params {
		line := fmt.Sprintf("%s: %s", p.Label, p.Value)
		col := color.Color(color.White)
		if i == h.selected && i < len(h.controls) {
			line = "> " + line
			col = color.RGBA{R: 235, G: 220, B: 130, A: 255}
		}
		text.Draw(screen, line, basicfont.Face7x13, 6, y, col)
		y += 14
	}
}
