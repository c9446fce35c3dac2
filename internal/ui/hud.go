//go:build ebiten

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"doomfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD overlays the simulation's tunables and handles the keys that adjust
// them. H toggles it, up/down select a control, left/right nudge its value.
type HUD struct {
	sim      core.Sim
	controls []core.ParameterControl
	setter   core.IntParameterSetter

	visible  bool
	selected int
}

// NewHUD constructs a HUD for the provided simulation. Sims that expose no
// controls still get the FPS line.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update processes HUD input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}

	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		delta = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		delta = -1
	}
	if delta == 0 || h.setter == nil {
		return
	}
	ctrl := h.controls[h.selected]
	current, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	step := int(ctrl.Step)
	if step == 0 {
		step = 1
	}
	h.setter.SetIntParameter(ctrl.Key, current+delta*step)
}

// Draw paints the HUD text in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		ebitenutil.DebugPrint(screen, "h: tune")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %0.0f fps\n", h.sim.Name(), ebiten.ActualFPS())
	for i, ctrl := range h.controls {
		marker := "  "
		if i == h.selected {
			marker = "> "
		}
		value := "--"
		if v, ok := h.currentValue(ctrl.Key); ok {
			value = strconv.Itoa(v)
		}
		fmt.Fprintf(&sb, "%s%s: %s\n", marker, ctrl.Label, value)
	}
	sb.WriteString("arrows: adjust  h: hide")
	ebitenutil.DebugPrint(screen, sb.String())
}

// currentValue looks the control's value up in the sim's parameter snapshot.
func (h *HUD) currentValue(key string) (int, bool) {
	provider, ok := h.sim.(interface {
		Parameters() core.ParameterSnapshot
	})
	if !ok {
		return 0, false
	}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			if param.Key != key {
				continue
			}
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}
