//go:build !ebiten

package ui

import "endscope/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.View) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() bool { return false }

// Seed is a no-op in the headless build.
func (h *HUD) Seed(string, float64) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
