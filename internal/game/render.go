package game

import (
	"fmt"

	"github.com/arcadehub/tui-snake/internal/core"
)

// Draw renders the snapshot into the screen buffer. Drawing works from
// the read-only snapshot only, so the render sink never touches live
// engine state.
func (s Snapshot) Draw(dst *core.Screen) {
	dst.Clear()

	drawHUD(dst, s)

	// Board area: grid plus a one-cell border, centered below the HUD.
	const hudHeight = 2
	boardW := s.GridSize + 2
	boardH := s.GridSize + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	offX := (dst.Width() - boardW) / 2
	offY := hudHeight

	dst.DrawBox(offX, offY, boardW, boardH, core.ColorGray)

	// Food
	dst.SetCell(offX+1+s.Food.X, offY+1+s.Food.Y, '*', core.ColorBrightRed)

	// Snake, head first
	for i, seg := range s.Snake {
		r := 'o'
		c := core.ColorGreen
		if i == 0 {
			r = 'O'
			c = core.ColorBrightGreen
		}
		dst.SetCell(offX+1+seg.X, offY+1+seg.Y, r, c)
	}

	switch {
	case s.Phase == PhaseGameOver && s.Won:
		drawOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", s.Score))
	case s.Phase == PhaseGameOver:
		drawOverlay(dst, "Game Over", "Press R to restart")
	case s.Phase == PhasePaused && s.Score == 0 && len(s.Snake) == initialSnakeLen:
		drawOverlay(dst, "Ready", "Press Space to start")
	case s.Phase == PhasePaused:
		drawOverlay(dst, "Paused", "Press Space to continue")
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d  [%s]  %dms",
		s.Score, s.Best, s.Difficulty, s.TickMs)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-len(line1))/2, boxY+1, line1, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len(line2))/2, boxY+3, line2, core.ColorWhite)
}
