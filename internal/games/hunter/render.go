package hunter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/roadhunter/internal/core"
)

// Minimum screen size for a playable view
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Visible slice of the road, top of the screen to bottom
const (
	viewFarZ  = -120.0
	viewNearZ = 15.0
	hudRows   = 1
)

// Visual characters for rendering
const (
	RoadEdgeChar   = '│'
	LaneDashChar   = '╎'
	GroundChar     = '·'
	PlayerShotChar = '|'
	EnemyShotChar  = '!'
	HealthFull     = '█'
	HealthEmpty    = '░'
)

// Sprites are drawn centered on their column.
const (
	playerSprite = "<A>"
	enemySprite  = "[V]"
)

// view maps world coordinates onto a screen below the HUD.
type view struct {
	w, h   int
	halfW  float64 // World half-width covered horizontally
	fieldH int     // Rows available for the road
}

func (g *Game) newView(dst *core.Screen) view {
	return view{
		w:      dst.Width(),
		h:      dst.Height(),
		halfW:  g.cfg.Road.Edge() + g.cfg.Buildings.SideOffset + g.cfg.Buildings.MaxSize/2 + 1,
		fieldH: dst.Height() - hudRows,
	}
}

// col converts world x to a screen column.
func (v view) col(x float64) int {
	return int(math.Floor((x + v.halfW) / (2 * v.halfW) * float64(v.w)))
}

// row converts world z to a screen row, or -1 if z is outside the visible slice.
func (v view) row(z float64) int {
	if z < viewFarZ || z >= viewNearZ {
		return -1
	}
	return hudRows + int(math.Floor((z-viewFarZ)/(viewNearZ-viewFarZ)*float64(v.fieldH)))
}

// zAt returns the world z at the center of a screen row.
func (v view) zAt(row int) float64 {
	return viewFarZ + (float64(row-hudRows)+0.5)/float64(v.fieldH)*(viewNearZ-viewFarZ)
}

// colsPerUnit is the horizontal scale.
func (v view) colsPerUnit() float64 {
	return float64(v.w) / (2 * v.halfW)
}

// rowsPerUnit is the vertical scale.
func (v view) rowsPerUnit() float64 {
	return float64(v.fieldH) / (viewNearZ - viewFarZ)
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := g.newView(dst)

	g.renderRoad(dst, v)
	g.renderBuildings(dst, v)
	g.renderPowerUps(dst, v)
	g.renderEnemies(dst, v)
	g.renderProjectiles(dst, v)
	g.renderPlayer(dst, v)
	g.renderExplosions(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderRoad draws the ground, road edges and a center line that scrolls with the segments.
func (g *Game) renderRoad(dst *core.Screen, v view) {
	left := v.col(-g.cfg.Road.Width / 2)
	right := v.col(g.cfg.Road.Width / 2)
	center := v.col(0)

	phase := 0.0
	if len(g.scenery.Segments) > 0 {
		phase = g.scenery.Segments[0].Z
	}

	for y := hudRows; y < v.h; y++ {
		for x := 0; x < v.w; x++ {
			if (x+y)%4 == 0 && (x < left || x > right) {
				dst.SetColored(x, y, GroundChar, core.ColorGreen)
			}
		}
		dst.SetColored(left, y, RoadEdgeChar, core.ColorWhite)
		dst.SetColored(right, y, RoadEdgeChar, core.ColorWhite)

		stripe := int(math.Floor((v.zAt(y) - phase) / 5))
		if stripe%2 == 0 {
			dst.SetColored(center, y, LaneDashChar, core.ColorYellow)
		}
	}
}

func (g *Game) renderBuildings(dst *core.Screen, v view) {
	for _, b := range g.scenery.Buildings {
		glyph, color := '▒', core.ColorGray
		if b.Height >= (g.cfg.Buildings.MinHeight+g.cfg.Buildings.MaxHeight)/2 {
			glyph, color = '▓', core.ColorBlue
		}

		w := max(1, int(math.Round(b.Width*v.colsPerUnit())))
		h := max(1, int(math.Round(b.Depth*v.rowsPerUnit())))
		x0 := v.col(b.X) - w/2
		for dz := 0; dz < h; dz++ {
			z := b.Z - b.Depth/2 + (float64(dz)+0.5)/v.rowsPerUnit()
			y := v.row(z)
			if y < 0 {
				continue
			}
			for dx := 0; dx < w; dx++ {
				dst.SetColored(x0+dx, y, glyph, color)
			}
		}
	}
}

func (g *Game) renderPowerUps(dst *core.Screen, v view) {
	for _, p := range g.powerups.PowerUps {
		y := v.row(p.Pos.Z)
		if y < 0 {
			continue
		}
		glyph := p.Type.Glyph()
		if p.Scale < 1 {
			glyph = '◆'
		}
		dst.SetColored(v.col(p.Pos.X), y, glyph, p.Type.Color())
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v view) {
	for _, e := range g.enemies.Enemies {
		y := v.row(e.Pos.Z)
		if y < 0 {
			continue
		}
		dst.DrawTextColored(v.col(e.Pos.X)-1, y, enemySprite, core.ColorBrightRed)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, v view) {
	for _, p := range g.projectiles {
		y := v.row(p.Pos.Z)
		if y < 0 {
			continue
		}
		if p.Owner == OwnerEnemy {
			dst.SetColored(v.col(p.Pos.X), y, EnemyShotChar, core.ColorBrightMagenta)
		} else {
			dst.SetColored(v.col(p.Pos.X), y, PlayerShotChar, core.ColorBrightYellow)
		}
	}
}

// renderPlayer draws the car, with a shadow below it while airborne.
func (g *Game) renderPlayer(dst *core.Screen, v view) {
	y := v.row(g.player.Pos.Z)
	if y < 0 {
		return
	}
	x := v.col(g.player.Pos.X)
	color := core.ColorBrightGreen
	if g.player.Pos.Y > g.cfg.Player.MinHeight {
		color = core.ColorBrightCyan
		if y+1 < v.h {
			dst.SetColored(x, y+1, '_', core.ColorGray)
		}
	}
	dst.DrawTextColored(x-1, y, playerSprite, color)
}

func (g *Game) renderExplosions(dst *core.Screen, v view) {
	for _, e := range g.explosions {
		y := v.row(e.Pos.Z)
		if y < 0 {
			continue
		}
		x := v.col(e.Pos.X)
		p := e.Progress()
		switch {
		case p < 0.3:
			dst.SetColored(x, y, '*', core.ColorBrightYellow)
		case p < 0.7:
			dst.DrawTextColored(x-1, y, "*✶*", core.ColorOrange)
		default:
			dst.DrawTextColored(x-2, y, "·   ·", core.ColorRed)
		}
	}
}

// renderHUD draws score, health, altitude and the active power-up on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.Score()))

	maxHP := max(g.cfg.Player.Health, 1)
	const barLen = 10
	filled := core.Clamp(g.player.Health*barLen/maxHP, 0, barLen)
	bar := strings.Repeat(string(HealthFull), filled) + strings.Repeat(string(HealthEmpty), barLen-filled)
	hp := fmt.Sprintf("HP %s %d", bar, g.player.Health)
	hpColor := core.ColorGreen
	if g.player.Health*4 <= maxHP {
		hpColor = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()/2-len([]rune(hp))/2, 0, hp, hpColor)

	right := fmt.Sprintf("Alt %.1f", g.player.Pos.Y)
	if g.player.PowerUp != PowerUpNone {
		secs := (g.player.PowerUpUntil - g.tickCount + g.tickRate() - 1) / g.tickRate()
		right = fmt.Sprintf("%s %ds  %s", g.player.PowerUp.Label(), max(secs, 0), right)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// renderOverlay draws start, pause and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	centerY := dst.Height() / 2

	switch g.state {
	case StateReady:
		dst.DrawBoxColored(core.NewRect(dst.Width()/2-17, centerY-4, 34, 9), core.ColorCyan)
		dst.DrawTextCentered(centerY-3, g.Title())
		dst.DrawTextCentered(centerY-1, "SPACE or ENTER to start")
		dst.DrawTextCentered(centerY, "←/→ steer  ↑/↓ speed")
		dst.DrawTextCentered(centerY+1, "W/S altitude  SPACE fire")
		dst.DrawTextCentered(centerY+3, "P pause  Q quit")

	case StatePaused:
		dst.DrawTextCentered(centerY, "PAUSED")
		dst.DrawTextCentered(centerY+1, "Press P to resume")

	case StateGameOver:
		dst.DrawBoxColored(core.NewRect(dst.Width()/2-14, centerY-3, 28, 7), core.ColorRed)
		dst.DrawTextCentered(centerY-2, "GAME OVER")
		dst.DrawTextCentered(centerY, fmt.Sprintf("Final Score: %d", g.Score()))
		dst.DrawTextCentered(centerY+2, "R restart  Q quit")
	}
}
