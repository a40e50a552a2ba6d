package mathbird

import (
	"fmt"

	"github.com/vovakirdan/mathbird/internal/core"
)

// Visual characters for rendering
const (
	BirdChar     = '@'
	BirdBodyChar = '●'
	WallChar     = '█'
	GroundChar   = '═'
	ZoneFillChar = '░'
)

// Render draws the current game state to the screen. The simulation runs in
// playfield units; everything here is scaled into terminal cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.cfg.Playfield.Width <= 0 || g.cfg.Playfield.Height <= 0 {
		return
	}
	if dst.Width() < 24 || dst.Height() < 10 {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		return
	}

	sx := float64(dst.Width()) / g.cfg.Playfield.Width
	sy := float64(dst.Height()) / g.cfg.Playfield.Height

	groundTop := int(g.cfg.Playfield.FloorY() * sy)
	if groundTop >= dst.Height() {
		groundTop = dst.Height() - 1
	}
	for y := groundTop; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			dst.SetColored(x, y, GroundChar, core.ColorGreen)
		}
	}

	for _, o := range g.obstacles {
		g.drawObstacle(dst, o, sx, sy, groundTop)
	}

	g.drawBird(dst, sx, sy)
	g.drawHUD(dst)

	switch g.state {
	case StateMenu:
		g.drawCenteredPanel(dst, g.Title(), []string{
			"Fly through the gap, pick the right answer",
			"",
			"SPACE to flap  |  P to pause",
			"",
			"Press SPACE to start",
		})
	case StatePaused:
		g.drawCenteredPanel(dst, "PAUSED", []string{"Press P to resume"})
	case StateGameOver:
		lines := []string{
			fmt.Sprintf("Obstacles passed: %d", g.passScore),
		}
		if g.mode == ModeMath {
			lines = append(lines,
				fmt.Sprintf("Points: %d", g.score.points),
				fmt.Sprintf("Best streak: %d", g.score.bestStreak),
				fmt.Sprintf("Accuracy: %.1f%%", g.score.Accuracy()),
			)
		}
		lines = append(lines, "", "Press SPACE to try again")
		g.drawCenteredPanel(dst, "GAME OVER", lines)
	}
}

// drawObstacle renders walls, and for answer-bearing obstacles the two
// labelled zones. The corridor between the zones stays empty.
func (g *Game) drawObstacle(dst *core.Screen, o *Obstacle, sx, sy float64, groundTop int) {
	x0 := int(o.X * sx)
	x1 := int((o.X + o.Width) * sx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if x1 > dst.Width() {
		x1 = dst.Width()
	}
	if x0 < 0 {
		x0 = 0
	}

	gapTop := int(o.GapTop() * sy)
	gapBottom := int(o.GapBottom() * sy)

	for x := x0; x < x1; x++ {
		for y := 0; y < gapTop && y < groundTop; y++ {
			dst.SetColored(x, y, WallChar, core.ColorGreen)
		}
		for y := gapBottom; y < groundTop; y++ {
			dst.SetColored(x, y, WallChar, core.ColorGreen)
		}
	}

	if o.Answer == nil {
		return
	}

	zoneColor := core.ColorBlue
	if o.Answer.Answered {
		zoneColor = core.ColorGray
	}
	g.drawZone(dst, o.Answer.Upper, sx, sy, x0, x1, zoneColor)
	g.drawZone(dst, o.Answer.Lower, sx, sy, x0, x1, zoneColor)
}

// drawZone fills a zone band and centers its candidate value in it.
func (g *Game) drawZone(dst *core.Screen, z AnswerZone, sx, sy float64, x0, x1 int, c core.Color) {
	y0 := int(z.Bounds.Y * sy)
	y1 := int(z.Bounds.Bottom() * sy)
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, ZoneFillChar, c)
		}
	}

	label := fmt.Sprintf(" %d ", z.Value)
	lx := x0 + (x1-x0-len(label))/2
	ly := y0 + (y1-y0)/2
	dst.DrawTextColored(lx, ly, label, core.ColorBrightWhite)
}

// drawBird renders the bird block with its eye at the leading edge.
func (g *Game) drawBird(dst *core.Screen, sx, sy float64) {
	x0 := int(g.bird.X * sx)
	y0 := int(g.bird.Y * sy)
	w := int(g.bird.W * sx)
	h := int(g.bird.H * sy)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	color := core.ColorYellow
	if !g.bird.Alive {
		color = core.ColorRed
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if dx == w-1 && dy == 0 {
				dst.SetColored(x0+dx, y0+dy, BirdChar, color)
			} else {
				dst.SetColored(x0+dx, y0+dy, BirdBodyChar, color)
			}
		}
	}

	if g.flashTicks > 0 {
		text := fmt.Sprintf("+%d", g.flashDelta)
		flashColor := core.ColorBrightGreen
		if !g.flashCorrect {
			text = fmt.Sprintf("%d", g.flashDelta)
			flashColor = core.ColorBrightRed
		}
		dst.DrawTextColored(x0+w+1, y0, text, flashColor)
	}
}

// drawHUD renders the score line and, in math mode, the question banner.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.passScore))

	if g.mode != ModeMath {
		return
	}

	stats := fmt.Sprintf(" Points: %d  Streak: %d ", g.score.points, g.score.streak)
	dst.DrawText(dst.Width()-len(stats)-2, 0, stats)

	if q := g.sync.Current(); q != nil && g.state != StateMenu {
		dst.DrawTextCenteredColored(1, " "+q.Text+" ", core.ColorBrightCyan)
	}
}

// drawCenteredPanel draws a boxed message with a title and body lines.
func (g *Game) drawCenteredPanel(dst *core.Screen, title string, lines []string) {
	boxW := len(title) + 6
	for _, line := range lines {
		if len(line)+4 > boxW {
			boxW = len(line) + 4
		}
	}
	if boxW > dst.Width() {
		boxW = dst.Width()
	}
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	if boxY < 0 {
		boxY = 0
	}

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), core.ColorCyan)
	dst.DrawTextCenteredColored(boxY+1, title, core.ColorBrightYellow)
	for i, line := range lines {
		dst.DrawTextCentered(boxY+3+i, line)
	}
}
