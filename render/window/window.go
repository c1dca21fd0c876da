// Package window is the desktop frontend drawing a session with ebiten
package window

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/game"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/render"
	"github.com/lixenwraith/survivor/scene"
	"github.com/lixenwraith/survivor/vmath"
)

const (
	lineHeight     = 16
	hudHeight      = 2*lineHeight + 8
	playerRadius   = 0.5
	projectileSize = 0.15
	heartRadius    = 0.3
	gridSpacing    = 5.0
)

var upgradeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// Game adapts a session to ebiten.Game
type Game struct {
	session *game.Session
	mem     *scene.Memory
	radius  func(component.MonsterKind) float64

	showDiagnostics bool
}

// New creates a window frontend; radius reports the drawn size of a monster kind
func New(session *game.Session, mem *scene.Memory, radius func(component.MonsterKind) float64) *Game {
	return &Game{session: session, mem: mem, radius: radius}
}

// Update polls input and advances one tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.mem.SetMoveIntent(moveIntent(), 2*tickDuration())

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Fire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.session.TriggerInvincible()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showDiagnostics = !g.showDiagnostics
	}
	for i, k := range upgradeKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.session.SelectUpgrade(i)
		}
	}

	g.session.Frame(tickDuration())
	return nil
}

// Draw renders the world, HUD, and overlays
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.RgbBackground.RGBA())
	snap := g.session.Snapshot()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cam := snap.Player

	g.drawGrid(screen, cam, w, h)

	for _, d := range snap.Drops {
		x, y := project(cam, d.Position, w, h)
		vector.DrawFilledCircle(screen, x, y, heartRadius*parameter.PixelsPerUnitFloat, render.RgbHeart.RGBA(), true)
	}

	g.drawShots(screen, cam, g.mem.Projectiles(component.FactionMonster), render.RgbMonsterShot, w, h)
	g.drawShots(screen, cam, g.mem.Projectiles(component.FactionPlayer), render.RgbPlayerShot, w, h)

	for _, v := range g.mem.Visuals() {
		x, y := project(cam, v.Position, w, h)
		r := float32(g.radius(v.Kind) * parameter.PixelsPerUnitFloat)
		vector.DrawFilledCircle(screen, x, y, r, render.MonsterColor(v.Kind).RGBA(), true)
	}

	if snap.HasPlayer {
		g.drawPlayer(screen, snap, w, h)
	}

	vector.FillRect(screen, 0, 0, float32(w), hudHeight, render.RgbHUDBar.RGBA(), false)
	for i, line := range render.StatusLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, 8, 4+i*lineHeight)
	}

	if lines, accent, ok := render.Overlay(snap); ok {
		drawPanel(screen, lines, accent, w, h)
	}

	if g.showDiagnostics {
		y := hudHeight + 4
		for _, e := range g.session.Telemetry() {
			ebitenutil.DebugPrintAt(screen, e.Key+" "+e.Value, w-260, y)
			y += lineHeight
		}
	}
}

// Layout fixes the logical screen size
func (g *Game) Layout(_, _ int) (int, int) {
	return parameter.WindowWidth, parameter.WindowHeight
}

func (g *Game) drawGrid(screen *ebiten.Image, cam vmath.Vec2F, w, h int) {
	halfW := float64(w) / 2 / parameter.PixelsPerUnitFloat
	halfH := float64(h) / 2 / parameter.PixelsPerUnitFloat
	clr := render.RgbGrid.RGBA()

	for gx := math.Floor((cam.X-halfW)/gridSpacing) * gridSpacing; gx <= cam.X+halfW; gx += gridSpacing {
		x, _ := project(cam, vmath.Vec2F{X: gx, Y: cam.Y}, w, h)
		vector.FillRect(screen, x, 0, 1, float32(h), clr, false)
	}
	for gy := math.Floor((cam.Y-halfH)/gridSpacing) * gridSpacing; gy <= cam.Y+halfH; gy += gridSpacing {
		_, y := project(cam, vmath.Vec2F{X: cam.X, Y: gy}, w, h)
		vector.FillRect(screen, 0, y, float32(w), 1, clr, false)
	}
}

func (g *Game) drawShots(screen *ebiten.Image, cam vmath.Vec2F, shots []vmath.Vec2F, c render.RGB, w, h int) {
	r := float32(projectileSize * parameter.PixelsPerUnitFloat)
	for _, p := range shots {
		x, y := project(cam, p, w, h)
		vector.DrawFilledCircle(screen, x, y, r, c.RGBA(), true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, snap game.Snapshot, w, h int) {
	x, y := project(snap.Player, snap.Player, w, h)
	c := render.RgbPlayer
	if snap.Invincible && (snap.Elapsed/parameter.InvincibleBlinkInterval)%2 == 0 {
		c = render.RgbPlayerInvincible
	}
	r := float32(playerRadius * parameter.PixelsPerUnitFloat)
	vector.DrawFilledCircle(screen, x, y, r, c.RGBA(), true)

	facing := g.mem.PlayerFacing()
	fx, fy := x+float32(facing.X)*r*1.6, y+float32(facing.Y)*r*1.6
	vector.DrawFilledCircle(screen, fx, fy, r/3, render.Scale(c, 0.7).RGBA(), true)
}

func drawPanel(screen *ebiten.Image, lines []string, accent render.RGB, w, h int) {
	const charW = 6
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	pw := float32(inner*charW + 32)
	ph := float32(len(lines)*lineHeight + 24)
	px := (float32(w) - pw) / 2
	py := (float32(h) - ph) / 2

	bg := render.RgbOverlayBg.RGBA()
	bg.A = 0xe0
	vector.FillRect(screen, px, py, pw, ph, bg, false)
	vector.StrokeRect(screen, px, py, pw, ph, 2, accent.RGBA(), false)

	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(px)+16, int(py)+12+i*lineHeight)
	}
}

// project maps world units to pixels with the camera centred on cam
func project(cam, p vmath.Vec2F, w, h int) (float32, float32) {
	x := float64(w)/2 + (p.X-cam.X)*parameter.PixelsPerUnitFloat
	y := float64(h)/2 + (p.Y-cam.Y)*parameter.PixelsPerUnitFloat
	return float32(x), float32(y)
}

func moveIntent() vmath.Vec2F {
	var dir vmath.Vec2F
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	return dir
}

func tickDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

var _ ebiten.Game = (*Game)(nil)
