package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/touchmap"
	"github.com/tanema/gween/ease"
)

const (
	scrollDuration = 0.25 // seconds per scroll step
	maxMessages    = 6
)

var (
	gridColor  = color.RGBA{R: 0x3a, G: 0x34, B: 0x4a, A: 0xff}
	eventColor = color.RGBA{R: 0x4c, G: 0xb3, B: 0xe6, A: 0xff}
	destColor  = color.RGBA{R: 0xe6, G: 0xb3, B: 0x33, A: 0xff}
	clearColor = color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff}
)

type game struct {
	scene   *touchmap.Scene
	tm      *touchmap.TiledMap
	gate    *touchmap.TouchGate
	watcher *touchmap.TriggerWatcher
	shots   screenshotter

	// shootTriggers captures a screenshot labeled with each fired trigger.
	shootTriggers bool

	messages []string
}

func (g *game) Update() error {
	g.handleKeys()
	g.drainWatcher()

	if err := g.scene.Update(float32(1.0 / float64(ebiten.TPS()))); err != nil {
		log.Print(err)
	}
	return nil
}

func (g *game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.scene.Command(touchmap.CommandDisableTouchToMove)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Command(touchmap.CommandEnableTouchToMove)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.capture("manual")
	}
	if g.tm.Scrolling() {
		return
	}
	dx, dy := 0, 0
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		dx = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		dx = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		dy = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		dy = 1
	}
	if dx == 0 && dy == 0 {
		return
	}
	x := clamp(g.tm.ScrollX()+dx, 0, g.tm.Width-screenW/g.tm.TileWidth())
	y := clamp(g.tm.ScrollY()+dy, 0, g.tm.Height-screenH/g.tm.TileHeight())
	g.tm.ScrollTo(x, y, scrollDuration, ease.OutQuad)
}

// drainWatcher reloads changed trigger scripts without blocking the frame.
func (g *game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			n, err := g.scene.ReloadChanged(path)
			if err != nil {
				g.say(fmt.Sprintf("reload failed: %v", err))
				continue
			}
			if n > 0 {
				g.say(fmt.Sprintf("reloaded %s", path))
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("trigger watcher: %v", err)
		default:
			return
		}
	}
}

func (g *game) onTrigger(evt touchmap.TriggerEvent) {
	if g.shootTriggers {
		g.shots.capture(evt.Trigger)
	}
	if evt.EventID != 0 {
		g.say(fmt.Sprintf("touched %s (event %d)", evt.Trigger, evt.EventID))
		return
	}
	g.say(fmt.Sprintf("touched %s", evt.Trigger))
}

func (g *game) say(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	tw, th := g.tm.TileWidth(), g.tm.TileHeight()
	sx, sy := g.tm.ScrollX(), g.tm.ScrollY()

	for x := 0; x <= screenW; x += tw {
		vector.StrokeLine(screen, float32(x), 0, float32(x), screenH, 1, gridColor, false)
	}
	for y := 0; y <= screenH; y += th {
		vector.StrokeLine(screen, 0, float32(y), screenW, float32(y), 1, gridColor, false)
	}

	for _, id := range g.tm.EventIDs() {
		ex, ey, _ := g.tm.Event(id)
		px := float32((ex - sx) * tw)
		py := float32((ey - sy) * th)
		vector.DrawFilledRect(screen, px+4, py+4, float32(tw-8), float32(th-8), eventColor, false)
	}

	if dx, dy, ok := g.scene.Destination(); ok {
		px := float32((dx - sx) * tw)
		py := float32((dy - sy) * th)
		vector.StrokeRect(screen, px+2, py+2, float32(tw-4), float32(th-4), 2, destColor, false)
	}

	ttm := "on"
	if !g.gate.Enabled() {
		ttm = "off"
	}
	status := fmt.Sprintf("touch-to-move: %s  scroll: (%d,%d)  [B]lock [R]estore\n%s",
		ttm, sx, sy, strings.Join(g.messages, "\n"))
	ebitenutil.DebugPrintAt(screen, status, 8, screenH-16*(len(g.messages)+2))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, 8)

	g.shots.flush(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// Close stops the trigger watcher.
func (g *game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
