// scene-probe composes the demo scene and draws a live top-down map of
// it in the terminal: point lights with their flickering colors,
// renderable entities, the camera and the shadow caster. Useful for
// eyeballing composition changes without a GPU attached.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/kestrelforge/lumen/asset"
	"github.com/kestrelforge/lumen/component"
	"github.com/kestrelforge/lumen/config"
	"github.com/kestrelforge/lumen/core"
	"github.com/kestrelforge/lumen/graphics"
	"github.com/kestrelforge/lumen/scene"
)

// worldExtent is the half-width of the mapped world region
const worldExtent = 25.0

func main() {
	ring := flag.Int("ring", 6, "number of ring lights to compose")
	flag.Parse()

	cfg := config.Default()
	cfg.Lights.Ring = *ring

	builder := &scene.Builder{
		Scenes:   scene.NewManager(),
		Assets:   asset.NewDemoLibrary(),
		Textures: graphics.NewTextureCache(),
		Config:   cfg,
	}
	s, err := builder.Initialize()
	if err != nil {
		log.Fatalf("scene build: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	const dt = time.Second / 30
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			s.Update(dt)
			draw(screen, s)
		}
	}
}

func draw(screen tcell.Screen, s *scene.Scene) {
	screen.Clear()
	w := s.World()
	width, height := screen.Size()

	plot := func(t *component.Transform, r rune, style tcell.Style) {
		x := int((t.Position.X + worldExtent) / (2 * worldExtent) * float64(width-1))
		y := int((t.Position.Z + worldExtent) / (2 * worldExtent) * float64(height-2))
		if x < 0 || x >= width || y < 0 || y >= height-1 {
			return
		}
		screen.SetContent(x, y, r, nil, style)
	}

	grey := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, e := range w.Renderables.Entities() {
		if t, ok := w.Transforms.Get(e); ok {
			plot(t, '#', grey)
		}
	}
	for _, e := range w.PointLights.Entities() {
		light, _ := w.PointLights.Get(e)
		if t, ok := w.Transforms.Get(e); ok {
			plot(t, '*', tcell.StyleDefault.Foreground(lightColor(light.Color)))
		}
	}
	for _, e := range w.ShadowLights.Entities() {
		if t, ok := w.Transforms.Get(e); ok {
			plot(t, 'S', tcell.StyleDefault.Foreground(tcell.ColorYellow))
		}
	}
	for _, e := range w.Cameras.Entities() {
		if t, ok := w.Transforms.Get(e); ok {
			plot(t, '@', tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}

	status := "scene-probe  q:quit  *:light  #:renderable  S:shadow  @:camera"
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}

// lightColor maps a dim linear light color to a visible terminal color.
// Ring light channels live around 0.1, so brightness is normalized
// before conversion.
func lightColor(c core.Color4) tcell.Color {
	col := colorful.Color{R: float64(c.R) * 10, G: float64(c.G) * 10, B: float64(c.B) * 10}.Clamped()
	r, g, b := col.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
