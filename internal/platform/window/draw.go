package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/breaking-the-block/internal/core"
	"github.com/vovakirdan/breaking-the-block/internal/games/breakout"
)

const discSize = 64

func newDisc() *ebiten.Image {
	img := ebiten.NewImage(discSize, discSize)
	vector.DrawFilledCircle(img, discSize/2, discSize/2, discSize/2, core.ColorWhite, true)
	return img
}

// Draw paints bricks, paddle, ball, balloons and tornadoes in that order.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.engine.Config().Screen.Background)

	for _, b := range g.engine.Bricks() {
		if !b.Hit {
			fillBlock(screen, b)
		}
	}
	fillBlock(screen, g.engine.Paddle())

	g.drawBall(screen, g.engine.Ball())

	if g.engine.Won() {
		for _, b := range g.engine.Balloons() {
			g.drawEllipse(screen, b.Body())
			t := b.Tether()
			vector.StrokeLine(screen, float32(t.X1), float32(t.Y1), float32(t.X2), float32(t.Y2), float32(t.Width), t.Color, false)
			h := b.Highlight()
			vector.DrawFilledCircle(screen, float32(h.X), float32(h.Y), float32(h.R), h.Color, true)
		}
	}

	for _, t := range g.engine.Tornadoes() {
		for _, l := range t.Layers() {
			g.drawEllipse(screen, l)
		}
	}
}

func fillBlock(screen *ebiten.Image, b breakout.Block) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), b.Color, false)
}

// drawBall blits the sprite scaled to the ball's diameter, or a filled
// circle when there is no sprite.
func (g *game) drawBall(screen *ebiten.Image, b breakout.Ball) {
	r := float64(b.Radius())
	if g.sprite == nil {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(r), b.Color, true)
		return
	}

	size := g.sprite.Bounds().Size()
	d := float64(b.Diameter())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d/float64(size.X), d/float64(size.Y))
	op.GeoM.Translate(float64(int(b.X-r)), float64(int(b.Y-r)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.sprite, op)
}

// drawEllipse stretches the unit disc over the ellipse's bounding box.
func (g *game) drawEllipse(screen *ebiten.Image, e breakout.Ellipse) {
	if e.W <= 0 || e.H <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(e.W/discSize, e.H/discSize)
	op.GeoM.Translate(e.X, e.Y)
	op.ColorScale.ScaleWithColor(e.Color)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.disc, op)
}
