package scene

import (
	"house-door/internal/config"
	"house-door/internal/event"
	"house-door/pkg/render"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderScene(t *testing.T, s *Scene) *render.RasterCanvas {
	t.Helper()
	c := render.NewRasterCanvas(config.ScreenWidth, config.ScreenHeight)
	s.Render(c)
	return c
}

func doorRect() image.Rectangle {
	return image.Rect(config.DoorX, config.DoorY, config.DoorX+config.DoorWidth, config.DoorY+config.DoorHeight)
}

// assertDoorFilled checks every door pixel against want.
func assertDoorFilled(t *testing.T, c *render.RasterCanvas, want color.RGBA) {
	t.Helper()
	r := doorRect()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if got := c.At(x, y); got != want {
				t.Fatalf("door pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScene_ParityOfClicks(t *testing.T) {
	for n := 0; n <= 25; n++ {
		s := NewScene()
		for i := 0; i < n; i++ {
			s.OnClick()
		}
		if n%2 == 0 {
			assert.Equal(t, DoorBlue, s.Door(), "clicks=%d", n)
		} else {
			assert.Equal(t, DoorRed, s.Door(), "clicks=%d", n)
		}
	}
}

func TestScene_StartsBlue(t *testing.T) {
	s := NewScene()
	require.Equal(t, DoorBlue, s.Door())
	assertDoorFilled(t, renderScene(t, s), config.DoorBlueColor)
}

func TestScene_OneClickPaintsRed(t *testing.T) {
	s := NewScene()
	s.OnClick()
	require.Equal(t, DoorRed, s.Door())
	assertDoorFilled(t, renderScene(t, s), config.DoorRedColor)
}

func TestScene_TwoClicksPaintBlueAgain(t *testing.T) {
	s := NewScene()
	s.OnClick()
	s.OnClick()
	require.Equal(t, DoorBlue, s.Door())
	assertDoorFilled(t, renderScene(t, s), config.DoorBlueColor)
}

func TestScene_RenderIsIdempotent(t *testing.T) {
	s := NewScene()
	c := render.NewRasterCanvas(config.ScreenWidth, config.ScreenHeight)
	s.Render(c)
	first := c.Snapshot()
	s.Render(c)
	s.Render(c)
	assert.Equal(t, first.Pix, c.Snapshot().Pix)

	other := renderScene(t, s)
	assert.Equal(t, first.Pix, other.Snapshot().Pix)
}

func TestScene_HouseOutsideDoorNeverChanges(t *testing.T) {
	s := NewScene()
	base := renderScene(t, s).Snapshot()
	door := doorRect()

	for click := 1; click <= 5; click++ {
		s.OnClick()
		got := renderScene(t, s).Snapshot()
		b := got.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if image.Pt(x, y).In(door) {
					continue
				}
				if got.RGBAAt(x, y) != base.RGBAAt(x, y) {
					t.Fatalf("click %d changed pixel (%d,%d) outside the door", click, x, y)
				}
			}
		}
	}
}

func TestScene_BodyAndRoofColors(t *testing.T) {
	c := renderScene(t, NewScene())

	assert.Equal(t, config.BodyColor, c.At(config.BodyX+5, config.BodyY+5), "body")
	assert.Equal(t, config.BodyColor, c.At(config.BodyX+config.BodyWidth-5, config.BodyY+config.BodyHeight-5), "body")
	assert.Equal(t, config.RoofColor, c.At(config.RoofPeakX, config.RoofPeakY+50), "roof")
	assert.Equal(t, config.BackgroundColor, c.At(10, 10), "background")
	assert.Equal(t, config.BackgroundColor, c.At(config.RoofLeftX+5, config.RoofPeakY+5), "outside roof slope")
}

func TestScene_RedrawRequests(t *testing.T) {
	s := NewScene()
	assert.True(t, s.RedrawPending(), "first frame must be drawn")
	assert.True(t, s.ConsumeRedraw())
	assert.False(t, s.ConsumeRedraw())

	s.OnClick()
	s.OnClick()
	s.OnClick()
	assert.True(t, s.ConsumeRedraw(), "clicks coalesce into one redraw")
	assert.False(t, s.RedrawPending())
	assert.Equal(t, DoorRed, s.Door())
}

func TestScene_ClickStream(t *testing.T) {
	s := NewScene()
	d := event.NewDispatcher()
	d.Subscribe(event.MouseClicked, s)

	d.Dispatch(event.Event{Type: event.MouseClicked, Data: event.Click{X: 3, Y: 490}})
	assert.Equal(t, DoorRed, s.Door())

	d.Dispatch(event.Event{Type: event.MouseClicked})
	assert.Equal(t, DoorBlue, s.Door())

	d.Unsubscribe(event.MouseClicked, s)
	d.Dispatch(event.Event{Type: event.MouseClicked})
	assert.Equal(t, DoorBlue, s.Door())
}

func TestScene_IgnoresOtherEvents(t *testing.T) {
	s := NewScene()
	s.ConsumeRedraw()
	s.OnEvent(event.Event{Type: "KeyPressed"})
	assert.Equal(t, DoorBlue, s.Door())
	assert.False(t, s.RedrawPending())
}

func TestScene_RenderNilCanvasPanics(t *testing.T) {
	assert.Panics(t, func() { NewScene().Render(nil) })
}
