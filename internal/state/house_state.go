package state

import (
	"house-door/internal/config"
	"house-door/internal/event"
	"house-door/internal/scene"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*HouseState)(nil)

// HouseState — единственное состояние окна: дом с дверью
type HouseState struct {
	sm         *StateMachine
	dispatcher *event.Dispatcher
	scene      *scene.Scene
	frame      *ebiten.Image // Предрендеренный кадр, обновляется только после клика
	canvas     *EbitenCanvas
	touchIDs   []ebiten.TouchID
	clickLog   event.Listener
}

func logClick(e event.Event) {
	if c, ok := e.Data.(event.Click); ok {
		slog.Debug("click", "x", c.X, "y", c.Y)
	}
}

func NewHouseState(sm *StateMachine, sc *scene.Scene, dispatcher *event.Dispatcher) *HouseState {
	if sc == nil || dispatcher == nil {
		panic("scene and dispatcher cannot be nil")
	}
	return &HouseState{
		sm:         sm,
		dispatcher: dispatcher,
		scene:      sc,
	}
}

func (s *HouseState) Enter() {
	s.dispatcher.Subscribe(event.MouseClicked, s.scene)
	if s.clickLog == nil {
		s.clickLog = event.ListenerFunc(logClick)
		s.dispatcher.Subscribe(event.MouseClicked, s.clickLog)
	}
	slog.Info("house scene attached", "door", s.scene.Door())
}

func (s *HouseState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.dispatchClick(x, y)
	}
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.dispatchClick(x, y)
	}
}

func (s *HouseState) dispatchClick(x, y int) {
	s.dispatcher.Dispatch(event.Event{
		Type: event.MouseClicked,
		Data: event.Click{X: x, Y: y},
	})
}

func (s *HouseState) Draw(screen *ebiten.Image) {
	fresh := false
	if s.frame == nil {
		s.frame = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
		s.canvas = NewEbitenCanvas(s.frame)
		fresh = true
	}
	if s.scene.ConsumeRedraw() || fresh {
		s.frame.Clear()
		s.scene.Render(s.canvas)
	}
	screen.DrawImage(s.frame, nil)
}

func (s *HouseState) Exit() {
	s.dispatcher.Unsubscribe(event.MouseClicked, s.scene)
	if s.frame != nil {
		s.frame.Deallocate()
		s.frame = nil
	}
}
