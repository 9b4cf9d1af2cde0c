// Package scene holds the house drawing and the door colour it toggles.
package scene

import (
	"house-door/internal/config"
	"house-door/internal/event"
	"house-door/pkg/render"
	"log/slog"
)

// Убеждаемся, что Scene может подписываться на клики
var _ event.Listener = (*Scene)(nil)

// Scene владеет состоянием двери и рисует дом целиком.
// Используется только из потока обновления/отрисовки.
type Scene struct {
	door   DoorState
	redraw bool
}

// NewScene создаёт сцену с синей дверью. Первый кадр уже запрошен.
func NewScene() *Scene {
	return &Scene{
		door:   DoorBlue,
		redraw: true,
	}
}

// Door возвращает текущее состояние двери
func (s *Scene) Door() DoorState {
	return s.door
}

// OnClick переключает цвет двери и запрашивает перерисовку
func (s *Scene) OnClick() {
	s.door = s.door.Toggle()
	s.redraw = true
	slog.Debug("door toggled", "door", s.door)
}

// OnEvent — обработчик потока кликов. Координаты клика не учитываются.
func (s *Scene) OnEvent(e event.Event) {
	if e.Type == event.MouseClicked {
		s.OnClick()
	}
}

// RedrawPending сообщает, изменилась ли сцена с последней отрисовки
func (s *Scene) RedrawPending() bool {
	return s.redraw
}

// ConsumeRedraw сбрасывает запрос на перерисовку. Несколько кликов между
// кадрами сливаются в один запрос.
func (s *Scene) ConsumeRedraw() bool {
	pending := s.redraw
	s.redraw = false
	return pending
}

// Render рисует фон, корпус, крышу и дверь, именно в этом порядке
func (s *Scene) Render(c render.Canvas) {
	if c == nil {
		panic("canvas cannot be nil")
	}
	c.Clear(config.BackgroundColor)

	c.FillRect(config.BodyX, config.BodyY, config.BodyWidth, config.BodyHeight, config.BodyColor)

	c.FillPolygon(roofPoints(), config.RoofColor)

	c.FillRect(config.DoorX, config.DoorY, config.DoorWidth, config.DoorHeight, s.door.Color())
}

func roofPoints() []render.Point {
	return []render.Point{
		{X: config.RoofLeftX, Y: config.RoofLeftY},
		{X: config.RoofPeakX, Y: config.RoofPeakY},
		{X: config.RoofRightX, Y: config.RoofRightY},
	}
}
