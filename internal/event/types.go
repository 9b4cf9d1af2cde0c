package event

const (
	MouseClicked EventType = "MouseClicked" // Клик в любой точке окна
)

// Click — данные события MouseClicked, координаты в логических пикселях
type Click struct {
	X, Y int
}
