package scene

import (
	"house-door/internal/config"
	"image/color"
)

// DoorState — цвет двери. Других значений, кроме DoorBlue и DoorRed, нет.
type DoorState int

const (
	DoorBlue DoorState = iota
	DoorRed
)

// Toggle возвращает противоположное состояние
func (d DoorState) Toggle() DoorState {
	if d == DoorBlue {
		return DoorRed
	}
	return DoorBlue
}

// Color возвращает цвет заливки двери
func (d DoorState) Color() color.RGBA {
	if d == DoorRed {
		return config.DoorRedColor
	}
	return config.DoorBlueColor
}

func (d DoorState) String() string {
	if d == DoorRed {
		return "red"
	}
	return "blue"
}
