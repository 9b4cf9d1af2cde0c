package config

import "image/color"

const (
	ScreenWidth  = 500
	ScreenHeight = 500
	WindowTitle  = "House Applet"
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	// Корпус дома
	BodyX      = 100
	BodyY      = 200
	BodyWidth  = 200
	BodyHeight = 150

	// Крыша: левый угол, конёк, правый угол
	RoofLeftX  = 100
	RoofLeftY  = 200
	RoofPeakX  = 200
	RoofPeakY  = 100
	RoofRightX = 300
	RoofRightY = 200

	// Дверь
	DoorX      = 170
	DoorY      = 270
	DoorWidth  = 60
	DoorHeight = 80
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	BodyColor       = color.RGBA{255, 255, 0, 255} // Жёлтый
	RoofColor       = color.RGBA{255, 0, 0, 255}   // Красный
	DoorBlueColor   = color.RGBA{0, 0, 255, 255}
	DoorRedColor    = color.RGBA{255, 0, 0, 255}
)
