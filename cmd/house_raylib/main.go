package main

import (
	"house-door/internal/config"
	"house-door/internal/event"
	"house-door/internal/scene"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	// --- Инициализация ---
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	sc := scene.NewScene()
	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.MouseClicked, sc)
	canvas := raylibCanvas{}

	slog.Info("starting", "backend", "raylib", "width", config.ScreenWidth, "height", config.ScreenHeight)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			pos := rl.GetMousePosition()
			dispatcher.Dispatch(event.Event{
				Type: event.MouseClicked,
				Data: event.Click{X: int(pos.X), Y: int(pos.Y)},
			})
		}

		// Буферы кадра меняются местами, поэтому рисуем каждый кадр
		sc.ConsumeRedraw()
		rl.BeginDrawing()
		sc.Render(canvas)
		rl.EndDrawing()
	}
	slog.Info("window closed")
}
