package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/PixPMusic/gopher-gamepad/internal/bridge"
	"github.com/PixPMusic/gopher-gamepad/internal/config"
	"github.com/PixPMusic/gopher-gamepad/internal/gamepad"
	"github.com/PixPMusic/gopher-gamepad/internal/midi"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	initLogger(*debug)

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded",
		"port", cfg.OutputPortName,
		"channel", cfg.OutputChannel,
		"keys", len(cfg.Keys),
		"triggers", len(cfg.TriggerControllers),
		"axes", len(cfg.AxisControllers))

	manager := midi.NewManager()
	defer manager.Close()

	for _, name := range manager.ListOutPorts() {
		slog.Info("midi output port", "name", name)
	}

	out, err := manager.OpenOut(cfg.OutputPortName)
	if err != nil {
		slog.Error("failed to open output port", "port", cfg.OutputPortName, "error", err)
		os.Exit(1)
	}
	if out == nil {
		slog.Warn("output port not found, messages will be dropped", "port", cfg.OutputPortName)
	} else {
		slog.Info("connected to output port", "port", cfg.OutputPortName)
	}

	poller, err := gamepad.Discover()
	if err != nil {
		slog.Error("failed to discover gamepads", "error", err)
		os.Exit(1)
	}
	defer poller.Close()

	if len(poller.Devices()) == 0 {
		slog.Warn("no gamepads attached")
	}
	for _, d := range poller.Devices() {
		slog.Info("gamepad found", "id", d.ID, "name", d.Name, "path", d.Path)
	}

	loop := bridge.NewLoop(bridge.NewTranslator(cfg), out)
	if err := loop.Run(poller.Events()); err != nil {
		slog.Error("bridge stopped", "error", err)
		os.Exit(1)
	}
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(handler))
}
