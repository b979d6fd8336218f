package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/app"
	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/platform"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		fmt.Printf("Init logger error: %s\n", err.Error())
		os.Exit(app.ExitFailure)
	}

	code := app.Run(app.DefaultConfig(), platform.Desktop{Log: log}, log)

	_ = log.Sync()
	os.Exit(code)
}
