package app

import (
	"io"
	"log/slog"

	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/hcl"
	"github.com/vk/keyloom/internal/keymap"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	loader *keymap.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The optional parser
// override is primarily for testing; by default the HCL parser is wired in.
func NewApp(outW, logW io.Writer, appConfig *Config, parser ...config.Parser) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)

	var p config.Parser = hcl.NewParser()
	if len(parser) > 0 {
		p = parser[0]
	}

	return &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		loader: keymap.NewLoader(p),
	}
}
