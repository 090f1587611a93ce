// Package logs builds the process-wide structured logger.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"bikesafe/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for building the logger.
type Params struct {
	fx.In

	Config *config.Config
}

var levelNames = map[string]slog.Level{
	"":      slog.LevelInfo,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New builds the slog.Logger every component logs through. JSON output by
// default; log.pretty switches to the text handler for local runs.
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level, ok := levelNames[strings.ToLower(logCfg.Level)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", logCfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if logCfg.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler), nil
}
