package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger builds the application logger and registers it in the dependency container.
// Components resolve the *log.Logger adapter and log with Printf; a message starting
// with DEBUG, WARN or ERROR is emitted at that level.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	Format string `config:"LOG_FORMAT" default:"text"`
	out    io.Writer
}

// Initialize creates the logger and registers both the structured logger and its standard adapter.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger, err := il.newLogger()
	if err != nil {
		return ctx, err
	}
	depend.Register(logger)
	depend.Register(logger.StandardLog())
	return ctx, nil
}

func (il *InitLogger) newLogger() (*charmlog.Logger, error) {
	level, err := charmlog.ParseLevel(il.Level)
	if err != nil {
		return nil, err
	}
	formatter, err := parseFormatter(il.Format)
	if err != nil {
		return nil, err
	}

	out := il.out
	if out == nil {
		out = os.Stdout
	}

	return charmlog.NewWithOptions(out, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          "todoql",
		ReportTimestamp: true,
	}), nil
}

func parseFormatter(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return charmlog.TextFormatter, nil
	case "json":
		return charmlog.JSONFormatter, nil
	case "logfmt":
		return charmlog.LogfmtFormatter, nil
	default:
		return charmlog.TextFormatter, fmt.Errorf("invalid log format %q", format)
	}
}
