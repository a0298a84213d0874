package utils

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelNone  = "none"
)

// NewLogger returns a logfmt logger writing to w, filtered at the named level
func NewLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch strings.ToLower(lvl) {
	case LevelDebug:
		opt = level.AllowDebug()
	case LevelInfo, "":
		opt = level.AllowInfo()
	case LevelWarn:
		opt = level.AllowWarn()
	case LevelError:
		opt = level.AllowError()
	case LevelNone:
		opt = level.AllowNone()
	default:
		return nil, errors.Errorf("[NewLogger] unknown log level: %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}
