package shared

import (
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
)

// InitLogger configures zerolog as the process logger and aligns logrus, which the
// domain services use for field logging, with the same level and format.
func InitLogger(level string, pretty bool) {
	zlevel := zerolog.InfoLevel
	if l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && l != zerolog.NoLevel {
		zlevel = l
	}
	zerolog.SetGlobalLevel(zlevel)

	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	zlog.Logger = zerolog.New(w).
		Level(zlevel).
		With().
		Timestamp().
		Str("service", "course_api").
		Logger()

	stdlog.SetFlags(0)
	stdlog.SetOutput(zlog.Logger)

	if l, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		logrus.SetLevel(l)
	}
	if pretty {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
