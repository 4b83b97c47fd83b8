package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/internal/config"
)

// newLogger builds a logrus logger writing to w. The "auto" format picks a
// colored text formatter on terminals and plain text elsewhere.
func newLogger(cfg config.Config, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	l := log.New()
	l.SetOutput(w)
	l.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		l.SetFormatter(&log.JSONFormatter{})
	case "text":
		l.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	default:
		l.SetFormatter(&log.TextFormatter{
			ForceColors:      isTerminal(w),
			DisableColors:    !isTerminal(w),
			DisableTimestamp: true,
			PadLevelText:     true,
		})
	}

	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
