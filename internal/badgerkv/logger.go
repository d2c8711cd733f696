package badgerkv

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// badgerLogger adapts a zap.Logger to the badger.Logger interface.
type badgerLogger struct {
	logger *zap.Logger
}

var _ badger.Logger = (*badgerLogger)(nil)

func (l *badgerLogger) Errorf(msg string, args ...any) {
	l.logger.Error(format(msg, args...))
}

func (l *badgerLogger) Warningf(msg string, args ...any) {
	l.logger.Warn(format(msg, args...))
}

func (l *badgerLogger) Infof(msg string, args ...any) {
	l.logger.Info(format(msg, args...))
}

func (l *badgerLogger) Debugf(msg string, args ...any) {
	l.logger.Debug(format(msg, args...))
}

// format renders badger's printf-style messages, trimming the trailing
// newline badger includes.
func format(msg string, args ...any) string {
	return strings.TrimRight(fmt.Sprintf(msg, args...), "\n")
}
