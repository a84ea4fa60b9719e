package terrain

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log is the package logger; cmd/terrain may replace its output or formatter.
var Log = &logrus.Logger{
	Out:       os.Stderr,
	Formatter: &logrus.TextFormatter{FullTimestamp: true},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

// SetDebug switches debug output on or off.
func SetDebug(on bool) {
	Debug = on
	if on {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	Log.SetLevel(logrus.InfoLevel)
}

func DebugLog(format string, args ...interface{}) {
	if Debug {
		Log.Debugf(format, args...)
	}
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		Log.Debugf(format, args...)
	})
}
