package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("rendered") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("stage") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("stage") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("unknown config key") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestStopwatchFinish(t *testing.T) {
	var buf bytes.Buffer
	w := startStopwatch(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	w.finish("Rendered", "file", "monday.jpg")

	out := buf.String()
	for _, want := range []string{"Rendered", "file=monday.jpg", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestTimestampsOnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Info("plain")
	if strings.Contains(buf.String(), ":") {
		t.Errorf("info output should carry no timestamp: %q", buf.String())
	}

	buf.Reset()
	setLevel(l, log.DebugLevel)
	l.Debug("detail")
	if !strings.Contains(buf.String(), time.Now().Format("15:")) {
		t.Errorf("debug output should be timestamped: %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}
