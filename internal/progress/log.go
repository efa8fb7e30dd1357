package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout renders as YYYY-Mon-DD-HH:MM:SS.
const TimestampLayout = "2006-Jan-02-15:04:05"

// Logger appends "<timestamp> : <message>" lines to a text file. The file
// is opened and closed on every call so lines survive an aborted run.
type Logger struct {
	path string
	now  func() time.Time
}

func NewLogger(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

func (l *Logger) Path() string {
	return l.path
}

func (l *Logger) Log(message string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "%s : %s\n", l.now().Format(TimestampLayout), message); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
