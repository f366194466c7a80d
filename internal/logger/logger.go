package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
)

var (
	gray   = color.New(color.FgHiBlack).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	purple = color.New(color.FgMagenta).SprintFunc()
	white  = color.New(color.FgWhite).SprintFunc()
)

var (
	debugEnabled atomic.Bool

	mu  sync.Mutex
	out io.Writer = color.Output
)

// SetLevel active le niveau debug quand level vaut "debug"
func SetLevel(level string) {
	debugEnabled.Store(strings.EqualFold(level, "debug"))
}

// SetOutput redirige les logs (tests). nil rétablit la console.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = color.Output
	}
	out = w
}

func write(line string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, gray("["+time.Now().Format("15:04:05")+"]")+" "+line)
}

// Info log une information générale (bleu)
func Info(message string, args ...interface{}) {
	write(blue(fmt.Sprintf(message, args...)))
}

// Success log un succès (vert)
func Success(message string, args ...interface{}) {
	write(green("✓ " + fmt.Sprintf(message, args...)))
}

// Warning log un avertissement (jaune)
func Warning(message string, args ...interface{}) {
	write(yellow("⚠ " + fmt.Sprintf(message, args...)))
}

// Error log une erreur (rouge)
func Error(message string, args ...interface{}) {
	write(red("✗ " + fmt.Sprintf(message, args...)))
}

// Debug log un message de debug (gris), seulement si LOG_LEVEL=debug
func Debug(message string, args ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	write(gray("DEBUG: " + fmt.Sprintf(message, args...)))
}

// Request log une requête HTTP avec durée
func Request(requestID, method, path string, statusCode int, duration time.Duration) {
	var status func(a ...interface{}) string
	switch {
	case statusCode >= 200 && statusCode < 300:
		status = green
	case statusCode >= 300 && statusCode < 400:
		status = cyan
	case statusCode >= 400 && statusCode < 500:
		status = yellow
	default:
		status = red
	}

	write(fmt.Sprintf("%s %s %s %s %s",
		purple(fmt.Sprintf("%-6s", method)),
		white(fmt.Sprintf("%-50s", path)),
		status(fmt.Sprintf("[%d]", statusCode)),
		gray("("+formatDuration(duration)+")"),
		gray(requestID),
	))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
