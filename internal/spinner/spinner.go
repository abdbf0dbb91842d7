// Package spinner draws a one-line progress indicator while a blocking
// call runs.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"|", "/", "-", "\\"}

const interval = 100 * time.Millisecond

// Spinner animates one status line. Writers returned by Wrap share its
// lock, so log lines never land inside a frame.
type Spinner struct {
	w       io.Writer
	enabled bool

	mu   sync.Mutex
	line string // frame currently on screen, "" when cleared
}

// New returns a Spinner drawing on w. Drawing is enabled only when w is a
// terminal, so redirected output stays clean.
func New(w io.Writer) *Spinner {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd()))
	}
	return &Spinner{w: w, enabled: enabled}
}

// Start animates message until the returned stop function is called.
// stop cancels the animation, waits for the goroutine to clear the line
// and return, and may be called more than once.
func (s *Spinner) Start(message string) (stop func()) {
	if s == nil || !s.enabled {
		return func() {}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		i := 0
		for {
			s.draw(fmt.Sprintf("%s %s", message, frames[i%len(frames)]))
			i++
			select {
			case <-ctx.Done():
				s.mu.Lock()
				s.clearLocked()
				s.mu.Unlock()
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(cancel)
		<-done
	}
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s", frame) //nolint:errcheck
	s.line = frame
}

// clearLocked blanks the frame on screen. s.mu must be held.
func (s *Spinner) clearLocked() {
	if s.line == "" {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.line))) //nolint:errcheck
	s.line = ""
}

// Wrap returns a writer that clears the current frame before each write
// to w. The next tick redraws it below the written text.
func (s *Spinner) Wrap(w io.Writer) io.Writer {
	if s == nil || !s.enabled {
		return w
	}
	return &lineWriter{s: s, w: w}
}

type lineWriter struct {
	s *Spinner
	w io.Writer
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	lw.s.mu.Lock()
	defer lw.s.mu.Unlock()
	lw.s.clearLocked()
	return lw.w.Write(p)
}

// Run calls fn while the spinner shows message. The animation is stopped
// and joined before fn's result is returned.
func Run[T any](s *Spinner, message string, fn func() (T, error)) (T, error) {
	stop := s.Start(message)
	v, err := fn()
	stop()
	return v, err
}
