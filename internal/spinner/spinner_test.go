package spinner

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards bytes.Buffer; the spinner goroutine writes while the
// test may read.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewDisabledForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	if s.enabled {
		t.Fatal("spinner enabled for a bytes.Buffer")
	}

	stop := s.Start("Uploading...")
	stop()
	if buf.Len() != 0 {
		t.Errorf("disabled spinner wrote %q", buf.String())
	}
}

func TestStartStop(t *testing.T) {
	buf := &syncBuffer{}
	s := &Spinner{w: buf, enabled: true}

	stop := s.Start("Summarizing...")
	time.Sleep(3 * interval)
	stop()
	stop()

	out := buf.String()
	if !strings.Contains(out, "Summarizing... |") {
		t.Errorf("first frame missing from %q", out)
	}
	if !strings.Contains(out, "Summarizing... /") {
		t.Errorf("second frame missing from %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("line not cleared on stop: %q", out)
	}

	// Nothing is written once stop has returned.
	before := buf.String()
	time.Sleep(2 * interval)
	if buf.String() != before {
		t.Error("spinner kept writing after stop")
	}
}

func TestRun(t *testing.T) {
	buf := &syncBuffer{}
	s := &Spinner{w: buf, enabled: true}

	got, err := Run(s, "Processing transcription...", func() (string, error) {
		return "transcript", nil
	})
	if err != nil || got != "transcript" {
		t.Errorf("Run() = %q, %v", got, err)
	}

	wantErr := errors.New("quota exceeded")
	_, err = Run(s, "Uploading...", func() (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}
}

func TestRunNilSpinner(t *testing.T) {
	var s *Spinner
	got, err := Run(s, "x", func() (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Errorf("Run() = %d, %v", got, err)
	}
}

func TestWrapClearsFrameBeforeWrite(t *testing.T) {
	buf := &syncBuffer{}
	s := &Spinner{w: buf, enabled: true}
	logs := s.Wrap(buf)

	stop := s.Start("Uploading...")
	time.Sleep(interval / 2)
	if _, err := logs.Write([]byte("INFO uploaded talk.mp3\n")); err != nil {
		t.Fatal(err)
	}
	stop()

	out := buf.String()
	clear := "\r" + strings.Repeat(" ", len("Uploading... |")) + "\r"
	want := "\rUploading... |" + clear + "INFO uploaded talk.mp3\n"
	if !strings.HasPrefix(out, want) {
		t.Errorf("output = %q, want prefix %q", out, want)
	}
}

func TestWrapPassthrough(t *testing.T) {
	var buf bytes.Buffer
	if got := New(&buf).Wrap(&buf); got != &buf {
		t.Error("disabled spinner wrapped the writer")
	}

	var s *Spinner
	if got := s.Wrap(&buf); got != &buf {
		t.Error("nil spinner wrapped the writer")
	}
}
