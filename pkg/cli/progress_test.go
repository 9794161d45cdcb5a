package cli

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestSimpleProgressRendersBar(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(10)
	progress.Update(5)
	progress.Finish()

	out := buf.String()
	for _, want := range []string{"Scanning:", "50.0%", "(5/10)", "files/s"} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Finish should end the progress line")
	}
}

func TestSimpleProgressZeroTotalIsSilent(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(0)
	progress.Update(0)

	if strings.Contains(buf.String(), "Scanning:") {
		t.Errorf("zero-total progress rendered a bar: %q", buf.String())
	}
}

func TestSimpleProgressError(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(3)
	progress.Error(errors.New("disk gone"))

	if !strings.Contains(buf.String(), "disk gone") {
		t.Errorf("error not reported: %q", buf.String())
	}
}

func TestSimpleProgressConcurrentUpdates(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)
	progress.Start(100)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				progress.Update(int64(w*10 + i))
			}
		}(w)
	}
	wg.Wait()
	progress.Finish()

	if buf.Len() == 0 {
		t.Error("concurrent updates produced no output")
	}
}

func TestNewProgressReporterNilWriterDefaultsToStderr(t *testing.T) {
	progress := NewProgressReporter(nil)
	// Must not panic with the default writer.
	progress.Start(2)
	progress.Update(1)
	progress.Finish()
}

func TestQuietProgressIsNoOp(t *testing.T) {
	var progress ProgressReporter = QuietProgress{}
	progress.Start(10)
	progress.Update(5)
	progress.Error(errors.New("ignored"))
	progress.Finish()
}
