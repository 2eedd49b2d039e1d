package logger_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"go.trai.ch/relock/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during fn. The logger
// under test must be created inside fn so it picks up the redirected stream.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	_ = w.Close()
	output := <-done
	_ = r.Close()
	os.Stderr = original

	return output
}

func TestLogger_Info(t *testing.T) {
	output := captureStderr(t, func() {
		logger.New().Info("some message")
	})

	if !strings.Contains(output, "some message") {
		t.Errorf("expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	output := captureStderr(t, func() {
		logger.New().Warn("some warning")
	})

	if !strings.Contains(output, "some warning") {
		t.Errorf("expected output to contain 'some warning', got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	output := captureStderr(t, func() {
		logger.New().Error(os.ErrPermission)
	})

	if !strings.Contains(output, "permission denied") {
		t.Errorf("expected output to contain 'permission denied', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("expected output to contain 'ERROR', got: %s", output)
	}
}
