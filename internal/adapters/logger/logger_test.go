package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/basidwild/clawdbox/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer

	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)
	lg.Info("some message")

	output := buf.String()
	if !strings.Contains(output, "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer

	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)
	lg.Error(errors.New("toolchain exploded"))

	output := buf.String()
	if !strings.Contains(output, "toolchain exploded") {
		t.Errorf("Expected output to contain the error message, got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}

func TestLogger_ErrorPromotesMetadata(t *testing.T) {
	var buf bytes.Buffer

	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)
	lg.Error(zerr.With(zerr.New("feature build check failed"), "feature", "gdb"))

	output := buf.String()
	if !strings.Contains(output, "feature=gdb") {
		t.Errorf("Expected metadata as a structured attribute, got: %s", output)
	}
}

func TestLogger_SetOutputRedirects(t *testing.T) {
	var first, second bytes.Buffer

	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&first)
	lg.Info("goes to first")

	lg.SetOutput(&second)
	lg.Info("goes to second")

	if strings.Contains(first.String(), "goes to second") {
		t.Error("expected second message to skip the first writer")
	}
	if !strings.Contains(second.String(), "goes to second") {
		t.Errorf("expected second writer to receive the message, got: %s", second.String())
	}
}
