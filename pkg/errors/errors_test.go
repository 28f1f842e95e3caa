package errors_test

import (
	goerrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

func TestErrorMessage(t *testing.T) {
	err := errors.AnalysisError("failed to read source file", goerrors.New("permission denied"))

	msg := err.Error()
	if !strings.Contains(msg, "[ANALYSIS]") {
		t.Errorf("Expected type tag in message, got %q", msg)
	}
	if !strings.Contains(msg, "failed to read source file") {
		t.Errorf("Expected message text, got %q", msg)
	}
	if !strings.Contains(msg, "permission denied") {
		t.Errorf("Expected cause in message, got %q", msg)
	}

	noCause := errors.ConfigError("bad value", nil)
	if strings.Contains(noCause.Error(), "<nil>") {
		t.Errorf("Nil cause leaked into message: %q", noCause.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := goerrors.New("root cause")
	err := errors.RepoError("clone failed", cause)

	if !goerrors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var portErr *errors.PortError
	if !goerrors.As(wrapped, &portErr) {
		t.Fatal("Expected errors.As to find PortError through wrapping")
	}
	if portErr.Type != errors.ErrRepo {
		t.Errorf("Type = %v, want ErrRepo", portErr.Type)
	}
}

func TestIsType(t *testing.T) {
	err := errors.ProviderError("backend down", nil)

	if !errors.IsType(err, errors.ErrProvider) {
		t.Error("Expected IsType to match ErrProvider")
	}
	if errors.IsType(err, errors.ErrConfig) {
		t.Error("Expected IsType to reject ErrConfig")
	}
	if errors.IsType(nil, errors.ErrProvider) {
		t.Error("Expected IsType(nil) to be false")
	}
	if errors.IsType(goerrors.New("plain"), errors.ErrProvider) {
		t.Error("Expected IsType to reject plain errors")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.IsType(wrapped, errors.ErrProvider) {
		t.Error("Expected IsType to match through wrapping")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", errors.TimeoutError("analysis cancelled", nil), true},
		{"provider rate limit", errors.ProviderError("rate_limit_exceeded", nil), true},
		{"provider timeout", errors.ProviderError("timeout", nil), true},
		{"provider other", errors.ProviderError("invalid api key", nil), false},
		{"config", errors.ConfigError("bad value", nil), false},
		{"plain error", goerrors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithContext(t *testing.T) {
	err := errors.ConversionError("write failed", nil).
		WithContext("module", "ActorController").
		WithContext("output", "routes/actor.route.js")

	if err.Context["module"] != "ActorController" {
		t.Errorf("Context[module] = %v", err.Context["module"])
	}
	if err.Context["output"] != "routes/actor.route.js" {
		t.Errorf("Context[output] = %v", err.Context["output"])
	}
}
