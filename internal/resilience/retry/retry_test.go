package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"
)

// transientErr is a retryable connection error for tests.
var transientErr = fmt.Errorf("dial tcp: %w", syscall.ECONNREFUSED)

func TestWithBackoff_Success(t *testing.T) {
	cfg := Config{
		MaxAttempts:    3,
		InitialDelay:   1 * time.Millisecond,
		MaxDelay:       10 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}

	calls := 0
	err := WithBackoff(context.Background(), cfg, func() error {
		calls++
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestWithBackoff_SuccessAfterRetry(t *testing.T) {
	cfg := Config{
		MaxAttempts:    3,
		InitialDelay:   1 * time.Millisecond,
		MaxDelay:       10 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}

	calls := 0
	err := WithBackoff(context.Background(), cfg, func() error {
		calls++
		if calls < 3 {
			return transientErr
		}
		return nil
	})

	if err != nil {
		t.Errorf("expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestWithBackoff_MaxAttemptsExceeded(t *testing.T) {
	cfg := Config{
		MaxAttempts:    3,
		InitialDelay:   1 * time.Millisecond,
		MaxDelay:       10 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}

	calls := 0
	err := WithBackoff(context.Background(), cfg, func() error {
		calls++
		return transientErr
	})

	if err == nil {
		t.Fatal("expected error after exceeding max attempts")
	}
	if !errors.Is(err, syscall.ECONNREFUSED) {
		t.Errorf("expected wrapped transient error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestWithBackoff_NonRetryableError(t *testing.T) {
	cfg := Config{
		MaxAttempts:    3,
		InitialDelay:   1 * time.Millisecond,
		MaxDelay:       10 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}

	permanentErr := errors.New("constraint violation")
	calls := 0
	err := WithBackoff(context.Background(), cfg, func() error {
		calls++
		return permanentErr
	})

	if !errors.Is(err, permanentErr) {
		t.Errorf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("non-retryable error should not be retried, got %d calls", calls)
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	cfg := Config{
		MaxAttempts:    5,
		InitialDelay:   50 * time.Millisecond,
		MaxDelay:       100 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := WithBackoff(ctx, cfg, func() error {
		return transientErr
	})

	if err == nil {
		t.Fatal("expected error after context cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "nil error", err: nil, retryable: false},
		{name: "connection refused", err: syscall.ECONNREFUSED, retryable: true},
		{name: "connection reset", err: syscall.ECONNRESET, retryable: true},
		{name: "timed out", err: syscall.ETIMEDOUT, retryable: true},
		{name: "network unreachable", err: syscall.ENETUNREACH, retryable: true},
		{name: "wrapped connection error", err: transientErr, retryable: true},
		{name: "network timeout", err: timeoutError{}, retryable: true},
		{name: "context canceled", err: context.Canceled, retryable: false},
		{name: "context deadline", err: context.DeadlineExceeded, retryable: false},
		{name: "generic error", err: errors.New("boom"), retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.retryable)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxAttempts != 3 {
		t.Errorf("expected MaxAttempts=3, got %d", cfg.MaxAttempts)
	}
	if cfg.InitialDelay != time.Second {
		t.Errorf("expected InitialDelay=1s, got %v", cfg.InitialDelay)
	}
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig()
	if cfg.MaxAttempts != 3 {
		t.Errorf("expected MaxAttempts=3, got %d", cfg.MaxAttempts)
	}
	if cfg.InitialDelay != 100*time.Millisecond {
		t.Errorf("expected InitialDelay=100ms, got %v", cfg.InitialDelay)
	}
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 10; i++ {
		jittered := addJitter(base, 0.1)
		if jittered < base || jittered > base+10*time.Millisecond {
			t.Errorf("jittered duration %v outside expected range", jittered)
		}
	}
}

func TestAddJitter_ZeroFraction(t *testing.T) {
	base := 100 * time.Millisecond
	if got := addJitter(base, 0); got != base {
		t.Errorf("expected %v, got %v", base, got)
	}
}
