package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"donation-service/src/pkg/log"
)

var ErrSDKUnavailable = errors.New("payment sdk unavailable")

type Session struct {
	ID string
}

type SDK interface {
	Init(ctx context.Context, cfg Config) (*Session, error)
	Reload(ctx context.Context, sessionID string, cfg Config) error
}

type Loader interface {
	Load(ctx context.Context) (SDK, error)
}

// ProbeFunc reports the SDK once the provider is reachable.
type ProbeFunc func(ctx context.Context) (SDK, bool)

// PollingLoader probes at a fixed interval until the SDK shows up, the
// attempts run out or the timeout expires.
type PollingLoader struct {
	Probe    ProbeFunc
	Interval time.Duration
	Attempts int
	Timeout  time.Duration
	Log      log.Log
}

func (l *PollingLoader) Load(ctx context.Context) (SDK, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}
	attempts := l.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if sdk, ok := l.Probe(ctx); ok {
			return sdk, nil
		}
		if attempt == attempts {
			break
		}
		timer := time.NewTimer(l.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			l.Log.Error("payment-loader", "gave up waiting for payment sdk", "Load", ctx.Err().Error())
			return nil, fmt.Errorf("%w: %v", ErrSDKUnavailable, ctx.Err())
		case <-timer.C:
		}
	}

	l.Log.Error("payment-loader", "payment sdk not available after retries", "Load", fmt.Sprintf("attempts=%d", attempts))
	return nil, ErrSDKUnavailable
}
