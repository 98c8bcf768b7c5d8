package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"donation-service/src/pkg/log"

	"github.com/stretchr/testify/require"
)

type fakeSDK struct {
	mu       sync.Mutex
	inits    int
	reloads  []string
	initErr  error
	lastInit Config
}

func (f *fakeSDK) Init(_ context.Context, cfg Config) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	f.lastInit = cfg
	if f.initErr != nil {
		return nil, f.initErr
	}
	return &Session{ID: "session-1"}, nil
}

func (f *fakeSDK) Reload(_ context.Context, sessionID string, _ Config) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloads = append(f.reloads, sessionID)
	return nil
}

func Test_PollingLoader_FoundAfterRetries(t *testing.T) {
	sdk := &fakeSDK{}
	probes := 0
	loader := &PollingLoader{
		Probe: func(context.Context) (SDK, bool) {
			probes++
			return sdk, probes == 3
		},
		Interval: time.Millisecond,
		Attempts: 5,
		Log:      log.Discard(),
	}

	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Same(t, sdk, got)
	require.Equal(t, 3, probes)
}

func Test_PollingLoader_GivesUp(t *testing.T) {
	probes := 0
	loader := &PollingLoader{
		Probe: func(context.Context) (SDK, bool) {
			probes++
			return nil, false
		},
		Interval: time.Millisecond,
		Attempts: 4,
		Log:      log.Discard(),
	}

	_, err := loader.Load(context.Background())
	require.ErrorIs(t, err, ErrSDKUnavailable)
	require.Equal(t, 4, probes)
}

func Test_PollingLoader_Timeout(t *testing.T) {
	loader := &PollingLoader{
		Probe:    func(context.Context) (SDK, bool) { return nil, false },
		Interval: time.Second,
		Attempts: 100,
		Timeout:  20 * time.Millisecond,
		Log:      log.Discard(),
	}

	start := time.Now()
	_, err := loader.Load(context.Background())
	require.ErrorIs(t, err, ErrSDKUnavailable)
	require.Less(t, time.Since(start), time.Second)
}

type countingLoader struct {
	calls int
	sdk   SDK
	err   error
}

func (l *countingLoader) Load(context.Context) (SDK, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.sdk, nil
}

func Test_Bridge_Open(t *testing.T) {
	sdk := &fakeSDK{}
	loader := &countingLoader{sdk: sdk}
	bridge := NewBridge(loader, log.Discard(), "https://checkout.example.com/sdk.js", "")

	checkout, err := bridge.Open(context.Background(), validConfig())
	require.NoError(t, err)
	require.Equal(t, "session-1", checkout.SessionID)
	require.Equal(t, "payment-button", checkout.ButtonID)
	require.True(t, checkout.AutoOpen)
	require.Equal(t, "50.00", checkout.Config["amount_tax_exempt"])

	reloaded, err := bridge.Reload(context.Background(), "session-1", validConfig())
	require.NoError(t, err)
	require.False(t, reloaded.AutoOpen)
	require.Equal(t, []string{"session-1"}, sdk.reloads)

	// the sdk is loaded once and reused
	require.Equal(t, 1, loader.calls)
}

func Test_Bridge_Failures(t *testing.T) {
	bad := validConfig()
	bad.Production = true
	bridge := NewBridge(&countingLoader{sdk: &fakeSDK{}}, log.Discard(), "", "btn")
	_, err := bridge.Open(context.Background(), bad)
	require.ErrorIs(t, err, ErrInvalidConfig)

	unavailable := NewBridge(&countingLoader{err: ErrSDKUnavailable}, log.Discard(), "", "btn")
	_, err = unavailable.Open(context.Background(), validConfig())
	require.ErrorIs(t, err, ErrSDKUnavailable)
	_, err = unavailable.Reload(context.Background(), "s", validConfig())
	require.ErrorIs(t, err, ErrSDKUnavailable)

	boom := errors.New("provider down")
	failing := NewBridge(&countingLoader{sdk: &fakeSDK{initErr: boom}}, log.Discard(), "", "btn")
	_, err = failing.Open(context.Background(), validConfig())
	require.ErrorIs(t, err, boom)
}
