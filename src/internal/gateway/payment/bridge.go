package payment

import (
	"context"
	"sync"

	"donation-service/src/internal/model"
	"donation-service/src/pkg/log"
)

// Bridge opens the provider overlay. The SDK is loaded lazily on first use
// and kept once found.
type Bridge struct {
	Loader    Loader
	Log       log.Log
	ScriptURL string
	ButtonID  string

	mu  sync.Mutex
	sdk SDK
}

func NewBridge(loader Loader, logger log.Log, scriptURL, buttonID string) *Bridge {
	if buttonID == "" {
		buttonID = "payment-button"
	}
	return &Bridge{
		Loader:    loader,
		Log:       logger,
		ScriptURL: scriptURL,
		ButtonID:  buttonID,
	}
}

func (b *Bridge) load(ctx context.Context) (SDK, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sdk != nil {
		return b.sdk, nil
	}
	sdk, err := b.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	b.sdk = sdk
	return sdk, nil
}

// Open initializes a checkout and returns the overlay descriptor. AutoOpen
// tells the page to click the hidden provider button right away.
func (b *Bridge) Open(ctx context.Context, cfg Config) (*model.Checkout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sdk, err := b.load(ctx)
	if err != nil {
		return nil, err
	}
	session, err := sdk.Init(ctx, cfg)
	if err != nil {
		b.Log.Error("payment-bridge", err.Error(), "Open", cfg.Description)
		return nil, err
	}
	return &model.Checkout{
		SessionID: session.ID,
		ScriptURL: b.ScriptURL,
		ButtonID:  b.ButtonID,
		AutoOpen:  true,
		Config:    cfg.Params(),
	}, nil
}

// Reload pushes fresh parameters to an open overlay.
func (b *Bridge) Reload(ctx context.Context, sessionID string, cfg Config) (*model.Checkout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sdk, err := b.load(ctx)
	if err != nil {
		b.Log.Error("payment-bridge", "reload without payment sdk", "Reload", sessionID)
		return nil, err
	}
	if err := sdk.Reload(ctx, sessionID, cfg); err != nil {
		return nil, err
	}
	return &model.Checkout{
		SessionID: sessionID,
		ScriptURL: b.ScriptURL,
		ButtonID:  b.ButtonID,
		Config:    cfg.Params(),
	}, nil
}
