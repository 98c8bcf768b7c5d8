package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

// HTTPSDK is the server side of the provider's checkout API.
type HTTPSDK struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewHTTPSDK(baseURL, apiKey string, timeout time.Duration) *HTTPSDK {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPSDK{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Timeout: timeout,
	}
}

// Probe is a ProbeFunc backed by the provider's health endpoint.
func (s *HTTPSDK) Probe(ctx context.Context) (SDK, bool) {
	a := fiber.Get(s.BaseURL + "/health").Timeout(s.timeout(ctx))
	code, _, errs := a.Bytes()
	if len(errs) > 0 || code != fiber.StatusOK {
		return nil, false
	}
	return s, true
}

func (s *HTTPSDK) Init(ctx context.Context, cfg Config) (*Session, error) {
	body, err := s.post(ctx, "/checkout/sessions", cfg.Params())
	if err != nil {
		return nil, err
	}
	id := gjson.GetBytes(body, "session.id")
	if !id.Exists() {
		id = gjson.GetBytes(body, "id")
	}
	if id.String() == "" {
		return nil, fmt.Errorf("payment provider returned no session id")
	}
	return &Session{ID: id.String()}, nil
}

func (s *HTTPSDK) Reload(ctx context.Context, sessionID string, cfg Config) error {
	_, err := s.post(ctx, "/checkout/sessions/"+sessionID+"/reload", cfg.Params())
	return err
}

func (s *HTTPSDK) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := fiber.Post(s.BaseURL + path).Timeout(s.timeout(ctx)).JSON(payload)
	if s.APIKey != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+s.APIKey)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("payment provider %s: %w", path, errs[0])
	}
	if code >= fiber.StatusBadRequest {
		msg := gjson.GetBytes(body, "message").String()
		return nil, fmt.Errorf("payment provider %s: status %d %s", path, code, msg)
	}
	return body, nil
}

// timeout honours the caller's deadline when it is shorter.
func (s *HTTPSDK) timeout(ctx context.Context) time.Duration {
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < s.Timeout {
			if left <= 0 {
				return time.Millisecond
			}
			return left
		}
	}
	return s.Timeout
}
