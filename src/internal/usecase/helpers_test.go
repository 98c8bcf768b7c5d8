package usecase

import (
	"encoding/json"
	"sync"
	"testing"

	httpError "donation-service/src/pkg/http-error"
	"donation-service/src/pkg/kafka"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProducer keeps every published message for assertions.
type recordingProducer struct {
	mu       sync.Mutex
	messages []kafka.Message
}

func (p *recordingProducer) Publish(message *kafka.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, *message)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

func (p *recordingProducer) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.messages))
	for _, m := range p.messages {
		out = append(out, m.Topic)
	}
	return out
}

func (p *recordingProducer) decode(t *testing.T, i int, v interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	require.Greater(t, len(p.messages), i)
	require.NoError(t, json.Unmarshal(p.messages[i].Value, v))
}

func testDeps() (log.Log, *validator.Validate) {
	return log.Discard(), validation.New()
}

func requireError(t *testing.T, err error, code int) *httpError.CommonError {
	t.Helper()
	require.Error(t, err)
	ce, ok := err.(*httpError.CommonError)
	require.True(t, ok, "expected *CommonError, got %T", err)
	assert.Equal(t, code, ce.Code)
	return ce
}
