package game

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- words.Supplier ---

type MockWordSupplier struct {
	mock.Mock
}

func (m *MockWordSupplier) Word(language string) string {
	args := m.Called(language)
	return args.String(0)
}

// --- Connection ---

// recorderConn captures everything the orchestrator writes to one client.
type recorderConn struct {
	locker   sync.Mutex
	sent     []Envelope
	failSend bool
	closed   bool
}

func (c *recorderConn) Send(data []byte) error {
	c.locker.Lock()
	defer c.locker.Unlock()

	if c.failSend {
		return errors.New("connection closed")
	}
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	c.sent = append(c.sent, envelope)
	return nil
}

func (c *recorderConn) Close(reason string) {
	c.locker.Lock()
	defer c.locker.Unlock()
	c.closed = true
}

func (c *recorderConn) types() []string {
	c.locker.Lock()
	defer c.locker.Unlock()

	types := []string{}
	for _, envelope := range c.sent {
		types = append(types, envelope.Type)
	}
	return types
}

func (c *recorderConn) last(t *testing.T) Envelope {
	t.Helper()
	c.locker.Lock()
	defer c.locker.Unlock()

	require.NotEmpty(t, c.sent, "expected at least one message on the connection")
	return c.sent[len(c.sent)-1]
}

func (c *recorderConn) count() int {
	c.locker.Lock()
	defer c.locker.Unlock()
	return len(c.sent)
}

// decodePayload unmarshals the last message's payload into out and asserts
// its envelope type.
func decodePayload(t *testing.T, c *recorderConn, wantType string, out any) {
	t.Helper()
	envelope := c.last(t)
	require.Equal(t, wantType, envelope.Type)
	require.NoError(t, json.Unmarshal(envelope.Payload, out))
}
