// Package monitor connects to production monitoring APIs. Only credential
// checks are implemented, no production data is fetched.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/levenlabs/go-lflag"

	"github.com/raterudder/solarledger/pkg/types"
)

var (
	ErrUnknownProvider    = errors.New("unknown monitoring provider")
	ErrInvalidCredentials = errors.New("invalid api credentials")
)

// invalidCredentialsMessage is shown to the user when a connection is rejected.
const invalidCredentialsMessage = "Invalid API credentials"

// Connector validates credentials against a monitoring API.
type Connector interface {
	// Connect checks the credentials and returns the connection status.
	Connect(ctx context.Context, creds types.MonitorCredentials) (types.MonitorStatus, error)
}

// Configured sets up a Map where every provider uses the stub connector with
// the flag configured delay.
func Configured() *Map {
	m := NewMap()
	delay := lflag.Duration("monitor-connect-delay", 1500*time.Millisecond, "Simulated latency of a monitoring API connection")
	lflag.Do(func() {
		stub := NewStub(*delay)
		for _, p := range Providers() {
			m.SetConnector(p.ID, stub)
		}
	})
	return m
}

// Map manages the connector for each provider.
type Map struct {
	mu         sync.Mutex
	connectors map[string]Connector
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{
		connectors: make(map[string]Connector),
	}
}

// Connect validates creds with the connector for creds.Provider.
func (m *Map) Connect(ctx context.Context, creds types.MonitorCredentials) (types.MonitorStatus, error) {
	m.mu.Lock()
	c, ok := m.connectors[creds.Provider]
	m.mu.Unlock()

	if !ok {
		return types.MonitorStatus{}, fmt.Errorf("%w: %q", ErrUnknownProvider, creds.Provider)
	}
	return c.Connect(ctx, creds)
}

// SetConnector sets the connector for a provider. This is primarily used for
// testing.
func (m *Map) SetConnector(provider string, c Connector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectors[provider] = c
}

// Providers lists the supported monitoring APIs.
func Providers() []types.MonitorProviderInfo {
	creds := []types.MonitorCredential{
		{Field: "apiKey", Name: "API Key", Type: "password", Required: true},
		{Field: "systemID", Name: "System ID", Type: "string", Required: true},
	}
	return []types.MonitorProviderInfo{
		{ID: "enphase", Name: "Enphase (Enlighten)", Credentials: creds},
		{ID: "solaredge", Name: "SolarEdge", Credentials: creds},
		{ID: "tesla", Name: "Tesla (Powerwall)", Credentials: creds},
		{ID: "manual", Name: "Manual Override", Credentials: creds},
	}
}
