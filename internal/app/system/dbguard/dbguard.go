// Package dbguard supervises the Mongo connection for the whole
// service.
//
// The guard owns a small availability state machine
// (Disconnected → Connecting → Connected → Degraded → Connected …):
// startup runs a bounded retry loop with exponential backoff, and a
// per-request middleware pings the server before any data-touching
// handler runs. A failed ping marks the guard Degraded and makes
// exactly one immediate, bounded reconnect attempt inline; if that
// also fails the request is answered with a 503 envelope instead of
// reaching a handler. The process never refuses to start because the
// store is down; it serves 503 until the store comes back.
package dbguard

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
)

// State is the guard's view of store availability.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDegraded:
		return "degraded"
	default:
		return "disconnected"
	}
}

// Guard wraps the Mongo client with availability tracking. It is built
// once at startup and passed by reference into the router; there is no
// package-level connection state.
type Guard struct {
	client *mongo.Client
	log    *zap.Logger

	mu    sync.RWMutex
	state State
}

// New constructs the client handle for uri. The driver connects
// lazily, so this performs no I/O; call Connect to establish and
// verify the connection.
func New(uri string, log *zap.Logger) (*Guard, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeouts.Ping())
	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, err
	}
	return &Guard{client: client, log: log, state: StateDisconnected}, nil
}

// Client returns the underlying Mongo client.
func (g *Guard) Client() *mongo.Client { return g.client }

// Database returns a handle on the named database. The handle is valid
// even while the guard is disconnected; operations on it fail until a
// connection is established.
func (g *Guard) Database(name string) *mongo.Database {
	return g.client.Database(name)
}

// State returns the current availability state.
func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Guard) setState(s State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

// Connect verifies connectivity with up to attempts pings, sleeping
// baseDelay after the first failure and doubling the delay after each
// subsequent one. On success the guard is Connected. If every attempt
// fails the guard is left Disconnected and the last ping error is
// returned; the caller should log it and keep serving, letting the
// per-request middleware recover when the store returns.
func (g *Guard) Connect(ctx context.Context, attempts int, baseDelay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	g.setState(StateConnecting)

	delay := baseDelay
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				g.setState(StateDisconnected)
				return ctx.Err()
			}
			delay *= 2
		}
		if err := g.ping(ctx); err != nil {
			lastErr = err
			g.log.Warn("store connection attempt failed",
				zap.Int("attempt", i+1),
				zap.Int("attempts", attempts),
				zap.Error(err))
			continue
		}
		g.setState(StateConnected)
		g.log.Info("store connection established", zap.Int("attempt", i+1))
		return nil
	}

	g.setState(StateDisconnected)
	return lastErr
}

// Ping issues one bounded liveness probe and updates the state.
func (g *Guard) Ping(ctx context.Context) error {
	if err := g.ping(ctx); err != nil {
		g.setState(StateDegraded)
		return err
	}
	g.setState(StateConnected)
	return nil
}

func (g *Guard) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	return g.client.Ping(ctx, readpref.Primary())
}

// Disconnect tears the client down during shutdown.
func (g *Guard) Disconnect(ctx context.Context) error {
	g.setState(StateDisconnected)
	return g.client.Disconnect(ctx)
}

// Middleware gates every data-touching route behind a liveness probe.
// On probe failure it makes a single immediate reconnect attempt (no
// backoff) within the request; if that also fails the request gets a
// 503. Both probes are bounded by the ping timeout, so a request is
// never held hostage by a dead store.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := g.Ping(r.Context()); err != nil {
			if err = g.Ping(r.Context()); err != nil {
				g.log.Warn("store unavailable", zap.Error(err), zap.String("path", r.URL.Path))
				httpjson.Error(w, g.log, apperr.Wrap(apperr.KindUnavailable, "service temporarily unavailable", err))
				return
			}
			g.log.Info("store connection recovered inline")
		}
		next.ServeHTTP(w, r)
	})
}
