package dbguard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
)

// unroutable per RFC 5737; connection attempts fail fast.
const deadURI = "mongodb://192.0.2.1:27017"

func newDeadGuard(t *testing.T) *Guard {
	t.Helper()

	timeouts.Configure(timeouts.Config{Ping: 150 * time.Millisecond})
	t.Cleanup(timeouts.Reset)

	g, err := New(deadURI, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = g.Disconnect(ctx)
	})
	return g
}

func TestConnect_UnreachableLeavesDisconnected(t *testing.T) {
	g := newDeadGuard(t)

	err := g.Connect(context.Background(), 2, 10*time.Millisecond)
	if err == nil {
		t.Fatal("expected connect failure for unreachable host")
	}
	if g.State() != StateDisconnected {
		t.Errorf("state = %v, want disconnected", g.State())
	}
}

func TestPing_MarksDegraded(t *testing.T) {
	g := newDeadGuard(t)

	if err := g.Ping(context.Background()); err == nil {
		t.Fatal("expected ping failure")
	}
	if g.State() != StateDegraded {
		t.Errorf("state = %v, want degraded", g.State())
	}
}

func TestMiddleware_Returns503WhenStoreDown(t *testing.T) {
	g := newDeadGuard(t)

	h := g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run while the store is unreachable")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/groups", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error != "service_unavailable" {
		t.Errorf("body = %+v", body)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateDisconnected, "disconnected"},
		{StateConnecting, "connecting"},
		{StateConnected, "connected"},
		{StateDegraded, "degraded"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
