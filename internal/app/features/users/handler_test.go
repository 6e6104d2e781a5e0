package users

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/gatherhub/gatherhub/internal/testutil"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(testutil.SetupTestDB(t), zap.NewNop())
}

func TestSave_UpsertCycle(t *testing.T) {
	h := newTestHandler(t)
	ctx := testutil.TestContext(t)

	email := testutil.UniqueEmail("save")

	save := func(name, photo string) *httptest.ResponseRecorder {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/save-user", map[string]any{
			"email": email,
			"name":  name,
			"photo": photo,
		})
		rr := httptest.NewRecorder()
		h.Save(rr, req)
		return rr
	}

	if rr := save("Alice", "a.png"); rr.Code != http.StatusOK {
		t.Fatalf("first save status = %d, body %s", rr.Code, rr.Body.String())
	}

	first, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}

	if rr := save("Alice Renamed", "b.png"); rr.Code != http.StatusOK {
		t.Fatalf("second save status = %d", rr.Code)
	}

	second, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if second.ID != first.ID {
		t.Error("re-save created a new document")
	}
	if second.Name != "Alice Renamed" || second.Photo != "b.png" {
		t.Errorf("profile not refreshed: %+v", second)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("createdAt changed on re-save")
	}
}

func TestSave_Validation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"missing email", map[string]any{"name": "Alice"}, "email is required"},
		{"bad email", map[string]any{"email": "not-an-email"}, "email is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/save-user", tt.body)
			rr := httptest.NewRecorder()
			h.Save(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rr.Code)
			}
			var resp struct {
				Message string `json:"message"`
			}
			testutil.DecodeJSON(t, rr, &resp)
			if resp.Message != tt.want {
				t.Errorf("message = %q, want %q", resp.Message, tt.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	h := newTestHandler(t)
	ctx := testutil.TestContext(t)

	rr := httptest.NewRecorder()
	h.Total(rr, httptest.NewRequest(http.MethodGet, "/totalUsers", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		TotalUsers int64 `json:"totalUsers"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.TotalUsers != 0 {
		t.Errorf("TotalUsers = %d on empty collection", resp.TotalUsers)
	}

	if _, err := h.Users.Upsert(ctx, testutil.UniqueEmail("count"), "Counted", ""); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	rr = httptest.NewRecorder()
	h.Total(rr, httptest.NewRequest(http.MethodGet, "/totalUsers", nil))
	testutil.DecodeJSON(t, rr, &resp)
	if resp.TotalUsers != 1 {
		t.Errorf("TotalUsers = %d, want 1", resp.TotalUsers)
	}
}
