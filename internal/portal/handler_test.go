package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockStore struct {
	inserts [][2]string
	err     error
}

func (m *mockStore) StoreUser(ctx context.Context, fullName, email string) error {
	if m.err != nil {
		return m.err
	}
	m.inserts = append(m.inserts, [2]string{fullName, email})
	return nil
}

func newTestRouter(s UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/store-user", NewHandler(s).StoreUser)
	return r
}

func postUser(r *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/store-user", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStoreUser_Success(t *testing.T) {
	store := &mockStore{}
	w := postUser(newTestRouter(store), map[string]string{
		"fullName": "Ana Condori",
		"email":    "ana@example.com",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if len(store.inserts) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(store.inserts))
	}
	if store.inserts[0] != [2]string{"Ana Condori", "ana@example.com"} {
		t.Fatalf("unexpected insert values: %v", store.inserts[0])
	}
}

func TestStoreUser_InsertFailureBecomesStructuredError(t *testing.T) {
	store := &mockStore{err: errors.New("connection refused")}
	w := postUser(newTestRouter(store), map[string]string{
		"fullName": "Ana Condori",
		"email":    "ana@example.com",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 with error payload, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["status"] != "error" {
		t.Fatalf("expected error status, got %q", resp["status"])
	}
}

func TestStoreUser_RejectsMissingFields(t *testing.T) {
	store := &mockStore{}
	w := postUser(newTestRouter(store), map[string]string{"fullName": "Sin correo"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if len(store.inserts) != 0 {
		t.Fatal("store must not be invoked for an invalid payload")
	}
}
