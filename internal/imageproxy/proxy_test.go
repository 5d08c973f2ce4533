package imageproxy

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestHandler(upstream *httptest.Server) *Handler {
	return &Handler{
		client:  &http.Client{Timeout: 2 * time.Second},
		baseURL: upstream.URL + "/uc?id=",
	}
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/image/:fileId", h.GetImage)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetImage_RejectsBadIDBeforeUpstream(t *testing.T) {
	var hits int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer upstream.Close()

	h := newTestHandler(upstream)

	// Drive the handler directly so the traversal id is exactly what the
	// validation sees, independent of router segment handling.
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/image/x", nil)
	c.Params = gin.Params{{Key: "fileId", Value: "../etc/passwd"}}
	h.GetImage(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("upstream must not be contacted for an invalid id")
	}
}

func TestGetImage_AcceptsTokenID(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer upstream.Close()

	r := newTestRouter(newTestHandler(upstream))
	w := get(r, "/api/image/AbC123_-")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("expected image/png, got %q", got)
	}
	if got := w.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("expected public cache directive, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard CORS, got %q", got)
	}
	if w.Body.String() != "png-bytes" {
		t.Errorf("expected body re-streamed, got %q", w.Body.String())
	}
}

func TestGetImage_SendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/jpeg")
	}))
	defer upstream.Close()

	get(newTestRouter(newTestHandler(upstream)), "/api/image/abc")

	if gotUA != userAgent {
		t.Fatalf("expected browser user agent, got %q", gotUA)
	}
}

func TestGetImage_UpstreamErrorBecomesNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer upstream.Close()

	w := get(newTestRouter(newTestHandler(upstream)), "/api/image/abc")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestGetImage_CoercesNonImageContentType(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer upstream.Close()

	w := get(newTestRouter(newTestHandler(upstream)), "/api/image/abc")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Fatalf("expected coercion to image/jpeg, got %q", got)
	}
}

func TestGetImage_TimeoutBecomesGatewayTimeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer upstream.Close()

	h := &Handler{
		client:  &http.Client{Timeout: 50 * time.Millisecond},
		baseURL: upstream.URL + "/uc?id=",
	}
	w := get(newTestRouter(h), "/api/image/abc")

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected status 504, got %d", w.Code)
	}
}

func TestGetImage_TransportErrorBecomesServiceUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // nothing listening anymore

	w := get(newTestRouter(newTestHandler(upstream)), "/api/image/abc")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}
