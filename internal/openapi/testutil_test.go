package openapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/config"
	"github.com/Puiching-Memory/LMT4SwanLab/internal/secret"
	"github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase"
	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
	interceptors_inflight "github.com/Puiching-Memory/LMT4SwanLab/pkg/interceptors/in-flight"
	ltest "github.com/Puiching-Memory/LMT4SwanLab/pkg/test"
)

const testApiKey = "test-api-key"

func newTestClient(t ltest.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	instance, err := cbhttp.NewInstance(&cbhttp.Config{Timeout: 10 * time.Second})
	assert.NoError(t, err)
	limiter := interceptors_inflight.NewInterceptor(interceptors_inflight.Config{})
	connections, err := clientbase.NewConnections(&clientbase.Config{UserAgent: "test"}, instance, limiter)
	assert.NoError(t, err)

	cfg := &config.Config{
		ApiHost: server.URL,
		WebHost: server.URL,
	}
	return NewClient(cfg, secret.NewStaticStore(testApiKey), connections)
}

func writeJson(w http.ResponseWriter, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(value)
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	writeJson(w, map[string]interface{}{
		"code":   200,
		"errmsg": "",
		"data":   data,
	})
}

func writeEnvelopeError(w http.ResponseWriter, code int, errmsg string) {
	writeJson(w, map[string]interface{}{
		"code":   code,
		"errmsg": errmsg,
		"data":   nil,
	})
}

// handleLogin responds to the login endpoint, handing out sids in sequence
// so tests can observe session renewal.
func handleLogin(mux *http.ServeMux, username string, sids ...string) *int {
	logins := new(int)
	next := 0
	mux.HandleFunc("/login/api_key", func(w http.ResponseWriter, r *http.Request) {
		*logins++
		if r.Header.Get("authorization") != testApiKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		sid := "sid-default"
		if next < len(sids) {
			sid = sids[next]
			next++
		}
		writeJson(w, map[string]interface{}{
			"sid":       sid,
			"expiredAt": "2099-01-01T00:00:00Z",
			"userInfo":  map[string]string{"username": username},
		})
	})
	return logins
}

func sidFromCookie(r *http.Request) string {
	cookie, err := r.Cookie("sid")
	if err != nil {
		return ""
	}
	return cookie.Value
}
