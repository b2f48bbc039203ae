// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails describes one request sent by sendRequest.
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// sendRequest sends the request to server, checks the status code and returns the body.
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	var reqBody io.Reader
	if details.Body != nil {
		if s, ok := details.Body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			b, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewReader(b)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBody)
	require.NoError(t, err, "Failed to create request")
	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range details.Headers {
		req.Header.Set(k, v)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch, body: %s", body)
	return body
}

// verifyErrorCode checks the code of a JSON error body.
func verifyErrorCode(t *testing.T, body []byte, expectedCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Error body is not JSON: %s", body)
	assert.Equal(t, expectedCode, errResp.Error.Code)
}

// newDevRouter mounts routes behind the development profile middleware.
func newDevRouter(mount func(r chi.Router)) *httptest.Server {
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(testLogger))
	r.Group(func(r chi.Router) {
		r.Use(middleware.DevProfileContextMiddleware)
		mount(r)
	})
	return httptest.NewServer(r)
}

func profileHeader(id string) map[string]string {
	return map[string]string{middleware.ProfileIDHeader: id}
}
