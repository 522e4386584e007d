package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoHandler повторяет тело запроса в ответе. Пути /empty и /cached отвечают
// без тела, как выход из сессии и ответ If-None-Match.
func echoHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/empty":
		w.WriteHeader(http.StatusNoContent)
		return
	case "/cached":
		w.Header().Set("ETag", `W/"inv-3"`)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	body, _ := io.ReadAll(r.Body)
	defer r.Body.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"received":` + string(body) + `}`))
}

func compress(t *testing.T, s string) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return &buf
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	var r io.Reader = res.Body
	if res.Header.Get("Content-Encoding") == "gzip" {
		gr, err := gzip.NewReader(res.Body)
		require.NoError(t, err)
		defer gr.Close()
		r = gr
	}
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(body)
}

func TestGzipMiddleware(t *testing.T) {
	type want struct {
		statusCode      int
		contentEncoding string
		body            string
	}

	tests := []struct {
		name       string
		path       string
		body       string
		compressed bool
		headers    map[string]string
		want       want
	}{
		{
			name:    "client accepts gzip",
			path:    "/api/accounts/generate",
			body:    `{"quantity":5}`,
			headers: map[string]string{"Accept-Encoding": "gzip, deflate"},
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "gzip",
				body:            `{"received":{"quantity":5}}`,
			},
		},
		{
			name: "client does not accept gzip",
			path: "/api/accounts/generate",
			body: `{"quantity":5}`,
			want: want{
				statusCode: http.StatusOK,
				body:       `{"received":{"quantity":5}}`,
			},
		},
		{
			name:       "compressed request body",
			path:       "/api/support/messages",
			body:       `{"text":"hello"}`,
			compressed: true,
			headers:    map[string]string{"Accept-Encoding": "gzip"},
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "gzip",
				body:            `{"received":{"text":"hello"}}`,
			},
		},
		{
			name:    "no content is not encoded",
			path:    "/empty",
			headers: map[string]string{"Accept-Encoding": "gzip"},
			want:    want{statusCode: http.StatusNoContent},
		},
		{
			name:    "not modified is not encoded",
			path:    "/cached",
			headers: map[string]string{"Accept-Encoding": "gzip", "If-None-Match": `W/"inv-3"`},
			want:    want{statusCode: http.StatusNotModified},
		},
		{
			name:    "malformed compressed body",
			path:    "/api/support/messages",
			body:    "definitely not gzip",
			headers: map[string]string{"Content-Encoding": "gzip", "Accept-Encoding": "gzip"},
			want: want{
				statusCode: http.StatusBadRequest,
				body:       http.StatusText(http.StatusBadRequest) + "\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reqBody io.Reader = strings.NewReader(tt.body)
			if tt.compressed {
				reqBody = compress(t, tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, tt.path, reqBody)
			if tt.compressed {
				req.Header.Set("Content-Encoding", "gzip")
			}
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			GzipMiddleware(http.HandlerFunc(echoHandler)).ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			assert.Equal(t, tt.want.statusCode, res.StatusCode)
			assert.Equal(t, tt.want.contentEncoding, res.Header.Get("Content-Encoding"))
			assert.Equal(t, tt.want.body, readBody(t, res))
		})
	}
}

func TestGzipMiddleware_ReusesPooledWriter(t *testing.T) {
	h := GzipMiddleware(http.HandlerFunc(echoHandler))

	payloads := []string{`{"quantity":1}`, `{"quantity":250}`, `"third"`}
	for _, p := range payloads {
		req := httptest.NewRequest(http.MethodPost, "/api/accounts/generate", strings.NewReader(p))
		req.Header.Set("Accept-Encoding", "gzip")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		res := w.Result()
		assert.Equal(t, "gzip", res.Header.Get("Content-Encoding"))
		assert.Equal(t, `{"received":`+p+`}`, readBody(t, res))
		res.Body.Close()
	}
}

func TestGzipMiddleware_EmptyResponseThenBody(t *testing.T) {
	h := GzipMiddleware(http.HandlerFunc(echoHandler))

	req := httptest.NewRequest(http.MethodPost, "/empty", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	req = httptest.NewRequest(http.MethodPost, "/api/accounts/generate", strings.NewReader(`"next"`))
	req.Header.Set("Accept-Encoding", "gzip")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, `{"received":"next"}`, readBody(t, res))
}
