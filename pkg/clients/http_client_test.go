package clients

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/readings":
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[]`))
		case "/busy":
			assert.Equal(t, "probe", r.Header.Get("X-Request-Source"))
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewHTTPClient()

	tests := []struct {
		name           string
		path           string
		headers        http.Header
		expectedStatus int
		expectedBody   string
		expectedHeader string
	}{
		{name: "Readings", path: "/api/readings", expectedStatus: http.StatusOK, expectedBody: `[]`},
		{
			name:           "Rate limited",
			path:           "/busy",
			headers:        http.Header{"X-Request-Source": []string{"probe"}},
			expectedStatus: http.StatusTooManyRequests,
			expectedHeader: "7",
		},
		{name: "Not found", path: "/missing", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statusCode, body, headers, err := client.Get(server.URL+tt.path, tt.headers)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, statusCode)
			assert.Equal(t, tt.expectedBody, string(body))
			if tt.expectedHeader != "" {
				assert.Equal(t, tt.expectedHeader, headers.Get("Retry-After"))
			}
		})
	}

	assert.Empty(t, tests[1].headers.Get("Accept"), "caller headers must not be modified")
}

func TestHTTPClient_GetUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, _, _, err := NewHTTPClient().Get(url, nil)
	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)

	client := NewHTTPClient()
	client.SetClient(mock)

	mock.EXPECT().Get("http://meter/api/readings", nil).Return(0, nil, nil, errors.New("down"))

	_, _, _, err := client.Get("http://meter/api/readings", nil)
	assert.EqualError(t, err, "down")
}
