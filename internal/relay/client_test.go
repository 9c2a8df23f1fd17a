package relay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSuccess(t *testing.T) {
	var (
		gotAccept string
		gotName   string
		gotEmail  string
		gotEvents []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotAccept = r.Header.Get("Accept")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotName = r.FormValue("name")
		gotEmail = r.FormValue("email")
		gotEvents = r.MultipartForm.Value["events"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Destination: srv.URL, PageOrigin: "http://localhost:8000"})
	err := client.Submit(context.Background(), Fields{Name: "Ada", Email: "ada@x.com", Events: []string{"Talk", "Workshop"}})

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "Ada", gotName)
	assert.Equal(t, "ada@x.com", gotEmail)
	assert.Equal(t, []string{"Talk", "Workshop"}, gotEvents)
}

func TestSubmitServerErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "error field", status: http.StatusUnprocessableEntity, body: `{"error":"Email is invalid"}`, wantMsg: "Email is invalid"},
		{name: "errors list", status: http.StatusBadRequest, body: `{"errors":[{"message":"a"},{"message":"b"}]}`, wantMsg: "a, b"},
		{name: "no json", status: http.StatusInternalServerError, body: `<html>oops</html>`, wantMsg: MessageGenericFailure},
		{name: "json without message", status: http.StatusForbidden, body: `{}`, wantMsg: MessageGenericFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(Config{Destination: srv.URL}).Submit(context.Background(), Fields{Name: "Ada", Email: "ada@x.com"})

			var serverErr *ServerError
			require.True(t, errors.As(err, &serverErr), "expected ServerError, got %v", err)
			assert.Equal(t, tt.status, serverErr.StatusCode)
			assert.Equal(t, tt.wantMsg, UserMessage(err))
		})
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	destination := srv.URL
	srv.Close()

	err := NewClient(Config{Destination: destination, PageOrigin: "http://localhost:8000"}).
		Submit(context.Background(), Fields{Name: "Ada", Email: "ada@x.com"})

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "expected NetworkError, got %v", err)
	assert.Equal(t, MessageGenericFailure, UserMessage(err))
}

func TestSubmitFromLocalFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	destination := srv.URL
	srv.Close()

	err := NewClient(Config{Destination: destination, PageOrigin: "file:///home/me/site/index.html"}).
		Submit(context.Background(), Fields{Name: "Ada", Email: "ada@x.com"})

	var envErr *EnvironmentError
	require.True(t, errors.As(err, &envErr), "expected EnvironmentError, got %v", err)
	assert.Contains(t, UserMessage(err), "local server")
	assert.Contains(t, envErr.Detail(), "file:///home/me/site/index.html")
}

func TestSubmitFileDestination(t *testing.T) {
	err := NewClient(Config{Destination: "file:///tmp/form"}).
		Submit(context.Background(), Fields{Name: "Ada", Email: "ada@x.com"})

	var envErr *EnvironmentError
	assert.True(t, errors.As(err, &envErr), "expected EnvironmentError, got %v", err)
}

func TestSubmitMissingDestination(t *testing.T) {
	err := NewClient(Config{}).Submit(context.Background(), Fields{Name: "Ada", Email: "ada@x.com"})

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr), "expected NetworkError, got %v", err)
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, MessageGenericFailure, UserMessage(errors.New("boom")))
	assert.Equal(t, "nope", UserMessage(&ServerError{StatusCode: 400, Message: "nope"}))
}

func TestClientTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewClient(Config{Destination: "http://x"}).Timeout())

	custom := NewClient(Config{Destination: "http://x", HTTPClient: &http.Client{Timeout: 8 * time.Second}})
	assert.Equal(t, 8*time.Second, custom.Timeout())

	unbounded := NewClient(Config{Destination: "http://x", HTTPClient: &http.Client{}})
	assert.Equal(t, DefaultTimeout, unbounded.Timeout())
}
