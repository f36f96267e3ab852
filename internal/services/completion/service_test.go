package completion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quillforge/quill/internal/config"
	"github.com/quillforge/quill/internal/infrastructure/generator"
	"github.com/quillforge/quill/internal/services/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceFor(t *testing.T, handler http.HandlerFunc) *completion.Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Cleanup(config.SetGeneratorURL(server.URL))

	svc, err := completion.NewService(generator.NewService())
	require.NoError(t, err)
	return svc
}

func TestFetchSuccess(t *testing.T) {
	svc := newServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": "// loop\nfor i in range(10): pass"}`))
	})

	res := svc.Fetch(context.Background(), "write a loop")

	assert.Equal(t, completion.OutcomeSuccess, res.Outcome)
	assert.Equal(t, "for i in range(10): pass", res.Code)
	assert.True(t, res.Usable())
}

func TestFetchSendsFixedBudget(t *testing.T) {
	var seen struct {
		Prompt    string `json:"prompt"`
		MaxTokens int    `json:"max_tokens"`
	}
	svc := newServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, jsonDecode(r, &seen))
		w.Write([]byte(`{"response": "x := 1"}`))
	})

	svc.Fetch(context.Background(), "write a loop")

	assert.Equal(t, "write a loop", seen.Prompt)
	assert.Equal(t, 500, seen.MaxTokens)
}

func TestFetchEmptyAfterSanitisation(t *testing.T) {
	svc := newServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": "# only commentary\n// nothing else"}`))
	})

	res := svc.Fetch(context.Background(), "explain")

	assert.Equal(t, completion.OutcomeEmpty, res.Outcome)
	assert.Equal(t, "", res.Code)
	assert.False(t, res.Usable())
}

func TestFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // nothing listening any more

	t.Cleanup(config.SetGeneratorURL(url))

	svc, err := completion.NewService(generator.NewService())
	require.NoError(t, err)

	res := svc.Fetch(context.Background(), "anything")

	assert.Equal(t, completion.OutcomeFailure, res.Outcome)
	assert.Equal(t, "", res.Code)
	assert.Error(t, res.Err)
}

func TestFetchMalformedResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-JSON body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json at all"))
			},
		},
		{
			name: "missing response field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"output": "wrong shape"}`))
			},
		},
		{
			name: "non-OK status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newServiceFor(t, tt.handler)

			res := svc.Fetch(context.Background(), "anything")

			assert.Equal(t, completion.OutcomeFailure, res.Outcome)
			assert.Equal(t, "", res.Code)
		})
	}
}

func TestNewServiceRequiresBackend(t *testing.T) {
	_, err := completion.NewService(nil)
	assert.Error(t, err)
}

func jsonDecode(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
