package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDocument(t *testing.T) {
	var (
		gotPath  string
		gotQuery string
		gotAuth  string
		gotBody  map[string]interface{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"transactionId":"tx1","results":[{"id":"doc-1","operation":"create"}]}`))
	}))
	defer srv.Close()

	c := NewClient("proj", "production", "2023-05-03", "sk-write", WithBaseURL(srv.URL+"/"))

	id, err := c.CreateDocument(context.Background(), map[string]string{"_type": "submission", "name": "A"})
	require.NoError(t, err)

	assert.Equal(t, "doc-1", id)
	assert.Equal(t, "/v2023-05-03/data/mutate/production", gotPath)
	assert.Equal(t, "returnIds=true", gotQuery)
	assert.Equal(t, "Bearer sk-write", gotAuth)

	mutations, ok := gotBody["mutations"].([]interface{})
	require.True(t, ok)
	require.Len(t, mutations, 1)
	create := mutations[0].(map[string]interface{})["create"].(map[string]interface{})
	assert.Equal(t, "submission", create["_type"])
	assert.Equal(t, "A", create["name"])
}

func TestCreateDocument_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
	}))
	defer srv.Close()

	c := NewClient("proj", "production", "v2023-05-03", "bad", WithBaseURL(srv.URL))

	_, err := c.CreateDocument(context.Background(), map[string]string{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestCreateDocument_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient("proj", "production", "2023-05-03", "sk", WithBaseURL(srv.URL))
	_, err := c.CreateDocument(ctx, map[string]string{})

	assert.ErrorIs(t, err, context.Canceled)
}
