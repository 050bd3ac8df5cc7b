package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnp-05/sumativatr1/internal/client/models"
	"github.com/johnp-05/sumativatr1/internal/common"
	"github.com/stretchr/testify/require"
)

func TestRESTStore_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/tasks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"comprar pan","description":"","completed":false,"createdAt":"2025-01-02T10:00:00Z"}]`))
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, 3*time.Second)
	tasks, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, 1, tasks[0].ID)
	require.Equal(t, "comprar pan", tasks[0].Title)
	require.Equal(t, 2025, tasks[0].CreatedAt.Year())
}

func TestRESTStore_CreateSendsCreatedAt(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"title":"nueva","description":"detalle","completed":false,"createdAt":"2025-01-02T10:00:00Z"}`))
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, 3*time.Second)
	task, err := s.Create(context.Background(), "nueva", "detalle")
	require.NoError(t, err)
	require.Equal(t, 7, task.ID)

	require.Equal(t, "nueva", got["title"])
	require.Equal(t, false, got["completed"])
	require.NotEmpty(t, got["createdAt"], "client stamps createdAt")
}

func TestRESTStore_UpdateSendsOnlySetFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/tasks/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"title":"t","description":"","completed":true,"createdAt":"2025-01-02T10:00:00Z"}`))
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, 3*time.Second)
	done := true
	_, err := s.Update(context.Background(), 3, models.TaskUpdate{Completed: &done})
	require.NoError(t, err)

	require.Equal(t, true, got["completed"])
	_, hasTitle := got["title"]
	require.False(t, hasTitle, "unset fields are omitted from the PATCH body")
}

func TestRESTStore_NotFoundMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, 3*time.Second)

	_, err := s.Get(context.Background(), 42)
	require.True(t, errors.Is(err, common.ErrorNotFound))

	err = s.Delete(context.Background(), 42)
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestRESTStore_ServerErrorIsInternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, 3*time.Second)
	_, err := s.List(context.Background())
	require.True(t, errors.Is(err, common.ErrorInternal))
}

func TestRESTStore_UnreachableServer(t *testing.T) {
	s := NewRESTStore("http://127.0.0.1:1", time.Second)
	_, err := s.List(context.Background())
	require.Error(t, err)
}
