package todoserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/store/jsonstore"
)

func setupHandler(t *testing.T) http.Handler {
	t.Helper()
	store, err := NewMemoryStore(nil)
	require.NoError(t, err)
	return NewHandler(store, zerolog.Nop()).Routes()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeTodo(t *testing.T, w *httptest.ResponseRecorder) model.Todo {
	t.Helper()
	var env struct {
		Data model.Todo `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Error
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		wantCode int
		check    func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:     "successful creation",
			body:     model.Fields{Title: "Buy milk", Details: "2%", Status: model.StatusNotStarted},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				todo := decodeTodo(t, w)
				assert.Equal(t, 1, todo.ID)
				assert.Equal(t, "Buy milk", todo.Title)
			},
		},
		{
			name:     "status defaults",
			body:     map[string]string{"title": "Walk dog"},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, model.StatusNotStarted, decodeTodo(t, w).Status)
			},
		},
		{
			name:     "empty title",
			body:     model.Fields{Title: "  ", Status: model.StatusNotStarted},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeError(t, w), "title is required")
			},
		},
		{
			name:     "filter sentinel is not a status",
			body:     model.Fields{Title: "x", Status: model.StatusAll},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid json",
			body:     "not an object",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, setupHandler(t), http.MethodPost, "/", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}

func TestHandler_GetUpdateDelete(t *testing.T) {
	h := setupHandler(t)

	w := do(t, h, http.MethodPost, "/", model.Fields{Title: "Buy milk", Details: "2%", Status: model.StatusNotStarted})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeTodo(t, w)

	w = do(t, h, http.MethodGet, "/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeTodo(t, w))

	w = do(t, h, http.MethodPut, "/1", map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.Todo{ID: 1, Title: "Buy milk", Details: "2%", Status: model.StatusCompleted}, decodeTodo(t, w))

	w = do(t, h, http.MethodDelete, "/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	w = do(t, h, http.MethodGet, "/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "todo not found", decodeError(t, w))

	w = do(t, h, http.MethodDelete, "/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_BadID(t *testing.T) {
	h := setupHandler(t)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := do(t, h, method, "/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
		assert.Equal(t, "invalid id", decodeError(t, w), method)
	}
}

func TestHandler_UpdateValidation(t *testing.T) {
	h := setupHandler(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/", model.Fields{Title: "Buy milk", Status: model.StatusNotStarted}).Code)

	w := do(t, h, http.MethodPut, "/1", map[string]string{"title": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/1", nil)
	assert.Equal(t, "Buy milk", decodeTodo(t, w).Title)
}

func TestHandler_List(t *testing.T) {
	h := setupHandler(t)
	for _, f := range []model.Fields{
		{Title: "Buy milk", Status: model.StatusNotStarted},
		{Title: "Walk dog", Details: "milk bones", Status: model.StatusCompleted},
	} {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/", f).Code)
	}

	list := func(target string) []model.Todo {
		w := do(t, h, http.MethodGet, target, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data []model.Todo `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
		return env.Data
	}

	assert.Len(t, list("/"), 2)
	assert.Len(t, list("/?status=all"), 2)
	assert.Len(t, list("/?search=MILK"), 2)

	done := list("/?status=completed")
	require.Len(t, done, 1)
	assert.Equal(t, "Walk dog", done[0].Title)

	w := do(t, h, http.MethodGet, "/?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemoryStore_Snapshot(t *testing.T) {
	snap := jsonstore.New(filepath.Join(t.TempDir(), "todos.json"))

	store, err := NewMemoryStore(snap)
	require.NoError(t, err)
	h := NewHandler(store, zerolog.Nop()).Routes()

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/", model.Fields{Title: "one", Status: model.StatusNotStarted}).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/", model.Fields{Title: "two", Status: model.StatusNotStarted}).Code)
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/1", nil).Code)

	saved, err := snap.Load()
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "two", saved[0].Title)

	reopened, err := NewMemoryStore(snap)
	require.NoError(t, err)
	h = NewHandler(reopened, zerolog.Nop()).Routes()

	w := do(t, h, http.MethodPost, "/", model.Fields{Title: "three", Status: model.StatusNotStarted})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 3, decodeTodo(t, w).ID)
}
