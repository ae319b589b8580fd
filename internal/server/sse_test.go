package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEWriter(t *testing.T) {
	w := httptest.NewRecorder()

	sse, err := NewSSEWriter(w)
	require.NoError(t, err)
	require.NoError(t, sse.WriteEvent("preview", PreviewEvent{TemplateID: "modern", HTML: "<p>x</p>"}))
	require.NoError(t, sse.WriteError(errors.New("boom")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "retry: 2000\n\n"+
		"id: 1\nevent: preview\ndata: {\"template_id\":\"modern\",\"html\":\"\\u003cp\\u003ex\\u003c/p\\u003e\"}\n\n"+
		"id: 2\nevent: error\ndata: {\"error\":\"boom\"}\n\n", w.Body.String())
	assert.True(t, w.Flushed)
}

// plainWriter hides the recorder's Flush method
type plainWriter struct {
	http.ResponseWriter
}

func TestSSEWriter_RequiresFlusher(t *testing.T) {
	_, err := NewSSEWriter(plainWriter{httptest.NewRecorder()})
	assert.Error(t, err)
}
