package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commentMediaURL = "https://example.com/api/media/aa11"

func TestComments_LoadOnce(t *testing.T) {
	var requests int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/aa11/comments", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		okJSON(w, `{"success": true, "comments": [
			{"id": "c1", "userId": "bob", "author": {"id": "bob", "name": "Bob"}, "content": "Nice shot"}
		]}`)
	})
	gw := newTestGateway(t, mux)
	c := NewComments(gw)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, commentMediaURL))
	require.NoError(t, c.Load(ctx, commentMediaURL))

	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
	assert.Equal(t, Loaded, c.State(commentMediaURL))
	require.Len(t, c.For(commentMediaURL), 1)
	assert.Equal(t, "Nice shot", c.For(commentMediaURL)[0].Content)
}

func TestComments_FailedLoadMayRetry(t *testing.T) {
	failing := true
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/aa11/comments", func(w http.ResponseWriter, r *http.Request) {
		if failing {
			errJSON(w, http.StatusInternalServerError, "INTERNAL_ERROR", "boom")
			return
		}
		okJSON(w, `{"success": true, "comments": []}`)
	})
	gw := newTestGateway(t, mux)
	c := NewComments(gw)
	ctx := context.Background()

	assert.Error(t, c.Load(ctx, commentMediaURL))
	assert.Equal(t, LoadFailed, c.State(commentMediaURL))
	assert.Error(t, c.LoadError(commentMediaURL))

	failing = false
	require.NoError(t, c.Load(ctx, commentMediaURL))
	assert.Equal(t, Loaded, c.State(commentMediaURL))
	assert.NoError(t, c.LoadError(commentMediaURL))
}

func TestComments_AddAppendsAfterConfirmation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/aa11/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			okJSON(w, `{"success": true, "comments": []}`)
			return
		}
		okJSON(w, `{"success": true, "comment": {"id": "c2", "userId": "alice", "author": {"id": "alice", "name": "Alice"}, "content": "Great day"}}`)
	})
	gw := newTestGateway(t, mux)
	c := NewComments(gw)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, commentMediaURL))
	require.NoError(t, c.Add(ctx, commentMediaURL, "Great day"))

	list := c.For(commentMediaURL)
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)
}

func TestComments_AddRejectsEmpty(t *testing.T) {
	gw := newTestGateway(t, http.NewServeMux())
	c := NewComments(gw)

	assert.Error(t, c.Add(context.Background(), commentMediaURL, ""))
}

func TestComments_CanEdit(t *testing.T) {
	gw := newTestGateway(t, http.NewServeMux())
	c := NewComments(gw)

	assert.True(t, c.CanEdit(Comment{ID: "c1", UserID: "alice"}))
	assert.False(t, c.CanEdit(Comment{ID: "c2", UserID: "bob"}))
	assert.False(t, c.CanEdit(Comment{ID: "c3"}))
}

func TestComments_UpdateRefusedForOthers(t *testing.T) {
	var requests int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		okJSON(w, `{"success": true}`)
	})
	gw := newTestGateway(t, mux)
	c := NewComments(gw)

	theirs := Comment{ID: "c1", UserID: "bob", Content: "Nice shot"}
	assert.Error(t, c.Update(context.Background(), commentMediaURL, theirs, "Edited"))
	assert.Error(t, c.Delete(context.Background(), commentMediaURL, theirs))
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestComments_Delete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/aa11/comments", func(w http.ResponseWriter, r *http.Request) {
		okJSON(w, `{"success": true, "comments": [
			{"id": "c1", "userId": "alice", "author": {"id": "alice", "name": "Alice"}, "content": "Mine"},
			{"id": "c2", "userId": "bob", "author": {"id": "bob", "name": "Bob"}, "content": "Theirs"}
		]}`)
	})
	mux.HandleFunc("/api/comments/c1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		okJSON(w, `{"success": true}`)
	})
	gw := newTestGateway(t, mux)
	c := NewComments(gw)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, commentMediaURL))
	mine := c.For(commentMediaURL)[0]
	require.NoError(t, c.Delete(ctx, commentMediaURL, mine))

	list := c.For(commentMediaURL)
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)
}
