package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_CredentialsRideInBody(t *testing.T) {
	var got map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/trip-days/3", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		okJSON(w, `{"success": true}`)
	})
	gw := newTestGateway(t, mux)

	err := gw.UpdateDay(context.Background(), 3, "New Title", "2025-07-20")
	require.NoError(t, err)

	assert.Equal(t, "alice", got["userId"])
	assert.Equal(t, "secret", got["password"])
	assert.Equal(t, "New Title", got["title"])
}

func TestGateway_ErrorMapping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		errJSON(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid user ID or password")
	})
	mux.HandleFunc("/api/trip-days", func(w http.ResponseWriter, r *http.Request) {
		errJSON(w, http.StatusConflict, "CONFLICT", "A day with this date already exists")
	})
	gw := newTestGateway(t, mux)
	ctx := context.Background()

	_, err := gw.Login(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid user ID or password")

	_, err = gw.CreateDay(ctx, "album-1", "New Day", "2025-07-14")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "already exists")
}

func TestGateway_LoginFillsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		okJSON(w, `{"success": true, "user": {"id": "alice", "name": "Alice Liddell"}}`)
	})
	gw := newTestGateway(t, mux)
	gw.Session().User = Participant{}

	user, err := gw.Login(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Alice Liddell", user.Name)
	assert.Equal(t, "Alice Liddell", gw.Session().User.Name)
}

func TestGateway_UploadMediaMultipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/upload", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "alice", r.FormValue("userId"))
		assert.Equal(t, "11", r.FormValue("eventId"))

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 2)
		assert.Equal(t, "beach.jpg", files[0].Filename)
		assert.Equal(t, "image/jpeg", files[0].Header.Get("Content-Type"))
		assert.Equal(t, "surf.mp4", files[1].Filename)
		assert.Equal(t, "video/mp4", files[1].Header.Get("Content-Type"))

		okJSON(w, `{"success": true, "files": [
			{"url": "/api/media/aa11", "type": "photo", "name": "beach.jpg", "size": 3},
			{"url": "/api/media/bb22", "type": "video", "name": "surf.mp4", "size": 3}
		]}`)
	})
	gw := newTestGateway(t, mux)

	uploaded, err := gw.UploadMedia(context.Background(), 11, []UploadFile{
		{Name: "beach.jpg", MIME: "image/jpeg", Content: []byte("jpg")},
		{Name: "surf.mp4", MIME: "video/mp4", Content: []byte("mp4")},
	})
	require.NoError(t, err)

	require.Len(t, uploaded, 2)
	assert.Equal(t, "/api/media/aa11", uploaded[0].URL)
	assert.Equal(t, "video", uploaded[1].Type)
}
