package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFixture(gw *Gateway) *Store {
	return seedStore(gw, TripDay{
		ID: 1, Date: "2025-07-14", PhotoCount: 1,
		Events: []TripEvent{{
			ID:     10,
			Name:   "Kayaking",
			Photos: []MediaItem{{URL: "/api/media/existing", Uploader: Participant{ID: "bob", Name: "Bob"}}},
		}},
	})
}

func localBatch() []LocalFile {
	return []LocalFile{
		{Name: "beach.jpg", MIME: "image/jpeg", Content: []byte("jpg"), PreviewURL: "blob:preview-1"},
		{Name: "surf.mp4", MIME: "video/mp4", Content: []byte("mp4"), PreviewURL: "blob:preview-2"},
	}
}

func TestUploader_AddMedia(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/upload", func(w http.ResponseWriter, r *http.Request) {
		okJSON(w, `{"success": true, "files": [
			{"url": "/api/media/aa11", "type": "photo", "name": "beach.jpg", "size": 3},
			{"url": "/api/media/bb22", "type": "video", "name": "surf.mp4", "size": 3}
		]}`)
	})
	gw := newTestGateway(t, mux)
	st := uploadFixture(gw)
	var released []string
	up := NewUploader(st, gw)
	up.ClosePreview = func(url string) { released = append(released, url) }

	require.NoError(t, up.AddMedia(context.Background(), 1, 10, localBatch()))

	ev := st.Event(1, 10)
	require.Len(t, ev.Photos, 2)
	require.Len(t, ev.Videos, 1)
	assert.Equal(t, "/api/media/aa11", ev.Photos[1].URL)
	assert.Equal(t, "Alice", ev.Photos[1].Uploader.Name)
	assert.Equal(t, "/api/media/bb22", ev.Videos[0].URL)
	assert.Equal(t, 3, st.Day(1).PhotoCount)
	assert.Equal(t, []string{"blob:preview-1", "blob:preview-2"}, released)
}

func TestUploader_AddMediaRollsBackBatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/upload", func(w http.ResponseWriter, r *http.Request) {
		errJSON(w, http.StatusInternalServerError, "INTERNAL_ERROR", "storage unavailable")
	})
	gw := newTestGateway(t, mux)
	st := uploadFixture(gw)

	var releasedHooks int
	batch := localBatch()
	for i := range batch {
		batch[i].Release = func() { releasedHooks++ }
	}

	up := NewUploader(st, gw)
	err := up.AddMedia(context.Background(), 1, 10, batch)
	assert.Error(t, err)

	// Every preview of the failed batch is gone, the counter is back, and
	// preview resources were released.
	ev := st.Event(1, 10)
	require.Len(t, ev.Photos, 1)
	assert.Equal(t, "/api/media/existing", ev.Photos[0].URL)
	assert.Empty(t, ev.Videos)
	assert.Equal(t, 1, st.Day(1).PhotoCount)
	assert.Equal(t, 2, releasedHooks)
	assert.Contains(t, up.Error(), "storage unavailable")
}

func TestUploader_DeleteMedia(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/existing", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		okJSON(w, `{"success": true}`)
	})
	gw := newTestGateway(t, mux)
	st := uploadFixture(gw)
	up := NewUploader(st, gw)

	require.NoError(t, up.DeleteMedia(context.Background(), 1, 10, "/api/media/existing"))

	assert.Empty(t, st.Event(1, 10).Photos)
	assert.Equal(t, 0, st.Day(1).PhotoCount)
}

func TestUploader_DeleteMediaServerErrorKeepsItem(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/media/existing", func(w http.ResponseWriter, r *http.Request) {
		errJSON(w, http.StatusInternalServerError, "INTERNAL_ERROR", "boom")
	})
	gw := newTestGateway(t, mux)
	st := uploadFixture(gw)
	up := NewUploader(st, gw)

	assert.Error(t, up.DeleteMedia(context.Background(), 1, 10, "/api/media/existing"))

	assert.Len(t, st.Event(1, 10).Photos, 1)
	assert.Equal(t, 1, st.Day(1).PhotoCount)
}
