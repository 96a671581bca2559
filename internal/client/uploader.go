package client

import (
	"context"
	"strings"
)

// LocalFile is a file selected for upload, with the temporary preview URL
// shown while the upload runs. Release frees the preview resource once the
// preview is no longer displayed; it may be nil.
type LocalFile struct {
	Name       string
	MIME       string
	Content    []byte
	PreviewURL string
	Release    func()
}

// Uploader adds media to events with optimistic previews. A batch either
// resolves entirely (previews replaced in order by persisted records) or
// rolls back entirely, removing every preview the batch inserted.
type Uploader struct {
	store *Store
	gw    *Gateway

	// ClosePreview is notified when a preview URL leaves the tree, so the
	// UI can revoke it. May be nil.
	ClosePreview func(url string)

	errMsg string
}

func NewUploader(store *Store, gw *Gateway) *Uploader {
	return &Uploader{store: store, gw: gw}
}

func (u *Uploader) Error() string { return u.errMsg }

// AddMedia uploads a batch of files to an event. Previews appear in the
// tree immediately, attributed to a placeholder uploader; the day's photo
// counter moves with them.
func (u *Uploader) AddMedia(ctx context.Context, dayID, eventID int64, files []LocalFile) error {
	if len(files) == 0 {
		return nil
	}
	day := u.store.Day(dayID)
	ev := u.store.Event(dayID, eventID)
	if day == nil || ev == nil {
		return nil
	}

	placeholder := Participant{Name: "Uploading..."}
	previews := make([]MediaItem, len(files))
	for i, f := range files {
		previews[i] = MediaItem{URL: f.PreviewURL, Uploader: placeholder}
		if isVideoMIME(f.MIME) {
			ev.Videos = append(ev.Videos, previews[i])
		} else {
			ev.Photos = append(ev.Photos, previews[i])
		}
	}
	day.PhotoCount += len(files)

	batch := make([]UploadFile, len(files))
	for i, f := range files {
		batch[i] = UploadFile{Name: f.Name, MIME: f.MIME, Content: f.Content}
	}

	uploaded, err := u.gw.UploadMedia(ctx, eventID, batch)
	if err != nil {
		for _, f := range files {
			removeMediaURL(ev, f.PreviewURL)
			u.releasePreview(f)
		}
		day.PhotoCount -= len(files)
		u.errMsg = err.Error()
		return err
	}

	// Replace previews positionally: the backend returns records in
	// request order.
	for i, f := range files {
		removeMediaURL(ev, f.PreviewURL)
		u.releasePreview(f)
		if i >= len(uploaded) {
			day.PhotoCount--
			continue
		}
		item := MediaItem{URL: uploaded[i].URL, Uploader: u.gw.Session().User}
		if uploaded[i].Type == "video" {
			ev.Videos = append(ev.Videos, item)
		} else {
			ev.Photos = append(ev.Photos, item)
		}
	}
	u.errMsg = ""
	return nil
}

// DeleteMedia removes one media item by its URL.
func (u *Uploader) DeleteMedia(ctx context.Context, dayID, eventID int64, url string) error {
	day := u.store.Day(dayID)
	ev := u.store.Event(dayID, eventID)
	if day == nil || ev == nil {
		return nil
	}

	id := url
	if i := strings.LastIndex(url, "/"); i >= 0 {
		id = url[i+1:]
	}

	if err := u.gw.DeleteMedia(ctx, id); err != nil {
		u.errMsg = err.Error()
		return err
	}

	if removeMediaURL(ev, url) {
		day.PhotoCount--
	}
	if u.ClosePreview != nil {
		u.ClosePreview(url)
	}
	return nil
}

func (u *Uploader) releasePreview(f LocalFile) {
	if u.ClosePreview != nil {
		u.ClosePreview(f.PreviewURL)
	}
	if f.Release != nil {
		f.Release()
	}
}

func removeMediaURL(ev *TripEvent, url string) bool {
	for i := range ev.Photos {
		if ev.Photos[i].URL == url {
			ev.Photos = append(ev.Photos[:i], ev.Photos[i+1:]...)
			return true
		}
	}
	for i := range ev.Videos {
		if ev.Videos[i].URL == url {
			ev.Videos = append(ev.Videos[:i], ev.Videos[i+1:]...)
			return true
		}
	}
	return false
}

func isVideoMIME(mime string) bool {
	return strings.HasPrefix(mime, "video/")
}
