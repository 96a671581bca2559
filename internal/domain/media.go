package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Media struct {
	ID          uuid.UUID  `json:"id" db:"media_id"`
	EventID     int64      `json:"eventId" db:"event_id"`
	UploadedBy  uuid.UUID  `json:"-" db:"uploaded_by"`
	FileName    string     `json:"name" db:"file_name"`
	FileSize    int64      `json:"size" db:"file_size"`
	MimeType    string     `json:"mimeType" db:"mime_type"`
	StoragePath *string    `json:"-" db:"storage_path"`
	DataURL     *string    `json:"-" db:"data_url"`
	URL         string     `json:"url" db:"-"`
	CreatedAt   time.Time  `json:"-" db:"created_at"`
	DeletedAt   *time.Time `json:"-" db:"deleted_at"`
}

// Type classifies a media row for the client, which keeps photos and videos
// in separate lists.
func (m *Media) Type() string {
	if strings.HasPrefix(m.MimeType, "video/") {
		return "video"
	}
	return "photo"
}

// UploadedFile is one entry of the upload response; the client swaps its
// optimistic previews for these.
type UploadedFile struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}
