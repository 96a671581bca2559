package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Gateway is the credentialed HTTP client every manager talks through. All
// requests carry the session's userId/password pair in their body; there is
// no retry, timeout or cancellation beyond the caller's context.
type Gateway struct {
	baseURL string
	session *Session
	http    *http.Client
}

func NewGateway(baseURL string, session *Session) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		http:    http.DefaultClient,
	}
}

func (g *Gateway) Session() *Session {
	return g.session
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    Participant `json:"user"`
}

// Login validates the session's credentials against the backend and fills
// in the confirmed identity.
func (g *Gateway) Login(ctx context.Context) (Participant, error) {
	var resp loginResponse
	err := g.doJSON(ctx, http.MethodPost, "/api/auth/login", g.session.Credentials, &resp)
	if err != nil {
		return Participant{}, err
	}
	g.session.User = resp.User
	return resp.User, nil
}

// FullAlbum is the single-round-trip album graph.
type FullAlbum struct {
	Album        Album         `json:"album"`
	Participants []Participant `json:"participants"`
	Days         []TripDay     `json:"days"`
}

func (g *Gateway) FetchFullAlbum(ctx context.Context, albumID string) (*FullAlbum, error) {
	var resp FullAlbum
	err := g.doJSON(ctx, http.MethodPost, "/api/albums/"+albumID+"/full", g.session.Credentials, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

type createDayRequest struct {
	Credentials
	AlbumID string `json:"albumId"`
	Title   string `json:"title"`
	Date    string `json:"date"`
}

func (g *Gateway) CreateDay(ctx context.Context, albumID, title, date string) (int64, error) {
	var resp struct {
		DayID int64 `json:"dayId"`
	}
	req := createDayRequest{Credentials: g.session.Credentials, AlbumID: albumID, Title: title, Date: date}
	if err := g.doJSON(ctx, http.MethodPost, "/api/trip-days", req, &resp); err != nil {
		return 0, err
	}
	return resp.DayID, nil
}

type updateDayRequest struct {
	Credentials
	Title string `json:"title"`
	Date  string `json:"date"`
}

func (g *Gateway) UpdateDay(ctx context.Context, dayID int64, title, date string) error {
	req := updateDayRequest{Credentials: g.session.Credentials, Title: title, Date: date}
	return g.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/trip-days/%d", dayID), req, nil)
}

func (g *Gateway) DeleteDay(ctx context.Context, dayID int64) error {
	return g.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/trip-days/%d", dayID), g.session.Credentials, nil)
}

type persistEventOrderRequest struct {
	Credentials
	EventIDs []int64 `json:"eventIds"`
}

func (g *Gateway) PersistEventOrder(ctx context.Context, dayID int64, eventIDs []int64) error {
	req := persistEventOrderRequest{Credentials: g.session.Credentials, EventIDs: eventIDs}
	return g.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/trip-days/%d/event-order", dayID), req, nil)
}

type createEventRequest struct {
	Credentials
	TripDayID      int64    `json:"tripDayId"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Emoji          string   `json:"emoji"`
	Location       string   `json:"location,omitempty"`
	SortOrder      int      `json:"sortOrder"`
	ParticipantIDs []string `json:"participantIds"`
}

func (g *Gateway) CreateEvent(ctx context.Context, dayID int64, name, description, emoji, location string, participantIDs []string) (int64, error) {
	var resp struct {
		EventID int64 `json:"eventId"`
	}
	req := createEventRequest{
		Credentials:    g.session.Credentials,
		TripDayID:      dayID,
		Name:           name,
		Description:    description,
		Emoji:          emoji,
		Location:       location,
		ParticipantIDs: participantIDs,
	}
	if err := g.doJSON(ctx, http.MethodPost, "/api/events", req, &resp); err != nil {
		return 0, err
	}
	return resp.EventID, nil
}

type updateEventRequest struct {
	Credentials
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Location    string `json:"location,omitempty"`
}

func (g *Gateway) UpdateEvent(ctx context.Context, eventID int64, name, description, emoji, location string) error {
	req := updateEventRequest{
		Credentials: g.session.Credentials,
		Name:        name,
		Description: description,
		Emoji:       emoji,
		Location:    location,
	}
	return g.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/events/%d", eventID), req, nil)
}

func (g *Gateway) DeleteEvent(ctx context.Context, eventID int64) error {
	return g.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d", eventID), g.session.Credentials, nil)
}

type setParticipantRequest struct {
	Credentials
	ParticipantID string `json:"participantId"`
	Action        string `json:"action"`
}

func (g *Gateway) SetEventParticipant(ctx context.Context, eventID int64, participantID, action string) error {
	req := setParticipantRequest{Credentials: g.session.Credentials, ParticipantID: participantID, Action: action}
	return g.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/events/%d/participants", eventID), req, nil)
}

// UploadFile is one file of an upload batch.
type UploadFile struct {
	Name    string
	MIME    string
	Content []byte
}

// UploadedFile is the persisted record the backend returns per file.
type UploadedFile struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

func (g *Gateway) UploadMedia(ctx context.Context, eventID int64, files []UploadFile) ([]UploadedFile, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	_ = writer.WriteField("userId", g.session.UserID)
	_ = writer.WriteField("password", g.session.Password)
	_ = writer.WriteField("eventId", fmt.Sprintf("%d", eventID))

	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, file.Name))
		header.Set("Content-Type", file.MIME)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/media/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp struct {
		Files []UploadedFile `json:"files"`
	}
	if err := g.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

func (g *Gateway) DeleteMedia(ctx context.Context, mediaID string) error {
	return g.doJSON(ctx, http.MethodDelete, "/api/media/"+mediaID, g.session.Credentials, nil)
}

func (g *Gateway) ListComments(ctx context.Context, mediaKey string) ([]Comment, error) {
	var resp struct {
		Comments []Comment `json:"comments"`
	}
	err := g.doJSON(ctx, http.MethodGet, "/api/media/"+mediaKey+"/comments", g.session.Credentials, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

type commentRequest struct {
	Credentials
	Content string `json:"content"`
}

func (g *Gateway) AddComment(ctx context.Context, mediaKey, content string) (*Comment, error) {
	var resp struct {
		Comment Comment `json:"comment"`
	}
	req := commentRequest{Credentials: g.session.Credentials, Content: content}
	if err := g.doJSON(ctx, http.MethodPost, "/api/media/"+mediaKey+"/comments", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Comment, nil
}

func (g *Gateway) UpdateComment(ctx context.Context, commentID, content string) (*Comment, error) {
	var resp struct {
		Comment Comment `json:"comment"`
	}
	req := commentRequest{Credentials: g.session.Credentials, Content: content}
	if err := g.doJSON(ctx, http.MethodPut, "/api/comments/"+commentID, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Comment, nil
}

func (g *Gateway) DeleteComment(ctx context.Context, commentID string) error {
	return g.doJSON(ctx, http.MethodDelete, "/api/comments/"+commentID, g.session.Credentials, nil)
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, out)
}

func (g *Gateway) do(req *http.Request, out interface{}) error {
	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &apiErr)
		message := apiErr.Message
		if message == "" {
			message = resp.Status
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrUnauthorized, message)
		case http.StatusConflict:
			return fmt.Errorf("%w: %s", ErrConflict, message)
		}
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode, message)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
