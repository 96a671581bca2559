package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trip-album/internal/domain"
	"trip-album/internal/middleware"
	"trip-album/internal/service"
)

const maxUploadSize = 50 * 1024 * 1024

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	eventID, err := strconv.ParseInt(c.FormValue("eventId"), 10, 64)
	if err != nil || eventID <= 0 {
		return middleware.BadRequest("Invalid event ID")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.BadRequest("Multipart form is required")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return middleware.BadRequest("At least one file is required")
	}

	uploaded := make([]domain.UploadedFile, 0, len(files))
	for _, file := range files {
		if file.Size > maxUploadSize {
			return middleware.BadRequest("File size must be less than 50MB")
		}

		mimeType := file.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		reader, err := file.Open()
		if err != nil {
			return middleware.BadRequest("Failed to read file")
		}

		media, err := h.mediaService.Upload(c.Context(), userID, eventID, file.Filename, mimeType, reader)
		reader.Close()
		if err != nil {
			return serviceError(err)
		}

		uploaded = append(uploaded, domain.UploadedFile{
			URL:  media.URL,
			Type: media.Type(),
			Name: media.FileName,
			Size: media.FileSize,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"files":   uploaded,
	})
}

func (h *MediaHandler) Get(c *fiber.Ctx) error {
	mediaID, err := uuid.Parse(c.Params("mediaId"))
	if err != nil {
		return middleware.BadRequest("Invalid media ID")
	}

	reader, media, err := h.mediaService.Open(c.Context(), mediaID)
	if err != nil {
		return serviceError(err)
	}

	c.Set(fiber.HeaderContentType, media.MimeType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.SendStream(reader)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	mediaID, err := uuid.Parse(c.Params("mediaId"))
	if err != nil {
		return middleware.BadRequest("Invalid media ID")
	}

	if err := h.mediaService.Delete(c.Context(), userID, mediaID); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
