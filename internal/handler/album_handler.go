package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trip-album/internal/domain"
	"trip-album/internal/middleware"
	"trip-album/internal/service"
)

type AlbumHandler struct {
	albumService  service.AlbumService
	inviteService service.InviteService
}

func NewAlbumHandler(albumService service.AlbumService, inviteService service.InviteService) *AlbumHandler {
	return &AlbumHandler{
		albumService:  albumService,
		inviteService: inviteService,
	}
}

func (h *AlbumHandler) GetFull(c *fiber.Ctx) error {
	albumID, err := uuid.Parse(c.Params("albumId"))
	if err != nil {
		return middleware.BadRequest("Invalid album ID")
	}

	userID := middleware.GetCurrentUserID(c)

	full, err := h.albumService.GetFull(c.Context(), albumID, userID)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(full)
}

func (h *AlbumHandler) Invite(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	albumID, err := uuid.Parse(c.Params("albumId"))
	if err != nil {
		return middleware.BadRequest("Invalid album ID")
	}

	var input domain.InviteInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" {
		return middleware.ValidationError("email is required")
	}

	album, err := h.albumService.Get(c.Context(), albumID)
	if err != nil {
		return serviceError(err)
	}

	// An invitee with an existing account joins the album right away; the
	// email is a notification either way.
	if input.ParticipantID != "" {
		if err := h.albumService.AddParticipant(c.Context(), albumID, input.ParticipantID); err != nil {
			return serviceError(err)
		}
	}

	if err := h.inviteService.SendInvite(c.Context(), input.Email, input.Name, album.Title, currentUser.Name); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
