package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trip-album/internal/domain"
	"trip-album/internal/middleware"
	"trip-album/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	mediaKey := c.Params("mediaKey")
	if mediaKey == "" {
		return middleware.BadRequest("Invalid media key")
	}

	comments, err := h.commentService.ListByMediaKey(c.Context(), mediaKey)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"comments": comments,
	})
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	mediaKey := c.Params("mediaKey")
	if mediaKey == "" {
		return middleware.BadRequest("Invalid media key")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.commentService.Create(c.Context(), mediaKey, currentUser, input)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"comment": comment,
	})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.commentService.Update(c.Context(), userID, commentID, input)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"comment": comment,
	})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.Delete(c.Context(), userID, commentID); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
