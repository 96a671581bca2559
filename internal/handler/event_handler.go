package handler

import (
	"github.com/gofiber/fiber/v2"

	"trip-album/internal/domain"
	"trip-album/internal/middleware"
	"trip-album/internal/service"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	event, err := h.eventService.Create(c.Context(), userID, input)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"eventId": event.ID,
	})
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	eventID, err := parseID(c, "eventId")
	if err != nil {
		return err
	}

	var input domain.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if _, err := h.eventService.Update(c.Context(), userID, eventID, input); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	eventID, err := parseID(c, "eventId")
	if err != nil {
		return err
	}

	if err := h.eventService.Delete(c.Context(), userID, eventID); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *EventHandler) SetParticipant(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return err
	}

	var input domain.EventParticipantInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.ParticipantID == "" {
		return middleware.ValidationError("participantId is required")
	}

	if err := h.eventService.SetParticipant(c.Context(), eventID, input); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
