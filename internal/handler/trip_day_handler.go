package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"trip-album/internal/domain"
	"trip-album/internal/middleware"
	"trip-album/internal/service"
)

type TripDayHandler struct {
	tripDayService service.TripDayService
}

func NewTripDayHandler(tripDayService service.TripDayService) *TripDayHandler {
	return &TripDayHandler{tripDayService: tripDayService}
}

func (h *TripDayHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateTripDayInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	day, err := h.tripDayService.Create(c.Context(), userID, input)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"dayId":   day.ID,
	})
}

func (h *TripDayHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	dayID, err := parseID(c, "dayId")
	if err != nil {
		return err
	}

	var input domain.UpdateTripDayInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if _, err := h.tripDayService.Update(c.Context(), userID, dayID, input); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *TripDayHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	dayID, err := parseID(c, "dayId")
	if err != nil {
		return err
	}

	if err := h.tripDayService.Delete(c.Context(), userID, dayID); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *TripDayHandler) ReorderEvents(c *fiber.Ctx) error {
	dayID, err := parseID(c, "dayId")
	if err != nil {
		return err
	}

	var input struct {
		EventIDs []int64 `json:"eventIds"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if len(input.EventIDs) == 0 {
		return middleware.ValidationError("eventIds must not be empty")
	}

	if err := h.tripDayService.Reorder(c.Context(), dayID, input.EventIDs); err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.BadRequest("Invalid " + param)
	}
	return id, nil
}
