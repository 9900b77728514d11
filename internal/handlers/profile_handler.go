package handlers

import (
	"errors"
	"log/slog"

	"github.com/bigBrother1996/devConnector/internal/dto"
	"github.com/bigBrother1996/devConnector/internal/models"
	"github.com/bigBrother1996/devConnector/internal/services"
	"github.com/bigBrother1996/devConnector/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Me handles GET /api/profile/me.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	userID, err := token.UserIDFromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	profile, err := h.profileService.ByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Msg: "there is no profile for this user",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(joined(profile))
}

// Upsert handles POST /api/profile: create the caller's profile or update it
// in place.
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	userID, err := token.UserIDFromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profileService.Upsert(userID, &req)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(joined(profile))
}

// All handles GET /api/profile: every profile with owner name and avatar.
func (h *ProfileHandler) All(c *fiber.Ctx) error {
	profiles, err := h.profileService.All()
	if err != nil {
		return serverError(c, err)
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, joined(&profiles[i]))
	}
	return c.JSON(out)
}

// ByUser handles GET /api/profile/user/:userId. A malformed id and a missing
// profile look the same to the caller.
func (h *ProfileHandler) ByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "no profile"})
	}

	profile, err := h.profileService.ByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "no profile"})
		}
		return serverError(c, err)
	}

	return c.JSON(joined(profile))
}

// Delete handles DELETE /api/profile: removes the caller's profile and user
// record together.
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	userID, err := token.UserIDFromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.profileService.Delete(userID); err != nil {
		return serverError(c, err)
	}

	return c.JSON(dto.MessageResponse{Msg: "User deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	userID, err := token.UserIDFromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profileService.AddExperience(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNoProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Msg: "there is no profile for this user",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(joined(profile))
}

// RemoveExperience handles DELETE /api/profile/experience/:expId and returns
// the removed entry.
func (h *ProfileHandler) RemoveExperience(c *fiber.Ctx) error {
	userID, err := token.UserIDFromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("expId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrExperienceNotFound.Error(),
		})
	}

	removed, err := h.profileService.RemoveExperience(userID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoProfile):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Msg: "there is no profile for this user",
			})
		case errors.Is(err, services.ErrExperienceNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serverError(c, err)
	}

	return c.JSON(removed)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	userID, err := token.UserIDFromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.EducationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profileService.AddEducation(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNoProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Msg: "there is no profile for this user",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(joined(profile))
}

// RemoveEducation handles DELETE /api/profile/education/:eduId.
func (h *ProfileHandler) RemoveEducation(c *fiber.Ctx) error {
	userID, err := token.UserIDFromCtx(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("eduId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrEducationNotFound.Error(),
		})
	}

	removed, err := h.profileService.RemoveEducation(userID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoProfile):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Msg: "there is no profile for this user",
			})
		case errors.Is(err, services.ErrEducationNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serverError(c, err)
	}

	return c.JSON(removed)
}

func joined(p *models.Profile) dto.ProfileResponse {
	owner := models.User{}
	if p.User != nil {
		owner = *p.User
	}
	return dto.NewProfileResponse(*p, owner)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "token is not valid",
	})
}

func serverError(c *fiber.Ctx, err error) error {
	slog.Error("profile request failed", "error", err, "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
