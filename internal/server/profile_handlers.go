package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

type profileRequest struct {
	Name        string             `json:"name"`
	Bio         string             `json:"bio"`
	Skill       string             `json:"skill"`
	SocialLinks models.SocialLinks `json:"social_links"`
}

// GetAllProfiles handles GET /api/profile
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	profiles, err := s.profileService.ListProfiles(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(profiles)
}

// GetMyProfile handles GET /api/profile/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.profileService.GetMine(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(profile)
}

// GetProfileByUser handles GET /api/profile/user/:userId
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(profile)
}

// CreateProfile handles POST /api/profile
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.CreateProfile(c.Context(), service.ProfileInput{
		UserID:      userID,
		Name:        req.Name,
		Bio:         req.Bio,
		Skill:       req.Skill,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateProfile handles PUT /api/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpdateProfile(c.Context(), service.ProfileInput{
		UserID:      userID,
		Name:        req.Name,
		Bio:         req.Bio,
		Skill:       req.Skill,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile. This removes the profile, the
// user's posts, their comments and likes everywhere, and the account itself.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.profileService.DeleteAccount(c.Context(), userID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Account deleted"})
}
