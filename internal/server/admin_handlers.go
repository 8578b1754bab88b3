package server

import (
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AdminListUsers handles GET /api/admin/users?search=...
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	search := c.Query("search")

	users, err := s.adminService.ListUsers(c.Context(), search, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(users)
}

// AdminGetUser handles GET /api/admin/users/:id
func (s *Server) AdminGetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.adminService.GetUser(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// AdminUpdateRole handles PUT /api/admin/users/:id/role
func (s *Server) AdminUpdateRole(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.adminService.UpdateRole(c.Context(), id, req.Role)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// AdminDeleteUser handles DELETE /api/admin/users/:id
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.adminService.DeleteUser(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}

// AdminGetUserPosts handles GET /api/admin/users/:id/posts
func (s *Server) AdminGetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	posts, err := s.adminService.GetUserPosts(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// AdminListPosts handles GET /api/admin/posts
func (s *Server) AdminListPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	posts, err := s.adminService.ListPosts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// AdminDeletePost handles DELETE /api/admin/posts/:id
func (s *Server) AdminDeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.adminService.DeletePost(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}
