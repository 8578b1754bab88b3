package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	userID, _ := s.optionalUserID(c)

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Limit:         page.Limit,
		Offset:        page.Offset,
		CurrentUserID: userID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	post, err := s.postService.GetPost(c.Context(), id, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(post)
}

// GetUserPosts handles GET /api/posts/user/:userId
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userIDParam, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	currentUserID, _ := s.optionalUserID(c)

	posts, err := s.postService.GetUserPosts(c.Context(), userIDParam, page.Limit, page.Offset, currentUserID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts. The body is multipart: title and
// content fields plus an optional image file.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	in := service.CreatePostInput{
		UserID:  userID,
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		imageURL, upErr := s.saveUploadedImage(c, file)
		if upErr != nil {
			return models.RespondWithAppError(c, upErr)
		}
		in.ImageURL = imageURL
	}

	post, err := s.postService.CreatePost(c.Context(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"image_url,omitempty"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:   userID,
		PostID:   postID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), userID, postID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// LikePost handles POST /api/posts/:id/like. The operation is a toggle:
// liking a post already liked removes the like.
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.ToggleLike(c.Context(), userID, postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(post)
}

// CommentPost handles POST /api/posts/:id/comment
func (s *Server) CommentPost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.AddComment(c.Context(), userID, postID, req.Text)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(post)
}
