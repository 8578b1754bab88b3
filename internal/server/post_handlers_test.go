package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/middleware"
	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthGate(t *testing.T) {
	mockPosts := new(MockPostRepository)
	s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
	app.Post("/api/posts/:id/like", middleware.AuthRequired(s.codec), s.LikePost)

	liked := &models.Post{ID: 1, UserID: 3, Title: "Hello", Content: "World"}
	mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).Return(liked, nil)
	mockPosts.On("Like", mock.Anything, uint(7), uint(1)).Return(true, nil)

	tests := []struct {
		name            string
		authorization   string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "No header",
			authorization:   "",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token, authorization denied",
		},
		{
			name:            "Not a bearer scheme",
			authorization:   "Basic abc123",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token, authorization denied",
		},
		{
			name:            "Literal null token",
			authorization:   "Bearer null",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token, authorization denied",
		},
		{
			name:            "Literal undefined token",
			authorization:   "Bearer undefined",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token, authorization denied",
		},
		{
			name:            "Garbage token",
			authorization:   "Bearer not.a.token",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token is not valid",
		},
		{
			name:           "Valid token",
			authorization:  "Bearer " + tokenFor(t, s, 7, models.RoleUser),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/posts/1/like", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedMessage == "" {
				_ = resp.Body.Close()
				return
			}
			var body models.ErrorResponse
			decodeBody(t, resp, &body)
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}

func TestGetPosts_Anonymous(t *testing.T) {
	mockPosts := new(MockPostRepository)
	s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
	app.Get("/api/posts", s.GetPosts)

	mockPosts.On("List", mock.Anything, 20, 0, uint(0)).Return([]*models.Post{
		{ID: 2, UserID: 1, Title: "Second", LikesCount: 3},
		{ID: 1, UserID: 1, Title: "First"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 2)
	assert.Equal(t, uint(2), posts[0].ID)
	assert.Equal(t, 3, posts[0].LikesCount)
	assert.False(t, posts[0].Liked)
	mockPosts.AssertExpectations(t)
}

func TestLikePost_Toggle(t *testing.T) {
	t.Run("First like inserts", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
		app.Post("/api/posts/:id/like", middleware.AuthRequired(s.codec), s.LikePost)

		before := &models.Post{ID: 1, UserID: 3, Title: "Hello"}
		after := &models.Post{ID: 1, UserID: 3, Title: "Hello", LikesCount: 1, Liked: true}
		mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).Return(before, nil).Once()
		mockPosts.On("Like", mock.Anything, uint(7), uint(1)).Return(true, nil).Once()
		mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).Return(after, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/posts/1/like", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, s, 7, models.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.True(t, post.Liked)
		assert.Equal(t, 1, post.LikesCount)
		mockPosts.AssertExpectations(t)
	})

	t.Run("Second like removes", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
		app.Post("/api/posts/:id/like", middleware.AuthRequired(s.codec), s.LikePost)

		before := &models.Post{ID: 1, UserID: 3, Title: "Hello", LikesCount: 1, Liked: true}
		after := &models.Post{ID: 1, UserID: 3, Title: "Hello"}
		mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).Return(before, nil).Once()
		mockPosts.On("Like", mock.Anything, uint(7), uint(1)).Return(false, nil).Once()
		mockPosts.On("Unlike", mock.Anything, uint(7), uint(1)).Return(nil).Once()
		mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).Return(after, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/posts/1/like", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, s, 7, models.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.False(t, post.Liked)
		assert.Equal(t, 0, post.LikesCount)
		mockPosts.AssertExpectations(t)
	})
}

func TestCommentPost(t *testing.T) {
	t.Run("Trims and appends", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
		app.Post("/api/posts/:id/comment", middleware.AuthRequired(s.codec), s.CommentPost)

		post := &models.Post{ID: 1, UserID: 3, Title: "Hello"}
		mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).Return(post, nil)
		mockPosts.On("AddComment", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.PostID == 1 && c.UserID == 7 && c.Text == "nice post"
		})).Return(nil)

		req := postJSON(t, "/api/posts/1/comment", map[string]string{"text": "  nice post  "})
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, s, 7, models.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
		mockPosts.AssertExpectations(t)
	})

	t.Run("Empty text rejected", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
		app.Post("/api/posts/:id/comment", middleware.AuthRequired(s.codec), s.CommentPost)

		mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).
			Return(&models.Post{ID: 1, UserID: 3}, nil)

		req := postJSON(t, "/api/posts/1/comment", map[string]string{"text": "   "})
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, s, 7, models.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Text is required", body.Message)
		mockPosts.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything)
	})

	t.Run("Missing post reads as not found even with bad text", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
		app.Post("/api/posts/:id/comment", middleware.AuthRequired(s.codec), s.CommentPost)

		mockPosts.On("GetByID", mock.Anything, uint(999), uint(7)).
			Return(nil, models.NewNotFoundError("Post", uint(999)))

		req := postJSON(t, "/api/posts/999/comment", map[string]string{"text": "   "})
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, s, 7, models.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
		mockPosts.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything)
	})
}

func TestUpdatePost_NotOwner(t *testing.T) {
	mockPosts := new(MockPostRepository)
	s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
	app.Put("/api/posts/:id", middleware.AuthRequired(s.codec), s.UpdatePost)

	// Post belongs to user 3; user 7 attempts the update.
	mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).
		Return(&models.Post{ID: 1, UserID: 3, Title: "Hello"}, nil)

	req := postJSON(t, "/api/posts/1", map[string]string{"title": "Hijacked"})
	req.Method = http.MethodPut
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, s, 7, models.RoleUser))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
	mockPosts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeletePost_Owner(t *testing.T) {
	mockPosts := new(MockPostRepository)
	s, app := newTestServer(new(MockUserRepository), mockPosts, new(MockProfileRepository))
	app.Delete("/api/posts/:id", middleware.AuthRequired(s.codec), s.DeletePost)

	mockPosts.On("GetByID", mock.Anything, uint(1), uint(7)).
		Return(&models.Post{ID: 1, UserID: 7, Title: "Mine"}, nil)
	mockPosts.On("Delete", mock.Anything, uint(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, s, 7, models.RoleUser))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Post deleted", body["message"])
	mockPosts.AssertExpectations(t)
}
