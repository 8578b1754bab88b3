package server

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/auth"
	"devconnect/internal/config"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the repository.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uint, role string) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeletePermanent(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, search, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockPostRepository is a mock of the repository.PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, userID, limit, offset, currentUserID)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, limit, offset, currentUserID)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) SetAuthor(ctx context.Context, postID, userID uint) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockPostRepository) Like(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Unlike(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	args := m.Called(ctx, userID, postIDs)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPostRepository) DeleteByUser(ctx context.Context, userID uint, permanent bool) error {
	args := m.Called(ctx, userID, permanent)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteCommentsByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteLikesByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockProfileRepository is a mock of the repository.ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

const testAdminSecret = "test_admin_secret"

// newTestServer wires a Server around mock repositories so handlers can be
// mounted on a bare Fiber app without a database or Redis.
func newTestServer(userRepo repository.UserRepository, postRepo repository.PostRepository, profileRepo repository.ProfileRepository) (*Server, *fiber.App) {
	cfg := &config.Config{
		JWTSecret:   "test_secret",
		AdminSecret: testAdminSecret,
	}
	codec := auth.NewCodec(cfg.JWTSecret, time.Hour)

	s := &Server{
		config:      cfg,
		codec:       codec,
		userRepo:    userRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
	s.authService = service.NewAuthService(userRepo, codec, cfg.AdminSecret)
	s.postService = service.NewPostService(postRepo)
	s.profileService = service.NewProfileService(profileRepo, userRepo, postRepo)
	s.adminService = service.NewAdminService(userRepo, postRepo)

	return s, fiber.New()
}

// tokenFor issues a signed token for the given user, the way login does.
func tokenFor(t *testing.T, s *Server, userID uint, role string) string {
	t.Helper()
	token, err := s.codec.Issue(auth.Identity{
		UserID: userID,
		Name:   "Test User",
		Email:  "test@example.com",
		Role:   role,
	})
	require.NoError(t, err)
	return token
}
