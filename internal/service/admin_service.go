package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// AdminService implements the moderation surface. Handlers reach it only
// through the admin gate.
type AdminService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func NewAdminService(userRepo repository.UserRepository, postRepo repository.PostRepository) *AdminService {
	return &AdminService{userRepo: userRepo, postRepo: postRepo}
}

func (s *AdminService) ListUsers(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, search, limit, offset)
}

func (s *AdminService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateRole sets a user's role. The role set is closed; anything outside
// {user, admin} is rejected.
func (s *AdminService) UpdateRole(ctx context.Context, id uint, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, models.NewValidationError("Role must be either 'user' or 'admin'")
	}
	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

// DeleteUser removes the user and every post they authored. Their comments
// on other users' posts are deliberately left in place so discussions stay
// readable; the soft-deleted author renders authorless.
func (s *AdminService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.postRepo.DeleteByUser(ctx, id, false); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *AdminService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset, 0)
}

func (s *AdminService) GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, 0)
}

// DeletePost removes any post regardless of owner.
func (s *AdminService) DeletePost(ctx context.Context, id uint) error {
	if _, err := s.postRepo.GetByID(ctx, id, 0); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}
