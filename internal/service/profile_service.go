package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileService manages developer profiles and the account self-delete
// cascade.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
}

type ProfileInput struct {
	UserID      uint
	Name        string
	Bio         string
	Skill       string
	SocialLinks models.SocialLinks
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
	}
}

func (s *ProfileService) GetMine(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile", userID)
	}
	return profile, nil
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.GetMine(ctx, userID)
}

func (s *ProfileService) ListProfiles(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	return s.profileRepo.List(ctx, limit, offset)
}

// CreateProfile creates the caller's profile. Uniqueness is enforced with a
// lookup before create; a second create reports a conflict.
func (s *ProfileService) CreateProfile(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Profile already exists")
	}

	name := in.Name
	if name == "" {
		user, err := s.userRepo.GetByID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		name = user.Name
	}

	profile := &models.Profile{
		UserID:      in.UserID,
		Name:        name,
		Bio:         in.Bio,
		Skill:       in.Skill,
		SocialLinks: in.SocialLinks,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return s.GetMine(ctx, in.UserID)
}

// UpdateProfile merges non-empty fields into the caller's profile. Social
// links merge per-field so updating one link leaves the others alone.
func (s *ProfileService) UpdateProfile(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	profile, err := s.GetMine(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		profile.Name = in.Name
	}
	if in.Bio != "" {
		profile.Bio = in.Bio
	}
	if in.Skill != "" {
		profile.Skill = in.Skill
	}
	if in.SocialLinks.Github != "" {
		profile.SocialLinks.Github = in.SocialLinks.Github
	}
	if in.SocialLinks.Linkedin != "" {
		profile.SocialLinks.Linkedin = in.SocialLinks.Linkedin
	}
	if in.SocialLinks.Twitter != "" {
		profile.SocialLinks.Twitter = in.SocialLinks.Twitter
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteAccount removes every trace of the caller: the profile, their posts
// with all attached comments and likes, their comments and likes on other
// users' posts, and finally the user record itself. After this, login for
// the account fails as bad credentials.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.postRepo.DeleteByUser(ctx, userID, true); err != nil {
		return err
	}
	if err := s.postRepo.DeleteCommentsByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.postRepo.DeleteLikesByUser(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.DeletePermanent(ctx, userID)
}
