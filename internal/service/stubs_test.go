package service

import (
	"context"
	"errors"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn               func(context.Context, *models.Post) error
	getByIDFn              func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn          func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listFn                 func(context.Context, int, int, uint) ([]*models.Post, error)
	updateFn               func(context.Context, *models.Post) error
	deleteFn               func(context.Context, uint) error
	setAuthorFn            func(context.Context, uint, uint) error
	addCommentFn           func(context.Context, *models.Comment) error
	likeFn                 func(context.Context, uint, uint) (bool, error)
	unlikeFn               func(context.Context, uint, uint) error
	getLikedPostIDsFn      func(context.Context, uint, []uint) ([]uint, error)
	deleteByUserFn         func(context.Context, uint, bool) error
	deleteCommentsByUserFn func(context.Context, uint) error
	deleteLikesByUserFn    func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) SetAuthor(ctx context.Context, postID, userID uint) error {
	return s.setAuthorFn(ctx, postID, userID)
}
func (s *postRepoStub) AddComment(ctx context.Context, comment *models.Comment) error {
	return s.addCommentFn(ctx, comment)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	return s.getLikedPostIDsFn(ctx, userID, postIDs)
}
func (s *postRepoStub) DeleteByUser(ctx context.Context, userID uint, permanent bool) error {
	return s.deleteByUserFn(ctx, userID, permanent)
}
func (s *postRepoStub) DeleteCommentsByUser(ctx context.Context, userID uint) error {
	return s.deleteCommentsByUserFn(ctx, userID)
}
func (s *postRepoStub) DeleteLikesByUser(ctx context.Context, userID uint) error {
	return s.deleteLikesByUserFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:               func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:              func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getByUserIDFn:          func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listFn:                 func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		updateFn:               func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:               func(_ context.Context, _ uint) error { return nil },
		setAuthorFn:            func(_ context.Context, _, _ uint) error { return nil },
		addCommentFn:           func(_ context.Context, _ *models.Comment) error { return nil },
		likeFn:                 func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unlikeFn:               func(_ context.Context, _, _ uint) error { return nil },
		getLikedPostIDsFn:      func(_ context.Context, _ uint, _ []uint) ([]uint, error) { return nil, nil },
		deleteByUserFn:         func(_ context.Context, _ uint, _ bool) error { return nil },
		deleteCommentsByUserFn: func(_ context.Context, _ uint) error { return nil },
		deleteLikesByUserFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, *models.User) error
	updateRoleFn      func(context.Context, uint, string) error
	deleteFn          func(context.Context, uint) error
	deletePermanentFn func(context.Context, uint) error
	listFn            func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdateRole(ctx context.Context, id uint, role string) error {
	return s.updateRoleFn(ctx, id, role)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) DeletePermanent(ctx context.Context, id uint) error {
	return s.deletePermanentFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, search, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:         func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:      func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:          func(_ context.Context, _ *models.User) error { return nil },
		updateFn:          func(_ context.Context, _ *models.User) error { return nil },
		updateRoleFn:      func(_ context.Context, _ uint, _ string) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
		deletePermanentFn: func(_ context.Context, _ uint) error { return nil },
		listFn:            func(_ context.Context, _ string, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn    func(context.Context, uint) (*models.Profile, error)
	listFn           func(context.Context, int, int) ([]models.Profile, error)
	createFn         func(context.Context, *models.Profile) error
	updateFn         func(context.Context, *models.Profile) error
	deleteByUserIDFn func(context.Context, uint) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn:    func(_ context.Context, _ uint) (*models.Profile, error) { return nil, nil },
		listFn:           func(_ context.Context, _, _ int) ([]models.Profile, error) { return nil, nil },
		createFn:         func(_ context.Context, _ *models.Profile) error { return nil },
		updateFn:         func(_ context.Context, _ *models.Profile) error { return nil },
		deleteByUserIDFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
