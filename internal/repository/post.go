package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	SetAuthor(ctx context.Context, postID, userID uint) error
	AddComment(ctx context.Context, comment *models.Comment) error
	Like(ctx context.Context, userID, postID uint) (bool, error)
	Unlike(ctx context.Context, userID, postID uint) error
	GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error)
	DeleteByUser(ctx context.Context, userID uint, permanent bool) error
	DeleteCommentsByUser(ctx context.Context, userID uint) error
	DeleteLikesByUser(ctx context.Context, userID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePostsList(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	fetch := func() error {
		if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			Preload("Likes").
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at ASC, id ASC")
			}).
			Preload("Comments.User").
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, key, &post, cache.PostTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(post.ID))
	cache.InvalidatePostsList(ctx)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(id))
	cache.InvalidatePostsList(ctx)
	return nil
}

// SetAuthor repairs a post whose author column was lost. Runs as a targeted
// column update so nothing else on the row moves.
func (r *postRepository) SetAuthor(ctx context.Context, postID, userID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Update("user_id", userID).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(postID))
	return nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(comment.PostID))
	return nil
}

// Like inserts the (user, post) membership row. INSERT ... ON CONFLICT DO
// NOTHING makes the flip atomic under concurrent requests; the return value
// reports whether this call inserted the row.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	cache.Invalidate(ctx, cache.PostKey(postID))
	return result.RowsAffected > 0, nil
}

func (r *postRepository) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var likedPostIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &likedPostIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likedPostIDs, nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(postID))
	return nil
}

// DeleteByUser removes every post authored by userID. Permanent deletion
// also strips the posts' comments and likes; soft deletion leaves them in
// place behind the soft-deleted posts.
func (r *postRepository) DeleteByUser(ctx context.Context, userID uint, permanent bool) error {
	if permanent {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var postIDs []uint
			if err := tx.Model(&models.Post{}).Unscoped().
				Where("user_id = ?", userID).
				Pluck("id", &postIDs).Error; err != nil {
				return err
			}
			if len(postIDs) > 0 {
				if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
					return err
				}
				if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
					return err
				}
			}
			return tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Post{}).Error
		})
		if err != nil {
			return models.NewInternalError(err)
		}
	} else {
		if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return models.NewInternalError(err)
		}
	}
	cache.InvalidatePostsList(ctx)
	return nil
}

func (r *postRepository) DeleteCommentsByUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) DeleteLikesByUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
