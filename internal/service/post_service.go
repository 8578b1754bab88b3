package service

import (
	"context"
	"fmt"
	"strings"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID   uint
	Title    string
	Content  string
	ImageURL string
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    string
	Content  string
	ImageURL string
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)

	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > models.MaxTitleLen {
		return nil, models.NewValidationError(fmt.Sprintf("Title too long (max %d characters)", models.MaxTitleLen))
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > models.MaxContentLen {
		return nil, models.NewValidationError(fmt.Sprintf("Content too long (max %d characters)", models.MaxContentLen))
	}

	post := &models.Post{
		UserID:   in.UserID,
		Title:    title,
		Content:  content,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// defaultListLimit is the page size the feed serves when the client sends
// no limit. Only this exact page is cached; the key carries no page
// parameters, so caching any other shape would serve it to default requests.
const defaultListLimit = 20

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	var posts []*models.Post
	var err error

	if in.Offset == 0 && in.Limit == defaultListLimit {
		key := cache.PostsListKey()
		err = cache.Aside(ctx, key, &posts, cache.ListTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, in.Limit, in.Offset, 0)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}

		// Cached entries carry liked=false; re-enrich for the requesting user.
		if in.CurrentUserID != 0 && len(posts) > 0 {
			postIDs := make([]uint, len(posts))
			for i, p := range posts {
				postIDs[i] = p.ID
			}

			likedIDs, err := s.postRepo.GetLikedPostIDs(ctx, in.CurrentUserID, postIDs)
			if err == nil {
				likedMap := make(map[uint]bool, len(likedIDs))
				for _, id := range likedIDs {
					likedMap[id] = true
				}
				for _, p := range posts {
					p.Liked = likedMap[p.ID]
				}
			}
		}
		return posts, nil
	}

	return s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

// UpdatePost rewrites the caller's own post. Title and content are both
// required; only the image keeps its old value when omitted. A post owned
// by someone else is reported as not found rather than forbidden, so the
// response does not confirm the post exists.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}
	if len(title) > models.MaxTitleLen {
		return nil, models.NewValidationError(fmt.Sprintf("Title too long (max %d characters)", models.MaxTitleLen))
	}
	if len(content) > models.MaxContentLen {
		return nil, models.NewValidationError(fmt.Sprintf("Content too long (max %d characters)", models.MaxContentLen))
	}

	post.Title = title
	post.Content = content
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID, in.UserID)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewNotFoundError("Post", postID)
	}
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the caller's membership in the post's like set and
// returns the post reloaded with the updated set. The flip is a single
// insert-or-nothing at the storage layer, so two concurrent toggles by the
// same user resolve to exactly one membership change each.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.backfillAuthor(ctx, post, userID); err != nil {
		return nil, err
	}

	inserted, err := s.postRepo.Like(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		// Already a member: this toggle removes the like.
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return nil, err
		}
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}

// AddComment appends a comment to the post. Comments are append-only and
// never reordered.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.Post, error) {
	// An unknown post reads as not found even when the text is also bad.
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > models.MaxCommentLen {
		return nil, models.NewValidationError(fmt.Sprintf("Comment too long (max %d characters)", models.MaxCommentLen))
	}

	if err := s.backfillAuthor(ctx, post, userID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}

// backfillAuthor repairs a post whose author reference was lost by older
// data: the first user to interact with it is recorded as its author.
func (s *PostService) backfillAuthor(ctx context.Context, post *models.Post, userID uint) error {
	if post.UserID != 0 {
		return nil
	}
	if err := s.postRepo.SetAuthor(ctx, post.ID, userID); err != nil {
		return err
	}
	post.UserID = userID
	return nil
}
