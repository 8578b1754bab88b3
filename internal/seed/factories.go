// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores the plain password instead of hashing it. Faster
	// for large runs; the accounts cannot log in.
	SkipBcrypt bool
	// DryRun builds entities without writing them to the database.
	DryRun bool
	// MaxDays spreads created_at timestamps over this many days back.
	MaxDays int
}

var skills = []string{
	"Go", "TypeScript", "Python", "Rust", "React", "Kubernetes",
	"PostgreSQL", "Terraform", "iOS", "Android", "Machine Learning",
	"Site Reliability", "Security", "Data Engineering",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:  gofakeit.Name(),
		Email: fmt.Sprintf("%s%d@example.com", gofakeit.Username(), gofakeit.Number(100, 999)),
		Role:  models.RoleUser,
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s> role=%s", user.Name, user.Email, user.Role)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile constructs and persists a profile for the given user.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	handle := gofakeit.Username()
	profile := &models.Profile{
		UserID: user.ID,
		Name:   user.Name,
		Bio:    gofakeit.Sentence(12),
		Skill:  skills[rand.Intn(len(skills))],
		SocialLinks: models.SocialLinks{
			Github:   fmt.Sprintf("https://github.com/%s", handle),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", handle),
			Twitter:  fmt.Sprintf("https://twitter.com/%s", handle),
		},
	}

	for _, override := range overrides {
		override(profile)
	}

	if f.opts.DryRun {
		f.nextID++
		profile.ID = f.nextID
		log.Printf("[dry-run] CreateProfile: user=%d skill=%s", profile.UserID, profile.Skill)
		return profile, nil
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// BuildPost constructs a post struct without persisting it. Useful for
// batching.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:   truncate(gofakeit.Sentence(5), models.MaxTitleLen),
		Content: truncate(gofakeit.Paragraph(1, 3, 5, "\n"), models.MaxContentLen),
		UserID:  user.ID,
	}

	if gofakeit.Float32Range(0, 1) < 0.4 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := rand.Intn(maxDays)
	hoursBack := rand.Intn(24)
	minsBack := rand.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, overrides...)

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost: user=%d title=%q", post.UserID, post.Title)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePostsBatch persists multiple posts in a single DB call when possible.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreatePostsBatch: %d posts (no DB write)", len(posts))
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment constructs and persists a comment on the provided post
// authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:   truncate(gofakeit.Sentence(8), models.MaxCommentLen),
		UserID: user.ID,
		PostID: post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	if f.opts.DryRun {
		return nil
	}
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Create(like).Error
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
