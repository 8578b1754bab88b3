package seed

import (
	"fmt"
	"log"
	"math/rand"

	"devconnect/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates the database with demo data: a fixed admin and test
// account, a population of users with profiles, and posts with comments
// and likes spread across them.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users, err := createBaseAccounts(f)
	if err != nil {
		return fmt.Errorf("failed to create base accounts: %w", err)
	}

	for i := len(users); i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		// Roughly two thirds of seeded users fill in a profile.
		if rand.Intn(3) != 0 {
			if _, err := f.CreateProfile(user); err != nil {
				log.Printf("Failed to create profile for user %d: %v", user.ID, err)
			}
		}

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}
	log.Printf("✓ %d users created", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		user := users[rand.Intn(len(users))]
		post, err := f.CreatePost(user)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d posts...", i)
		}
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := seedEngagement(f, users, posts); err != nil {
		return fmt.Errorf("failed to seed engagement: %w", err)
	}

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

// createBaseAccounts always seeds a known admin and a known user so the
// app is immediately usable after seeding.
func createBaseAccounts(f *Factory) ([]*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	admin, err := f.CreateUser(func(u *models.User) {
		u.Name = "Admin"
		u.Email = "admin@example.com"
		u.Password = string(hashed)
		u.Role = models.RoleAdmin
	})
	if err != nil {
		return nil, err
	}

	tester, err := f.CreateUser(func(u *models.User) {
		u.Name = "Test User"
		u.Email = "test@example.com"
		u.Password = string(hashed)
	})
	if err != nil {
		return nil, err
	}
	if _, err := f.CreateProfile(tester, func(p *models.Profile) {
		p.Skill = "Go"
		p.Bio = "Just here to test things."
	}); err != nil {
		return nil, err
	}

	return []*models.User{admin, tester}, nil
}

// seedEngagement scatters comments and likes over the seeded posts. Each
// user likes a given post at most once; comment counts vary per post.
func seedEngagement(f *Factory, users []*models.User, posts []*models.Post) error {
	totalComments := 0
	totalLikes := 0

	for _, post := range posts {
		for i := 0; i < rand.Intn(6); i++ {
			commenter := users[rand.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return err
			}
			totalComments++
		}

		// Pick distinct likers by walking a shuffled copy of the users.
		numLikes := rand.Intn(len(users))/3 + 1
		perm := rand.Perm(len(users))
		for i := 0; i < numLikes && i < len(perm); i++ {
			if err := f.CreateLike(users[perm[i]], post); err != nil {
				return err
			}
			totalLikes++
		}
	}

	log.Printf("✓ %d comments, %d likes created", totalComments, totalLikes)
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE likes, comments, posts, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
