package seed

import (
	"fmt"
	"math/rand"

	"microblog/internal/models"

	"gorm.io/gorm"
)

// Options controls how much data Run generates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
}

// DefaultOptions is a small but connected data set.
var DefaultOptions = Options{
	Users:           10,
	PostsPerUser:    3,
	CommentsPerPost: 2,
}

// Run populates the database with users, posts and comments. Comment authors
// are drawn randomly from the seeded users so the social graph crosses
// ownership boundaries.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			for j := 0; j < opts.CommentsPerPost; j++ {
				author := users[rand.Intn(len(users))]
				if _, err := f.CreateComment(author, post); err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
			}
		}
	}

	return nil
}
