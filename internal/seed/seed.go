package seed

import (
	"fmt"
	"log"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Seeder populates the database with a realistic content mesh: users of all
// roles, categorized and tagged blogs, nested comment threads and votes.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder returns a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Join tables go first, then children,
// then parents.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"comment_upvotes",
		"comment_downvotes",
		"blog_tags",
		"comments",
		"blogs",
		"tags",
		"categories",
		"users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

var seedCategories = []string{
	"Technology", "Travel", "Food", "Science", "Lifestyle", "Finance",
}

// Seed builds the full demo dataset.
func (s *Seeder) Seed(numUsers, numBlogs int) error {
	users, err := s.seedUsers(numUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	categories, tags, err := s.seedTaxonomy()
	if err != nil {
		return fmt.Errorf("seeding taxonomy: %w", err)
	}

	blogs, err := s.seedBlogs(users, categories, tags, numBlogs)
	if err != nil {
		return fmt.Errorf("seeding blogs: %w", err)
	}

	if err := s.seedEngagement(users, blogs); err != nil {
		return fmt.Errorf("seeding engagement: %w", err)
	}

	log.Printf("Seeded %d users, %d blogs", len(users), len(blogs))
	return nil
}

// seedUsers creates one admin, a pool of authors and the remainder readers.
func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	if n < 3 {
		n = 3
	}
	users := make([]*models.User, 0, n)

	admin, err := s.factory.CreateUser(models.RoleAdmin, func(u *models.User) {
		u.Email = "admin@inkwell.dev"
		u.IsStaff = true
	})
	if err != nil {
		return nil, err
	}
	users = append(users, admin)

	numAuthors := n / 3
	for i := 0; i < numAuthors; i++ {
		author, err := s.factory.CreateUser(models.RoleAuthor)
		if err != nil {
			return nil, err
		}
		users = append(users, author)
	}
	for len(users) < n {
		reader, err := s.factory.CreateUser(models.RoleReader)
		if err != nil {
			return nil, err
		}
		users = append(users, reader)
	}
	return users, nil
}

func (s *Seeder) seedTaxonomy() ([]models.Category, []models.Tag, error) {
	categories := make([]models.Category, 0, len(seedCategories))
	for _, name := range seedCategories {
		c, err := s.factory.CreateCategory(name)
		if err != nil {
			return nil, nil, err
		}
		categories = append(categories, *c)
	}

	seen := map[string]bool{}
	tags := make([]models.Tag, 0, 12)
	for len(tags) < 12 {
		name := gofakeit.HackerNoun()
		if seen[name] {
			continue
		}
		seen[name] = true
		t, err := s.factory.CreateTag(name)
		if err != nil {
			return nil, nil, err
		}
		tags = append(tags, *t)
	}
	return categories, tags, nil
}

// writers returns the subset of users allowed to author blogs.
func writers(users []*models.User) []*models.User {
	var out []*models.User
	for _, u := range users {
		if u.Role.Can(models.CapWriteBlogs) {
			out = append(out, u)
		}
	}
	return out
}

func (s *Seeder) seedBlogs(users []*models.User, categories []models.Category, tags []models.Tag, n int) ([]*models.Blog, error) {
	authors := writers(users)
	rng := s.factory.rng

	blogs := make([]*models.Blog, 0, n)
	for i := 0; i < n; i++ {
		author := authors[rng.Intn(len(authors))]
		blog, err := s.factory.CreateBlog(author, func(b *models.Blog) {
			if rng.Intn(100) < 80 {
				b.CategoryID = &categories[rng.Intn(len(categories))].ID
			}
		})
		if err != nil {
			return nil, err
		}

		picked := make([]models.Tag, 0, 3)
		for _, idx := range rng.Perm(len(tags))[:rng.Intn(4)] {
			picked = append(picked, tags[idx])
		}
		if err := s.factory.AttachTags(blog, picked); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, nil
}

// seedEngagement adds threaded comments and votes to roughly two thirds of
// the blogs.
func (s *Seeder) seedEngagement(users []*models.User, blogs []*models.Blog) error {
	rng := s.factory.rng

	for _, blog := range blogs {
		if rng.Intn(3) == 0 {
			continue
		}

		numTop := 1 + rng.Intn(4)
		for i := 0; i < numTop; i++ {
			commenter := users[rng.Intn(len(users))]
			top, err := s.factory.CreateComment(commenter, blog, nil)
			if err != nil {
				return err
			}

			// occasional reply chain up to two levels deep
			parent := top
			for depth := 0; depth < 2 && rng.Intn(2) == 0; depth++ {
				replier := users[rng.Intn(len(users))]
				reply, err := s.factory.CreateComment(replier, blog, parent)
				if err != nil {
					return err
				}
				parent = reply
			}

			for _, idx := range rng.Perm(len(users))[:rng.Intn(5)] {
				voter := users[idx]
				if rng.Intn(4) == 0 {
					if err := s.factory.CreateDownvote(voter, top); err != nil {
						return err
					}
				} else {
					if err := s.factory.CreateUpvote(voter, top); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
