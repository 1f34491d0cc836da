package repository

import (
	"fmt"
	"testing"

	"inkwell/internal/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB wires a gorm connection over sqlmock for tests that assert on
// the exact SQL a repository emits.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// setupTestDB opens a fresh in-memory sqlite database for behavioral tests
// that exercise real transactions and associations.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
		&models.Comment{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Email:     fmt.Sprintf("user%d@example.com", userSeq()),
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBlog(t *testing.T, db *gorm.DB, author *models.User) *models.Blog {
	t.Helper()

	blog := &models.Blog{
		Title:       "Seed Blog",
		Content:     "Seed content",
		AuthorID:    author.ID,
		IsPublished: true,
	}
	require.NoError(t, db.Create(blog).Error)
	return blog
}

func seedComment(t *testing.T, db *gorm.DB, blog *models.Blog, user *models.User, parentID *uint, content string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Content:  content,
		BlogID:   blog.ID,
		UserID:   user.ID,
		ParentID: parentID,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

var seq int

func userSeq() int {
	seq++
	return seq
}
