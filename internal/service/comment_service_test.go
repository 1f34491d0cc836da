package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopBlogRepo(), noCache())

	view, err := svc.CreateComment(context.Background(), reader(), 1, "")
	assert.Nil(t, view)
	assertCode(t, err, models.CodeValidation)
}

func TestCommentService_CreateComment_MissingBlog(t *testing.T) {
	t.Parallel()

	blogRepo := noopBlogRepo()
	blogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
		return nil, models.NewNotFoundError("Blog", id)
	}
	svc := NewCommentService(noopCommentRepo(), blogRepo, noCache())

	_, err := svc.CreateComment(context.Background(), reader(), 404, "hello")
	assertCode(t, err, models.CodeNotFound)
}

func TestCommentService_CreateComment(t *testing.T) {
	t.Parallel()

	var created *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, comment *models.Comment) error {
		comment.ID = 5
		created = comment
		return nil
	}
	svc := NewCommentService(commentRepo, noopBlogRepo(), noCache())

	view, err := svc.CreateComment(context.Background(), reader(), 3, "hello")
	require.NoError(t, err)
	require.NotNil(t, view)

	require.NotNil(t, created)
	assert.Equal(t, uint(3), created.BlogID)
	assert.Equal(t, uint(2), created.UserID)
	assert.Nil(t, created.ParentID)
}

func TestCommentService_Reply_InheritsParentBlog(t *testing.T) {
	t.Parallel()

	parent := &models.Comment{ID: 8, BlogID: 3, UserID: 1, Content: "parent"}
	var created *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		if id == parent.ID {
			return parent, nil
		}
		return &models.Comment{ID: id, BlogID: 3, UserID: 2, Content: "reply"}, nil
	}
	commentRepo.createFn = func(_ context.Context, comment *models.Comment) error {
		comment.ID = 9
		created = comment
		return nil
	}
	svc := NewCommentService(commentRepo, noopBlogRepo(), noCache())

	_, err := svc.Reply(context.Background(), reader(), parent.ID, "reply")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, parent.BlogID, created.BlogID)
	require.NotNil(t, created.ParentID)
	assert.Equal(t, parent.ID, *created.ParentID)
}

func TestCommentService_Reply_MissingParent(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return nil, models.NewNotFoundError("Comment", id)
	}
	svc := NewCommentService(commentRepo, noopBlogRepo(), noCache())

	_, err := svc.Reply(context.Background(), reader(), 404, "reply")
	assertCode(t, err, models.CodeNotFound)
}

func TestCommentService_UpdateComment_Permissions(t *testing.T) {
	t.Parallel()

	owner := reader()
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, BlogID: 1, UserID: owner.ID, Content: "mine"}, nil
	}
	svc := NewCommentService(commentRepo, noopBlogRepo(), noCache())
	ctx := context.Background()

	_, err := svc.UpdateComment(ctx, owner, 5, "edited")
	assert.NoError(t, err)

	_, err = svc.UpdateComment(ctx, admin(), 5, "edited")
	assert.NoError(t, err)

	stranger := &models.User{ID: 42, Role: models.RoleReader}
	_, err = svc.UpdateComment(ctx, stranger, 5, "edited")
	assertCode(t, err, models.CodeForbidden)

	// Owning the blog does not grant edit rights over others' comments.
	_, err = svc.UpdateComment(ctx, author(), 5, "edited")
	assertCode(t, err, models.CodeForbidden)
}

func TestCommentService_DeleteComment_Permissions(t *testing.T) {
	t.Parallel()

	commentAuthor := reader()
	blogAuthor := author()

	tests := []struct {
		name      string
		actor     *models.User
		forbidden bool
	}{
		{name: "Comment Author", actor: commentAuthor},
		{name: "Blog Author", actor: blogAuthor},
		{name: "Admin", actor: admin()},
		{name: "Staff", actor: &models.User{ID: 50, Role: models.RoleReader, IsStaff: true}},
		{name: "Unrelated Reader", actor: &models.User{ID: 60, Role: models.RoleReader}, forbidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var deleted bool
			commentRepo := noopCommentRepo()
			commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
				return &models.Comment{ID: id, BlogID: 9, UserID: commentAuthor.ID, Content: "c"}, nil
			}
			commentRepo.deleteSubtreeFn = func(_ context.Context, _ uint) error {
				deleted = true
				return nil
			}
			blogRepo := noopBlogRepo()
			blogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
				return &models.Blog{ID: id, Title: "t", Content: "c", AuthorID: blogAuthor.ID}, nil
			}
			svc := NewCommentService(commentRepo, blogRepo, noCache())

			err := svc.DeleteComment(context.Background(), tt.actor, 5)
			if tt.forbidden {
				assertCode(t, err, models.CodeForbidden)
				assert.False(t, deleted)
				return
			}
			require.NoError(t, err)
			assert.True(t, deleted)
		})
	}
}

func TestCommentService_Votes(t *testing.T) {
	t.Parallel()

	var upvotes, downvotes, removedUp, removedDown int
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{
			ID:            id,
			BlogID:        3,
			UserID:        1,
			Content:       "c",
			UpvoteCount:   1,
			DownvoteCount: 0,
		}, nil
	}
	commentRepo.upvoteFn = func(_ context.Context, commentID, userID uint) error {
		assert.Equal(t, uint(5), commentID)
		assert.Equal(t, uint(2), userID)
		upvotes++
		return nil
	}
	commentRepo.downvoteFn = func(_ context.Context, _, _ uint) error { downvotes++; return nil }
	commentRepo.removeUpvoteFn = func(_ context.Context, _, _ uint) error { removedUp++; return nil }
	commentRepo.removeDownvoteFn = func(_ context.Context, _, _ uint) error { removedDown++; return nil }

	svc := NewCommentService(commentRepo, noopBlogRepo(), noCache())
	ctx := context.Background()
	voter := reader()

	view, err := svc.Upvote(ctx, voter, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, view.UpvoteCount)

	_, err = svc.Downvote(ctx, voter, 5)
	require.NoError(t, err)
	_, err = svc.RemoveUpvote(ctx, voter, 5)
	require.NoError(t, err)
	_, err = svc.RemoveDownvote(ctx, voter, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, upvotes)
	assert.Equal(t, 1, downvotes)
	assert.Equal(t, 1, removedUp)
	assert.Equal(t, 1, removedDown)
}

func TestCommentService_Vote_MissingComment(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.upvoteFn = func(_ context.Context, commentID, _ uint) error {
		return models.NewNotFoundError("Comment", commentID)
	}
	svc := NewCommentService(commentRepo, noopBlogRepo(), noCache())

	view, err := svc.Upvote(context.Background(), reader(), 404)
	assert.Nil(t, view)
	assertCode(t, err, models.CodeNotFound)
}

func TestCommentService_WritesInvalidateBlogCache(t *testing.T) {
	t.Parallel()

	cacheClient, mr := liveCache(t)
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, BlogID: 3, UserID: 2, Content: "c"}, nil
	}
	svc := NewCommentService(commentRepo, noopBlogRepo(), cacheClient)
	ctx := context.Background()

	seedKeys := func() {
		require.NoError(t, mr.Set("blog_list", "[]"))
		require.NoError(t, mr.Set("blog_3", "{}"))
	}

	seedKeys()
	_, err := svc.CreateComment(ctx, reader(), 3, "hello")
	require.NoError(t, err)
	assert.False(t, mr.Exists("blog_3"))
	assert.False(t, mr.Exists("blog_list"))

	seedKeys()
	_, err = svc.Upvote(ctx, reader(), 5)
	require.NoError(t, err)
	assert.False(t, mr.Exists("blog_3"))

	seedKeys()
	require.NoError(t, svc.DeleteComment(ctx, admin(), 5))
	assert.False(t, mr.Exists("blog_3"))
}

func TestCommentService_ListComments_BuildsTree(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.listByBlogFn = func(_ context.Context, blogID uint) ([]models.Comment, error) {
		return []models.Comment{
			{ID: 1, BlogID: blogID, UserID: 1, Content: "root"},
			{ID: 2, BlogID: blogID, UserID: 2, Content: "child", ParentID: uintPtr(1)},
			{ID: 3, BlogID: blogID, UserID: 1, Content: "other root"},
		}, nil
	}
	svc := NewCommentService(commentRepo, noopBlogRepo(), noCache())

	views, err := svc.ListComments(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "root", views[0].Content)
	require.Len(t, views[0].Replies, 1)
	assert.Equal(t, "child", views[0].Replies[0].Content)
	assert.Empty(t, views[1].Replies)
}
