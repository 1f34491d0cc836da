package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// blogRepoStub is a stub for repository.BlogRepository.
type blogRepoStub struct {
	createFn       func(context.Context, *models.Blog) error
	getByIDFn      func(context.Context, uint) (*models.Blog, error)
	listFn         func(context.Context, repository.BlogFilter) ([]*models.Blog, error)
	listByAuthorFn func(context.Context, uint) ([]*models.Blog, error)
	updateFn       func(context.Context, *models.Blog) error
	replaceTagsFn  func(context.Context, *models.Blog, []models.Tag) error
	deleteFn       func(context.Context, uint) error
}

func (s *blogRepoStub) Create(ctx context.Context, blog *models.Blog) error {
	return s.createFn(ctx, blog)
}
func (s *blogRepoStub) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	return s.getByIDFn(ctx, id)
}
func (s *blogRepoStub) List(ctx context.Context, filter repository.BlogFilter) ([]*models.Blog, error) {
	return s.listFn(ctx, filter)
}
func (s *blogRepoStub) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Blog, error) {
	return s.listByAuthorFn(ctx, authorID)
}
func (s *blogRepoStub) Update(ctx context.Context, blog *models.Blog) error {
	return s.updateFn(ctx, blog)
}
func (s *blogRepoStub) ReplaceTags(ctx context.Context, blog *models.Blog, tags []models.Tag) error {
	return s.replaceTagsFn(ctx, blog, tags)
}
func (s *blogRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopBlogRepo() *blogRepoStub {
	return &blogRepoStub{
		createFn: func(_ context.Context, blog *models.Blog) error {
			blog.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Blog, error) {
			return &models.Blog{ID: id, Title: "t", Content: "c", AuthorID: 1}, nil
		},
		listFn:         func(_ context.Context, _ repository.BlogFilter) ([]*models.Blog, error) { return nil, nil },
		listByAuthorFn: func(_ context.Context, _ uint) ([]*models.Blog, error) { return nil, nil },
		updateFn:       func(_ context.Context, _ *models.Blog) error { return nil },
		replaceTagsFn:  func(_ context.Context, _ *models.Blog, _ []models.Tag) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn         func(context.Context, *models.Comment) error
	getByIDFn        func(context.Context, uint) (*models.Comment, error)
	listByBlogFn     func(context.Context, uint) ([]models.Comment, error)
	updateFn         func(context.Context, *models.Comment) error
	deleteSubtreeFn  func(context.Context, uint) error
	upvoteFn         func(context.Context, uint, uint) error
	downvoteFn       func(context.Context, uint, uint) error
	removeUpvoteFn   func(context.Context, uint, uint) error
	removeDownvoteFn func(context.Context, uint, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByBlog(ctx context.Context, blogID uint) ([]models.Comment, error) {
	return s.listByBlogFn(ctx, blogID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) DeleteSubtree(ctx context.Context, id uint) error {
	return s.deleteSubtreeFn(ctx, id)
}
func (s *commentRepoStub) Upvote(ctx context.Context, commentID, userID uint) error {
	return s.upvoteFn(ctx, commentID, userID)
}
func (s *commentRepoStub) Downvote(ctx context.Context, commentID, userID uint) error {
	return s.downvoteFn(ctx, commentID, userID)
}
func (s *commentRepoStub) RemoveUpvote(ctx context.Context, commentID, userID uint) error {
	return s.removeUpvoteFn(ctx, commentID, userID)
}
func (s *commentRepoStub) RemoveDownvote(ctx context.Context, commentID, userID uint) error {
	return s.removeDownvoteFn(ctx, commentID, userID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, comment *models.Comment) error {
			comment.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, Content: "c", BlogID: 1, UserID: 1}, nil
		},
		listByBlogFn:     func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		updateFn:         func(_ context.Context, _ *models.Comment) error { return nil },
		deleteSubtreeFn:  func(_ context.Context, _ uint) error { return nil },
		upvoteFn:         func(_ context.Context, _, _ uint) error { return nil },
		downvoteFn:       func(_ context.Context, _, _ uint) error { return nil },
		removeUpvoteFn:   func(_ context.Context, _, _ uint) error { return nil },
		removeDownvoteFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

// taxonomyRepoStub is a stub for repository.TaxonomyRepository.
type taxonomyRepoStub struct {
	listCategoriesFn func(context.Context) ([]models.Category, error)
	getCategoryFn    func(context.Context, uint) (*models.Category, error)
	createCategoryFn func(context.Context, *models.Category) error
	deleteCategoryFn func(context.Context, uint) ([]uint, error)
	listTagsFn       func(context.Context) ([]models.Tag, error)
	getTagsByIDsFn   func(context.Context, []uint) ([]models.Tag, error)
	createTagFn      func(context.Context, *models.Tag) error
}

func (s *taxonomyRepoStub) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.listCategoriesFn(ctx)
}
func (s *taxonomyRepoStub) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return s.getCategoryFn(ctx, id)
}
func (s *taxonomyRepoStub) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.createCategoryFn(ctx, category)
}
func (s *taxonomyRepoStub) DeleteCategory(ctx context.Context, id uint) ([]uint, error) {
	return s.deleteCategoryFn(ctx, id)
}
func (s *taxonomyRepoStub) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.listTagsFn(ctx)
}
func (s *taxonomyRepoStub) GetTagsByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	return s.getTagsByIDsFn(ctx, ids)
}
func (s *taxonomyRepoStub) CreateTag(ctx context.Context, tag *models.Tag) error {
	return s.createTagFn(ctx, tag)
}

func noopTaxonomyRepo() *taxonomyRepoStub {
	return &taxonomyRepoStub{
		listCategoriesFn: func(_ context.Context) ([]models.Category, error) { return nil, nil },
		getCategoryFn: func(_ context.Context, id uint) (*models.Category, error) {
			return &models.Category{ID: id, Name: "cat"}, nil
		},
		createCategoryFn: func(_ context.Context, _ *models.Category) error { return nil },
		deleteCategoryFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		listTagsFn:       func(_ context.Context) ([]models.Tag, error) { return nil, nil },
		getTagsByIDsFn: func(_ context.Context, ids []uint) ([]models.Tag, error) {
			tags := make([]models.Tag, 0, len(ids))
			for _, id := range ids {
				tags = append(tags, models.Tag{ID: id, Name: "tag"})
			}
			return tags, nil
		},
		createTagFn: func(_ context.Context, _ *models.Tag) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
	listFn       func(context.Context, int, int) ([]models.User, error)
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
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "user@example.com", Role: models.RoleReader}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn: func(_ context.Context, user *models.User) error {
			user.ID = 1
			return nil
		},
		updateFn: func(_ context.Context, _ *models.User) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		listFn:   func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}
