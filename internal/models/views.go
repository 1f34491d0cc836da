package models

import "time"

// Response views are the explicit per-operation output schemas: List, Detail
// and Write shapes of a Blog are distinct types rather than one struct with
// conditionally-populated fields.

// UserView is the author/voter summary embedded in blog and comment payloads.
type UserView struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Bio        string `json:"bio"`
	ProfilePic string `json:"profile_pic"`
}

// CategoryView is the category summary embedded in blog payloads.
type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagView is the tag summary embedded in blog payloads.
type TagView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CommentView is the serialized form of a comment, including its vote sets,
// derived vote counts and nested replies.
type CommentView struct {
	ID            uint          `json:"id"`
	BlogID        uint          `json:"blog_id"`
	User          UserView      `json:"user"`
	Content       string        `json:"content"`
	ParentID      *uint         `json:"parent_id,omitempty"`
	UpvotedBy     []UserView    `json:"upvoted_by"`
	DownvotedBy   []UserView    `json:"downvoted_by"`
	UpvoteCount   int           `json:"upvote_count"`
	DownvoteCount int           `json:"downvote_count"`
	Replies       []CommentView `json:"replies,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// BlogListView is the collection shape of a blog: summaries plus a comment
// count, without the nested comment trees.
type BlogListView struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	IsPublished     bool          `json:"is_published"`
	PublicationDate *time.Time    `json:"publication_date"`
	Author          UserView      `json:"author"`
	Category        *CategoryView `json:"category"`
	Tags            []TagView     `json:"tags"`
	CommentsCount   int           `json:"comments_count"`
}

// BlogDetailView is the single-blog shape: everything in the list view plus
// the threaded comments with vote counts.
type BlogDetailView struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	IsPublished     bool          `json:"is_published"`
	PublicationDate *time.Time    `json:"publication_date"`
	Author          UserView      `json:"author"`
	Category        *CategoryView `json:"category"`
	Tags            []TagView     `json:"tags"`
	Comments        []CommentView `json:"comments"`
}

// BlogWriteView echoes a created or updated blog using raw identifiers.
type BlogWriteView struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	IsPublished     bool       `json:"is_published"`
	PublicationDate *time.Time `json:"publication_date"`
	AuthorID        uint       `json:"author_id"`
	CategoryID      *uint      `json:"category_id"`
	TagIDs          []uint     `json:"tag_ids"`
}

// NewUserView builds the embedded user summary.
func NewUserView(u *User) UserView {
	return UserView{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Bio:        u.Bio,
		ProfilePic: u.ProfilePic,
	}
}

func newUserViews(users []User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}

func newTagViews(tags []Tag) []TagView {
	views := make([]TagView, 0, len(tags))
	for _, t := range tags {
		views = append(views, TagView{ID: t.ID, Name: t.Name})
	}
	return views
}

func newCategoryView(c *Category) *CategoryView {
	if c == nil {
		return nil
	}
	return &CategoryView{ID: c.ID, Name: c.Name}
}

// NewCommentView builds the serialized comment with derived vote counts.
// Replies are not attached here; BuildCommentTree assembles them.
func NewCommentView(c *Comment) CommentView {
	return CommentView{
		ID:            c.ID,
		BlogID:        c.BlogID,
		User:          NewUserView(&c.User),
		Content:       c.Content,
		ParentID:      c.ParentID,
		UpvotedBy:     newUserViews(c.UpvotedBy),
		DownvotedBy:   newUserViews(c.DownvotedBy),
		UpvoteCount:   len(c.UpvotedBy),
		DownvoteCount: len(c.DownvotedBy),
		CreatedAt:     c.CreatedAt,
	}
}

// BuildCommentTree assembles a flat comment slice into a forest of top-level
// comment views with nested replies. Input order is preserved within each
// level.
func BuildCommentTree(comments []Comment) []CommentView {
	children := make(map[uint][]*Comment)
	var roots []*Comment
	for i := range comments {
		c := &comments[i]
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var build func(c *Comment) CommentView
	build = func(c *Comment) CommentView {
		view := NewCommentView(c)
		for _, child := range children[c.ID] {
			view.Replies = append(view.Replies, build(child))
		}
		return view
	}

	views := make([]CommentView, 0, len(roots))
	for _, root := range roots {
		views = append(views, build(root))
	}
	return views
}

// NewBlogListView builds the collection shape of a blog.
func NewBlogListView(b *Blog) BlogListView {
	return BlogListView{
		ID:              b.ID,
		Title:           b.Title,
		Content:         b.Content,
		IsPublished:     b.IsPublished,
		PublicationDate: b.PublicationDate,
		Author:          NewUserView(&b.Author),
		Category:        newCategoryView(b.Category),
		Tags:            newTagViews(b.Tags),
		CommentsCount:   b.CommentsCount,
	}
}

// NewBlogDetailView builds the single-blog shape with threaded comments.
func NewBlogDetailView(b *Blog, comments []Comment) BlogDetailView {
	return BlogDetailView{
		ID:              b.ID,
		Title:           b.Title,
		Content:         b.Content,
		IsPublished:     b.IsPublished,
		PublicationDate: b.PublicationDate,
		Author:          NewUserView(&b.Author),
		Category:        newCategoryView(b.Category),
		Tags:            newTagViews(b.Tags),
		Comments:        BuildCommentTree(comments),
	}
}

// NewBlogWriteView echoes a persisted blog for create/update responses.
func NewBlogWriteView(b *Blog) BlogWriteView {
	tagIDs := make([]uint, 0, len(b.Tags))
	for _, t := range b.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	return BlogWriteView{
		ID:              b.ID,
		Title:           b.Title,
		Content:         b.Content,
		IsPublished:     b.IsPublished,
		PublicationDate: b.PublicationDate,
		AuthorID:        b.AuthorID,
		CategoryID:      b.CategoryID,
		TagIDs:          tagIDs,
	}
}
