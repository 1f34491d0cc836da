// Package policy holds the stateless authorization predicates evaluated per
// request. Predicates combine the role capability table with ownership and
// staff escalation: a staff user bypasses role checks the same way an Admin
// does (admin OR staff, not admin AND staff).
package policy

import "inkwell/internal/models"

// Privileged reports whether the user bypasses ownership checks entirely.
func Privileged(u *models.User) bool {
	return u.IsStaff || u.Role.Can(models.CapManageAny)
}

// CanWriteBlogs reports whether the user may create blogs at all.
func CanWriteBlogs(u *models.User) bool {
	return u.IsStaff || u.Role.Can(models.CapWriteBlogs)
}

// CanMutateBlog reports whether the user may update or delete the given blog.
// Non-privileged users act only on their own rows.
func CanMutateBlog(u *models.User, blog *models.Blog) bool {
	if !CanWriteBlogs(u) {
		return false
	}
	return Privileged(u) || blog.AuthorID == u.ID
}

// CanMutateComment reports whether the user may edit the given comment.
func CanMutateComment(u *models.User, comment *models.Comment) bool {
	return Privileged(u) || comment.UserID == u.ID
}

// CanDeleteComment reports whether the user may delete the given comment.
// Admin/staff, the comment's author and the owning blog's author are each
// independently sufficient.
func CanDeleteComment(u *models.User, comment *models.Comment, blogAuthorID uint) bool {
	return Privileged(u) || comment.UserID == u.ID || blogAuthorID == u.ID
}

// CanActOnUser reports whether the user may read or mutate the given account.
func CanActOnUser(u *models.User, targetID uint) bool {
	return Privileged(u) || u.ID == targetID
}
