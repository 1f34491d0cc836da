package models

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleAuthor Role = "Author"
	RoleReader Role = "Reader"
)

// Capability is a single permission a role can hold.
type Capability uint8

const (
	// CapWriteBlogs allows creating blogs and mutating one's own blogs.
	CapWriteBlogs Capability = iota
	// CapManageAny allows mutating any resource regardless of ownership.
	CapManageAny
	// CapComment allows commenting, replying and voting.
	CapComment
)

// roleCapabilities is the capability lookup table. All permission checks go
// through Role.Can so call sites never branch on the role string itself.
var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin:  {CapWriteBlogs: true, CapManageAny: true, CapComment: true},
	RoleAuthor: {CapWriteBlogs: true, CapComment: true},
	RoleReader: {CapComment: true},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role holds the given capability.
// Unknown roles hold no capabilities.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}
