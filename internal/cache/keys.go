package cache

import "fmt"

// Two key families cover the cached blog views: the serialized collection and
// per-blog detail payloads.
const (
	BlogListKey   = "blog_list"
	blogKeyFormat = "blog_%d"
)

// BlogKey returns the detail cache key for the given blog.
func BlogKey(blogID uint) string {
	return fmt.Sprintf(blogKeyFormat, blogID)
}
