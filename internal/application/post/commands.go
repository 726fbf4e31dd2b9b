package post

// CreatePostCommand represents a command to start a new post stream
type CreatePostCommand struct {
	PostID string
}

// PublishPostCommand represents a command to publish a post.
// An empty Category leaves the post uncategorized.
type PublishPostCommand struct {
	PostID   string
	Title    string
	Content  string
	Category string
}

// TagPostCommand represents a command to add a tag to a post
type TagPostCommand struct {
	PostID string
	Tag    string
}

// UntagPostCommand represents a command to remove a tag from a post
type UntagPostCommand struct {
	PostID string
	Tag    string
}
