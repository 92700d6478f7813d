package dto

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ContentRequest carries the text body for comments and tweets.
type ContentRequest struct {
	Content string `json:"content"`
}

// PublishVideoRequest carries the metadata for a new video. The media
// itself is uploaded out of band; only the resulting URLs arrive here.
type PublishVideoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	VideoFile   string  `json:"video_file" binding:"required"`
	Thumbnail   string  `json:"thumbnail" binding:"required"`
	Duration    float64 `json:"duration"`
}

// UpdateVideoRequest carries the mutable video fields; absent fields are
// left unchanged.
type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
}

// CreatePlaylistRequest is the payload for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdatePlaylistRequest carries the mutable playlist fields; absent fields
// are left unchanged.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
