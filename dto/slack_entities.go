package dto

// SlackProfile is the part of a Slack user profile the bot cares about.
type SlackProfile struct {
	StatusText       string `json:"status_text,omitempty"`
	StatusEmoji      string `json:"status_emoji,omitempty"`
	StatusExpiration int64  `json:"status_expiration,omitempty"` // Unix seconds; 0 means the status never expires
	AvatarHash       string `json:"avatar_hash"`
}

// SlackProfileResponse is returned by both users.profile.get and users.setPhoto.
type SlackProfileResponse struct {
	Ok      bool          `json:"ok"`
	Error   string        `json:"error,omitempty"`
	Profile *SlackProfile `json:"profile,omitempty"`
}
