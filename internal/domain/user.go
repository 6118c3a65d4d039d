package domain

// UserInfo is the identity returned by the identity provider. The store
// treats it as a trusted, opaque source and never validates credentials
// beyond matching login or email.
type UserInfo struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	IsOwner   bool   `json:"is_owner"`
}

// AuthorInfo is the denormalized display subset of UserInfo embedded in
// tasks and comments.
type AuthorInfo struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

func (u UserInfo) Author() AuthorInfo {
	return AuthorInfo{Login: u.Login, AvatarURL: u.AvatarURL}
}
