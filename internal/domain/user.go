package domain

type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleHR       UserRole = "hr"
)

type User struct {
	ID        int32    `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	Company   string   `json:"company"`
	AvatarURL string   `json:"avatar_url"`
	CreatedOn string   `json:"created_on"`
}

// ProfileSummary is the trimmed view returned by roster and team queries.
type ProfileSummary struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func (u *User) Summary() ProfileSummary {
	return ProfileSummary{Email: u.Email, Name: u.Name, AvatarURL: u.AvatarURL}
}
