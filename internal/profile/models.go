package profile

// UserProfile holds the user settings and contact details. A single
// record: saves replace the whole document, last write wins.
type UserProfile struct {
	Name                 string `json:"name"`
	Email                string `json:"email" binding:"omitempty,email"`
	Phone                string `json:"phone"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	DarkMode             bool   `json:"darkMode"`
}

// DefaultProfile is what the user sees before saving anything.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:                 "User",
		Email:                "user@example.com",
		Phone:                "+7 (999) 123-45-67",
		NotificationsEnabled: true,
		DarkMode:             false,
	}
}
