package models

// User is the account profile served by the /me/ endpoints. Aggregate
// solve counters are computed by the backend and read-only here.
type User struct {
	ID                   int    `json:"id"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	FirstName            string `json:"first_name,omitempty"`
	LastName             string `json:"last_name,omitempty"`
	LeetcodeUsername     string `json:"leetcode_username,omitempty"`
	Bio                  string `json:"bio,omitempty"`
	CurrentStreak        int    `json:"current_streak"`
	LongestStreak        int    `json:"longest_streak"`
	TotalProblemsSolved  int    `json:"total_problems_solved"`
	EasyProblemsSolved   int    `json:"easy_problems_solved"`
	MediumProblemsSolved int    `json:"medium_problems_solved"`
	HardProblemsSolved   int    `json:"hard_problems_solved"`
	IsPremium            bool   `json:"is_premium"`
}

// TokenPair is the body of a successful login/registration/federated
// login response.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    *User  `json:"user,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the registration request body. Password1/Password2 is
// the backend's confirm-password convention.
type Registration struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password1        string `json:"password1"`
	Password2        string `json:"password2"`
	LeetcodeUsername string `json:"leetcode_username,omitempty"`
}

// ProfilePatch is a partial profile update. The backend disambiguates a
// password change from a profile edit by which fields are present.
type ProfilePatch struct {
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	LeetcodeUsername *string `json:"leetcode_username,omitempty"`
	Bio              *string `json:"bio,omitempty"`
	CurrentPassword  *string `json:"current_password,omitempty"`
	NewPassword      *string `json:"new_password,omitempty"`
}
