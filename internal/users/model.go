package users

import "time"

// User is a registered account.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	PhoneNumber     string    `json:"phoneNumber"`
	Country         string    `json:"country"`
	ZipCode         string    `json:"zipCode"`
	PasswordHash    string    `json:"-"`
	ProfileImageKey string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
