package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account document from the users collection. The document id
// matches the vendor auth uid.
type User struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	ContactNo string    `bson:"contactNo,omitempty" json:"contactNo,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Role      string    `bson:"role" json:"role"`
	Active    bool      `bson:"active" json:"active"`
	FCMToken  string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// IsAdmin reports whether the account may use the admin console.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// FullName returns the display name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
