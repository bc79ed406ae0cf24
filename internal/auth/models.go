// Package auth implements account signup and credential checks. There is no
// token issuance or session state; login only verifies a password against
// its stored hash.
package auth

import "time"

// User is a stored account. The password is kept only as a bcrypt hash.
type User struct {
	ID             string    `json:"id" bson:"_id"`
	Email          string    `json:"email" bson:"email"`
	HashedPassword string    `json:"-" bson:"hashedPassword"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// Credentials is the signup and login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
