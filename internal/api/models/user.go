package models

import "time"

// User represents a user in the database.
type User struct {
	ID               int64     `db:"id"`
	UserName         string    `db:"user_name"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	RegistrationTime time.Time `db:"registration_time"`
}

// UserResponse is the public view of a user. The password hash never
// leaves the service.
type UserResponse struct {
	ID               int64     `json:"id"`
	UserName         string    `json:"user_name"`
	Email            string    `json:"email"`
	RegistrationTime time.Time `json:"registration_time"`
}

// Public strips the user record down to its response shape.
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:               u.ID,
		UserName:         u.UserName,
		Email:            u.Email,
		RegistrationTime: u.RegistrationTime,
	}
}

// CreateUserRequest defines the structure for a user registration
// request. Login bodies are validated against the same schema: the
// login endpoint requires user_name, email and a policy-conforming
// password just like registration does.
type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,max=20"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,password"`
}

// LoginResponse defines the structure for a successful login response.
type LoginResponse struct {
	Token string `json:"token"`
}
