package models

import "time"

// Token is an opaque bearer credential issued on each successful login
// and bound to exactly one user. Tokens are never expired or revoked.
type Token struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Credentials carries the two request attributes a caller identifies
// itself with on protected endpoints: the user_name and token headers.
// Absence of either is treated the same as an invalid token.
type Credentials struct {
	UserName string
	Token    string
}
