package models

import "time"

type AppUser struct {
	ID           int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Username     string    `json:"username" bson:"username" db:"username"`
	PasswordHash string    `json:"-" bson:"password_hash" db:"password_hash"`
	Role         string    `json:"role" bson:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
