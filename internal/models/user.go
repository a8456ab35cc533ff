package models

import "time"

// User vive en SQLite (estado de usuario, no del modelo).
// PreferredGenres se guarda como CSV "Action,Comedy" igual que el frontend
// lo manda; el service lo parte en tokens.
type User struct {
	ID              uint      `json:"userId" gorm:"primaryKey"`
	Email           string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash    string    `json:"-"`
	Role            string    `json:"role"`
	PreferredGenres string    `json:"preferredGenres"`
	CreatedAt       time.Time `json:"createdAt"`
}
