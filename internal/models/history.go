package models

import "time"

// WatchHistory registra que un usuario vio una película (SQLite).
type WatchHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	MovieID   int       `json:"movieId"`
	CreatedAt time.Time `json:"watchedAt"`
}
