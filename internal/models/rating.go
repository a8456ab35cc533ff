package models

import "time"

// Rating vive en SQLite como log de eventos append-only: cada calificación
// inserta una fila nueva, nunca se actualiza en sitio. El orden de inserción
// (ID ascendente) es lo que define "lo más reciente" para el recomendador.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	MovieID   int       `json:"movieId"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
