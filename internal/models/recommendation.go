package models

import "time"

// RecItem es una película recomendada. Reason va vacío en el lookup
// por título (/recommend/similar).
type RecItem struct {
	MovieID int    `bson:"movieId" json:"movieId"`
	Title   string `bson:"title" json:"title"`
	Reason  string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Recommendation es el historial que guardamos en Mongo cada vez que
// servimos recomendaciones a un usuario.
type Recommendation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    uint      `bson:"userId" json:"userId"`
	Strategy  string    `bson:"strategy" json:"strategy"`
	Params    any       `bson:"params" json:"params"`
	Items     []RecItem `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
