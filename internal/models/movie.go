package models

// MovieDoc es una fila de la tabla de películas generada por cmd/modelbuild.
// RowIdx es la posición de la fila: la fila i de `movies` corresponde a la
// fila i de la matriz de similitud, ese orden es sagrado.
type MovieDoc struct {
	MovieID int      `json:"movieId" bson:"movieId"`
	RowIdx  int      `json:"rowIdx" bson:"rowIdx"`
	Title   string   `json:"title" bson:"title"`
	Genres  []string `json:"genres" bson:"genres"` // tokens canónicos (sin espacios)
	TagBag  string   `json:"tagBag" bson:"tagBag"`
}
