package models

// SimilarityDoc es una fila completa de la matriz de similitud coseno.
// Sims[j] = similitud entre la película RowIdx y la película j.
// float32 para reducir el tamaño del modelo a la mitad.
type SimilarityDoc struct {
	RowIdx  int       `json:"rowIdx" bson:"rowIdx"`
	MovieID int       `json:"movieId" bson:"movieId"`
	Sims    []float32 `json:"sims" bson:"sims"`
}

// ModelMeta resume el último build del modelo (colección model_meta).
type ModelMeta struct {
	Metric     string `json:"metric" bson:"metric"`
	MovieCount int    `json:"movieCount" bson:"movieCount"`
	VocabMax   int    `json:"vocabMax" bson:"vocabMax"`
	VocabSize  int    `json:"vocabSize" bson:"vocabSize"`
	BuiltAt    string `json:"builtAt" bson:"builtAt"`
}
