package recommender

import (
	"errors"
	"reflect"
	"testing"

	"cinerec/internal/models"
)

// newTestIndex arma un índice chico de 4 películas con una matriz hecha a
// mano. Las similitudes contra la fila 0 tienen un empate (filas 2 y 3)
// para ejercitar el desempate estable.
func newTestIndex(t *testing.T) *Index {
	t.Helper()
	movies := []models.MovieDoc{
		{MovieID: 100, RowIdx: 0, Title: "Alpha", Genres: []string{"Action", "ScienceFiction"}},
		{MovieID: 200, RowIdx: 1, Title: "Beta", Genres: []string{"Action"}},
		{MovieID: 300, RowIdx: 2, Title: "Gamma", Genres: []string{"Drama"}},
		{MovieID: 400, RowIdx: 3, Title: "Delta", Genres: []string{"ScienceFiction", "Drama"}},
	}
	sims := [][]float32{
		{1.0, 0.9, 0.5, 0.5},
		{0.9, 1.0, 0.2, 0.1},
		{0.5, 0.2, 1.0, 0.8},
		{0.5, 0.1, 0.8, 1.0},
	}
	ix, err := NewIndex(movies, sims)
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func TestNewIndexDimensionMismatch(t *testing.T) {
	movies := []models.MovieDoc{{MovieID: 1, Title: "A"}, {MovieID: 2, Title: "B"}}

	tests := []struct {
		name string
		sims [][]float32
	}{
		{
			name: "menos filas que películas",
			sims: [][]float32{{1.0, 0.5}},
		},
		{
			name: "fila con columnas de menos",
			sims: [][]float32{{1.0, 0.5}, {0.5}},
		},
		{
			name: "fila con columnas de más",
			sims: [][]float32{{1.0, 0.5}, {0.5, 1.0, 0.3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewIndex(movies, tt.sims); err == nil {
				t.Error("dimensiones desalineadas deberían rechazarse")
			}
		})
	}
}

func TestIndexDuplicateTitleFirstWins(t *testing.T) {
	movies := []models.MovieDoc{
		{MovieID: 1, Title: "Twin"},
		{MovieID: 2, Title: "Twin"},
	}
	sims := [][]float32{{1, 0}, {0, 1}}
	ix, err := NewIndex(movies, sims)
	if err != nil {
		t.Fatal(err)
	}

	row, ok := ix.RowByTitle("Twin")
	if !ok || row != 0 {
		t.Errorf("RowByTitle(Twin) = (%d, %v), want fila 0", row, ok)
	}
}

func TestIndexGenres(t *testing.T) {
	ix := newTestIndex(t)
	want := []string{"Action", "Drama", "ScienceFiction"}
	if got := ix.Genres(); !reflect.DeepEqual(got, want) {
		t.Errorf("Genres() = %v, want %v", got, want)
	}
}

func TestTopSimilar(t *testing.T) {
	ix := newTestIndex(t)

	tests := []struct {
		name string
		row  int
		k    int
		want []int
	}{
		{
			name: "orden descendente con desempate por fila",
			row:  0,
			k:    3,
			want: []int{1, 2, 3}, // 0.9, luego el empate 0.5/0.5 en orden de tabla
		},
		{
			name: "k corta la lista",
			row:  0,
			k:    1,
			want: []int{1},
		},
		{
			name: "k mayor que la tabla devuelve todo menos la propia",
			row:  2,
			k:    10,
			want: []int{3, 0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.TopSimilar(tt.row, tt.k)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopSimilar(%d, %d) = %v, want %v", tt.row, tt.k, got, tt.want)
			}
		})
	}
}

func TestSimilarByTitle(t *testing.T) {
	ix := newTestIndex(t)

	items, err := ix.SimilarByTitle("Alpha", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].Title != "Beta" || items[1].Title != "Gamma" {
		t.Errorf("SimilarByTitle(Alpha, 2) = %+v", items)
	}
	// el lookup plano no lleva reason
	for _, it := range items {
		if it.Reason != "" {
			t.Errorf("item %q con reason inesperado %q", it.Title, it.Reason)
		}
	}

	// la propia película nunca se recomienda a sí misma
	all, err := ix.SimilarByTitle("Alpha", 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range all {
		if it.MovieID == 100 {
			t.Error("Alpha aparece en sus propios similares")
		}
	}
}

func TestSimilarByTitleNotFound(t *testing.T) {
	ix := newTestIndex(t)

	_, err := ix.SimilarByTitle("No Existe", 5)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("err = %v, want ErrMovieNotFound", err)
	}
}
