package recommender

import (
	"errors"
	"fmt"
	"sort"

	"cinerec/internal/models"
)

// ErrMovieNotFound se devuelve cuando el lookup por título no encuentra la
// película. Es distinto de una lista de recomendaciones vacía.
var ErrMovieNotFound = errors.New("movie not found")

// Index es el artefacto inmutable que carga el API al arrancar: la tabla de
// películas y la matriz de similitud, juntas para que no se puedan
// desalinear. Se construye una vez, se comparte entre requests sin locks
// (nadie lo muta) y un refresh del dataset implica rebuild + reinicio.
type Index struct {
	movies    []models.MovieDoc
	sims      [][]float32
	byTitle   map[string]int // título -> fila; con duplicados gana la primera
	byMovieID map[int]int
}

// NewIndex valida que tabla y matriz tengan exactamente las mismas
// dimensiones fila a fila; cualquier desfase corrompería todas las
// recomendaciones en silencio, así que acá se rechaza de entrada.
func NewIndex(movies []models.MovieDoc, sims [][]float32) (*Index, error) {
	if len(movies) != len(sims) {
		return nil, fmt.Errorf("tabla de películas (%d) y matriz (%d) no coinciden", len(movies), len(sims))
	}
	for i, row := range sims {
		if len(row) != len(movies) {
			return nil, fmt.Errorf("fila %d de la matriz tiene %d columnas, esperaba %d", i, len(row), len(movies))
		}
	}

	ix := &Index{
		movies:    movies,
		sims:      sims,
		byTitle:   make(map[string]int, len(movies)),
		byMovieID: make(map[int]int, len(movies)),
	}
	for i, m := range movies {
		if _, ok := ix.byTitle[m.Title]; !ok {
			ix.byTitle[m.Title] = i
		}
		if _, ok := ix.byMovieID[m.MovieID]; !ok {
			ix.byMovieID[m.MovieID] = i
		}
	}
	return ix, nil
}

// Len devuelve la cantidad de películas indexadas.
func (ix *Index) Len() int { return len(ix.movies) }

// MovieAt devuelve la película de la fila i.
func (ix *Index) MovieAt(i int) models.MovieDoc { return ix.movies[i] }

// RowByMovieID devuelve la fila de un movieId externo.
func (ix *Index) RowByMovieID(movieID int) (int, bool) {
	i, ok := ix.byMovieID[movieID]
	return i, ok
}

// RowByTitle devuelve la fila de un título (match exacto).
func (ix *Index) RowByTitle(title string) (int, bool) {
	i, ok := ix.byTitle[title]
	return i, ok
}

// Genres devuelve los tokens de género canónicos del dataset, ordenados
// (el menú de onboarding del frontend sale de acá).
func (ix *Index) Genres() []string {
	set := map[string]struct{}{}
	for _, m := range ix.movies {
		for _, g := range m.Genres {
			set[g] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for g := range set {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// TopSimilar rankea todas las películas por similitud descendente contra la
// fila `row`, con desempate estable por orden de tabla, excluye la propia
// película y devuelve hasta k filas.
func (ix *Index) TopSimilar(row, k int) []int {
	order := make([]int, len(ix.movies))
	for i := range order {
		order[i] = i
	}
	sims := ix.sims[row]
	sort.SliceStable(order, func(a, b int) bool {
		return sims[order[a]] > sims[order[b]]
	})

	out := make([]int, 0, k)
	for _, i := range order {
		if i == row {
			continue
		}
		if len(out) >= k {
			break
		}
		out = append(out, i)
	}
	return out
}

// SimilarByTitle es el lookup plano de /recommend/similar: sin estado de
// usuario y sin campo reason. Título desconocido -> ErrMovieNotFound.
func (ix *Index) SimilarByTitle(title string, k int) ([]models.RecItem, error) {
	row, ok := ix.byTitle[title]
	if !ok {
		return nil, fmt.Errorf("%q: %w", title, ErrMovieNotFound)
	}

	items := make([]models.RecItem, 0, k)
	for _, i := range ix.TopSimilar(row, k) {
		items = append(items, models.RecItem{
			MovieID: ix.movies[i].MovieID,
			Title:   ix.movies[i].Title,
		})
	}
	return items, nil
}
