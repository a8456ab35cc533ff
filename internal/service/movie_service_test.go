package service

import (
	"reflect"
	"testing"

	"cinerec/internal/models"
	"cinerec/internal/recommender"
)

func newCatalog(t *testing.T) *recommender.Index {
	t.Helper()
	movies := []models.MovieDoc{
		{MovieID: 1, Title: "The Dark Knight", Genres: []string{"Action", "Crime"}},
		{MovieID: 2, Title: "The Dark Knight Rises", Genres: []string{"Action"}},
		{MovieID: 3, Title: "Amélie", Genres: []string{"Comedy", "Romance"}},
	}
	sims := [][]float32{
		{1, 0.9, 0.1},
		{0.9, 1, 0.1},
		{0.1, 0.1, 1},
	}
	ix, err := recommender.NewIndex(movies, sims)
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func TestMovieServiceGetByID(t *testing.T) {
	s := NewMovieService(newCatalog(t))

	m, ok := s.GetByID(3)
	if !ok || m.Title != "Amélie" {
		t.Errorf("GetByID(3) = (%+v, %v)", m, ok)
	}
	if _, ok := s.GetByID(999); ok {
		t.Error("GetByID(999) debería no encontrar nada")
	}
}

func TestMovieServiceSearch(t *testing.T) {
	s := NewMovieService(newCatalog(t))

	tests := []struct {
		name  string
		q     string
		genre string
		limit int
		want  []string
	}{
		{
			name: "substring case-insensitive",
			q:    "dark knight",
			want: []string{"The Dark Knight", "The Dark Knight Rises"},
		},
		{
			name:  "filtro por género canónico",
			genre: "Crime",
			want:  []string{"The Dark Knight"},
		},
		{
			name:  "query y género combinados",
			q:     "rises",
			genre: "Action",
			want:  []string{"The Dark Knight Rises"},
		},
		{
			name:  "limit corta en orden de tabla",
			limit: 1,
			want:  []string{"The Dark Knight"},
		},
		{
			name: "sin matches",
			q:    "zzz",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(tt.q, tt.genre, tt.limit)
			titles := make([]string, 0, len(got))
			for _, m := range got {
				titles = append(titles, m.Title)
			}
			if !reflect.DeepEqual(titles, tt.want) {
				t.Errorf("Search(%q, %q, %d) = %v, want %v", tt.q, tt.genre, tt.limit, titles, tt.want)
			}
		})
	}
}

func TestMovieServiceGenres(t *testing.T) {
	s := NewMovieService(newCatalog(t))

	want := []string{"Action", "Comedy", "Crime", "Romance"}
	if got := s.Genres(); !reflect.DeepEqual(got, want) {
		t.Errorf("Genres() = %v, want %v", got, want)
	}
}
