package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// credit agrupa lo que aporta tmdb_5000_credits.csv por título.
type credit struct {
	movieID int
	cast    string
	crew    string
}

// LoadDataset lee los dos CSV de TMDB y los mergea por título (inner join).
// Títulos duplicados: gana la primera aparición, tanto en credits como en
// movies; así cada título queda con una sola fila y el lookup por título
// del API es bien definido.
//
// A diferencia de los campos de features, un CSV ilegible sí es fatal:
// sin corpus no hay modelo.
func LoadDataset(moviesPath, creditsPath string) ([]RawMovie, error) {
	credits, err := loadCredits(creditsPath)
	if err != nil {
		return nil, fmt.Errorf("leyendo credits: %w", err)
	}

	f, err := os.Open(moviesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leyendo header de movies: %w", err)
	}
	col, err := columnIndex(header, "title", "overview", "genres", "keywords")
	if err != nil {
		return nil, err
	}

	var out []RawMovie
	seen := map[string]bool{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo movies: %w", err)
		}

		title := row[col["title"]]
		c, ok := credits[title]
		if !ok || seen[title] {
			continue
		}
		seen[title] = true

		out = append(out, RawMovie{
			MovieID:  c.movieID,
			Title:    title,
			Overview: row[col["overview"]],
			Genres:   row[col["genres"]],
			Keywords: row[col["keywords"]],
			Cast:     c.cast,
			Crew:     c.crew,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("merge de %s y %s no produjo ninguna fila", moviesPath, creditsPath)
	}
	return out, nil
}

func loadCredits(path string) (map[string]credit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	col, err := columnIndex(header, "movie_id", "title", "cast", "crew")
	if err != nil {
		return nil, err
	}

	out := map[string]credit{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		title := row[col["title"]]
		if _, ok := out[title]; ok {
			continue // primera aparición gana
		}
		id, err := strconv.Atoi(row[col["movie_id"]])
		if err != nil {
			return nil, fmt.Errorf("movie_id inválido %q: %w", row[col["movie_id"]], err)
		}
		out[title] = credit{
			movieID: id,
			cast:    row[col["cast"]],
			crew:    row[col["crew"]],
		}
	}
	return out, nil
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	col := map[string]int{}
	for i, h := range header {
		col[h] = i
	}
	for _, n := range names {
		if _, ok := col[n]; !ok {
			return nil, fmt.Errorf("columna %q no encontrada en el CSV", n)
		}
	}
	return col, nil
}
