package pipeline

import (
	"encoding/json"
	"strings"

	"cinerec/internal/models"
)

// RawMovie es una fila post-merge de los CSV de TMDB. Los campos de listas
// (genres, keywords, cast, crew) vienen como JSON serializado en texto.
type RawMovie struct {
	MovieID  int
	Title    string
	Overview string
	Genres   string
	Keywords string
	Cast     string
	Crew     string
}

type namedEntry struct {
	Name string `json:"name"`
}

type crewEntry struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// ExtractNames parsea una lista serializada tipo [{"name": "Action"}, ...]
// y devuelve los names en orden. Si el campo está roto devuelve lista vacía:
// un campo malformado empobrece los features de esa película, no tumba el batch.
func ExtractNames(raw string) []string {
	var entries []namedEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

// ExtractTopCast devuelve los primeros `limit` actores del reparto,
// en el orden del billing original.
func ExtractTopCast(raw string, limit int) []string {
	var entries []namedEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []string{}
	}
	out := []string{}
	for _, e := range entries {
		if len(out) >= limit {
			break
		}
		out = append(out, e.Name)
	}
	return out
}

// ExtractDirector busca en el crew la primera entrada con job == "Director"
// y devuelve una lista de un elemento (o vacía si no hay).
func ExtractDirector(raw string) []string {
	var entries []crewEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []string{}
	}
	for _, e := range entries {
		if e.Job == "Director" {
			return []string{e.Name}
		}
	}
	return []string{}
}

// Collapse quita los espacios internos de cada nombre para que una entidad
// de varias palabras quede como un solo token del vocabulario
// ("Tom Hanks" -> "TomHanks"). Es idempotente.
func Collapse(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.ReplaceAll(n, " ", ""))
	}
	return out
}

// BuildRecord arma el MovieDoc final de una fila cruda. El tag bag se
// concatena siempre en el mismo orden (overview, genres, keywords, cast,
// crew) y en minúsculas: el orden no importa para el vectorizador pero sí
// para que dos builds del mismo dataset den matrices idénticas.
func BuildRecord(raw RawMovie) models.MovieDoc {
	genres := Collapse(ExtractNames(raw.Genres))
	keywords := Collapse(ExtractNames(raw.Keywords))
	cast := Collapse(ExtractTopCast(raw.Cast, 3))
	crew := Collapse(ExtractDirector(raw.Crew))
	overview := strings.Fields(raw.Overview)

	tags := make([]string, 0, len(overview)+len(genres)+len(keywords)+len(cast)+len(crew))
	tags = append(tags, overview...)
	tags = append(tags, genres...)
	tags = append(tags, keywords...)
	tags = append(tags, cast...)
	tags = append(tags, crew...)

	return models.MovieDoc{
		MovieID: raw.MovieID,
		Title:   raw.Title,
		Genres:  genres,
		TagBag:  strings.ToLower(strings.Join(tags, " ")),
	}
}

// BuildRecords procesa todo el dataset y asigna RowIdx en orden de entrada.
func BuildRecords(raws []RawMovie) []models.MovieDoc {
	out := make([]models.MovieDoc, 0, len(raws))
	for i, raw := range raws {
		rec := BuildRecord(raw)
		rec.RowIdx = i
		out = append(out, rec)
	}
	return out
}
