package recommender

import "cinerec/internal/models"

// Umbral de "le gustó": ratings >= 4 cuentan para la estrategia colaborativa.
const HighRatingThreshold = 4.0

// Etiquetas de estrategia que se devuelven al frontend.
const (
	StrategyRating   = "Hybrid (Based on Rating)"
	StrategyGenre    = "Content (Based on Genres)"
	StrategyTrending = "Trending"
)

// RatingEvent es un evento de calificación. El slice que recibe el
// recomendador DEBE venir en orden de inserción: "lo más reciente" es el
// último elemento, no el de rating más alto.
type RatingEvent struct {
	MovieID int
	Rating  float64
}

// PreferenceView es la proyección de solo lectura del estado del usuario
// que el recomendador consume por request. Nunca la muta.
type PreferenceView struct {
	Ratings         []RatingEvent
	PreferredGenres []string
}

// Result es la salida de una estrategia: etiqueta + items rankeados.
type Result struct {
	Strategy string           `json:"type"`
	Items    []models.RecItem `json:"recommendations"`
}

// Strategy es un evaluador de la cadena: devuelve (resultado, true) si
// aplica, o (nil, false) para ceder el turno a la siguiente. Un resultado
// vacío con ok=true sigue siendo un éxito (lista corta != estrategia
// inaplicable).
type Strategy interface {
	Evaluate(view PreferenceView, k int) (*Result, bool)
}

// Recommender recorre las estrategias en orden fijo y se queda con la
// primera que aplique. La última (trending) aplica siempre.
type Recommender struct {
	strategies []Strategy
}

func New(ix *Index) *Recommender {
	return &Recommender{
		strategies: []Strategy{
			&ratingStrategy{ix: ix},
			&genreStrategy{ix: ix},
			&trendingStrategy{ix: ix},
		},
	}
}

// ForUser devuelve recomendaciones para la vista de preferencias dada.
// Nunca falla: en el peor caso cae a trending.
func (r *Recommender) ForUser(view PreferenceView, k int) *Result {
	for _, s := range r.strategies {
		if res, ok := s.Evaluate(view, k); ok {
			return res
		}
	}
	// inalcanzable mientras trending esté al final de la cadena
	return &Result{Strategy: StrategyTrending, Items: []models.RecItem{}}
}

// ------- estrategia 1: item-item por el último rating alto -------

type ratingStrategy struct {
	ix *Index
}

// Evaluate aplica solo si hay al menos un rating >= 4 Y esa película existe
// en la tabla. Se toma el último evento alto (recencia gana sobre
// magnitud) y se rankea su fila de la matriz.
func (s *ratingStrategy) Evaluate(view PreferenceView, k int) (*Result, bool) {
	lastLiked := -1
	for _, ev := range view.Ratings {
		if ev.Rating >= HighRatingThreshold {
			lastLiked = ev.MovieID
		}
	}
	if lastLiked < 0 {
		return nil, false
	}

	row, ok := s.ix.RowByMovieID(lastLiked)
	if !ok {
		// la película calificada no está en el modelo: cedemos el turno
		return nil, false
	}
	liked := s.ix.MovieAt(row)

	items := make([]models.RecItem, 0, k)
	for _, i := range s.ix.TopSimilar(row, k) {
		m := s.ix.MovieAt(i)
		items = append(items, models.RecItem{
			MovieID: m.MovieID,
			Title:   m.Title,
			Reason:  "Because you liked " + liked.Title,
		})
	}
	return &Result{Strategy: StrategyRating, Items: items}, true
}

// ------- estrategia 2: filtro de contenido por géneros declarados -------

type genreStrategy struct {
	ix *Index
}

// Evaluate aplica si el usuario declaró géneros preferidos. Filtra la tabla
// en orden por cualquier intersección de tokens (sin puntaje por grado de
// solape) y corta en k. El reason siempre cita el primer género declarado,
// haya matcheado o no. Cero matches sigue siendo un resultado válido.
func (s *genreStrategy) Evaluate(view PreferenceView, k int) (*Result, bool) {
	if len(view.PreferredGenres) == 0 {
		return nil, false
	}

	wanted := make(map[string]struct{}, len(view.PreferredGenres))
	for _, g := range view.PreferredGenres {
		wanted[g] = struct{}{}
	}
	reason := "Based on your interest in " + view.PreferredGenres[0]

	items := []models.RecItem{}
	for i := 0; i < s.ix.Len() && len(items) < k; i++ {
		m := s.ix.MovieAt(i)
		for _, g := range m.Genres {
			if _, ok := wanted[g]; ok {
				items = append(items, models.RecItem{
					MovieID: m.MovieID,
					Title:   m.Title,
					Reason:  reason,
				})
				break
			}
		}
	}
	return &Result{Strategy: StrategyGenre, Items: items}, true
}

// ------- estrategia 3: fallback trending -------

type trendingStrategy struct {
	ix *Index
}

// Evaluate aplica incondicionalmente: las primeras k películas en orden de
// tabla (o todas si hay menos de k).
func (s *trendingStrategy) Evaluate(_ PreferenceView, k int) (*Result, bool) {
	n := s.ix.Len()
	if k > n {
		k = n
	}
	items := make([]models.RecItem, 0, k)
	for i := 0; i < k; i++ {
		m := s.ix.MovieAt(i)
		items = append(items, models.RecItem{
			MovieID: m.MovieID,
			Title:   m.Title,
			Reason:  "Trending Now",
		})
	}
	return &Result{Strategy: StrategyTrending, Items: items}, true
}
