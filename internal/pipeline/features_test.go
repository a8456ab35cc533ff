package pipeline

import (
	"reflect"
	"strings"
	"testing"
)

const sampleCast = `[{"name": "Sam Worthington"}, {"name": "Zoe Saldana"}, {"name": "Sigourney Weaver"}, {"name": "Stephen Lang"}]`

const sampleCrew = `[{"name": "Mali Finn", "job": "Casting"}, {"name": "James Cameron", "job": "Director"}, {"name": "Jon Landau", "job": "Producer"}]`

func TestExtractNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "lista válida en orden",
			raw:  `[{"name": "Action"}, {"name": "Adventure"}, {"name": "Science Fiction"}]`,
			want: []string{"Action", "Adventure", "Science Fiction"},
		},
		{
			name: "lista vacía",
			raw:  `[]`,
			want: []string{},
		},
		{
			name: "campo roto degrada a vacío",
			raw:  `esto no es json`,
			want: []string{},
		},
		{
			name: "string vacío degrada a vacío",
			raw:  "",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNames(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractNames(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractTopCast(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		limit int
		want  []string
	}{
		{
			name:  "corta en limit preservando el orden de billing",
			raw:   sampleCast,
			limit: 3,
			want:  []string{"Sam Worthington", "Zoe Saldana", "Sigourney Weaver"},
		},
		{
			name:  "menos actores que limit",
			raw:   `[{"name": "Tom Hanks"}]`,
			limit: 3,
			want:  []string{"Tom Hanks"},
		},
		{
			name:  "malformado degrada a vacío",
			raw:   `[{`,
			limit: 3,
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTopCast(tt.raw, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTopCast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDirector(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "primer Director del crew",
			raw:  sampleCrew,
			want: []string{"James Cameron"},
		},
		{
			name: "se detiene en el primero",
			raw:  `[{"name": "A", "job": "Director"}, {"name": "B", "job": "Director"}]`,
			want: []string{"A"},
		},
		{
			name: "sin director",
			raw:  `[{"name": "Mali Finn", "job": "Casting"}]`,
			want: []string{},
		},
		{
			name: "malformado degrada a vacío",
			raw:  `{{{`,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDirector(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractDirector() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollapse(t *testing.T) {
	got := Collapse([]string{"Tom Hanks", "Science Fiction", "Spielberg"})
	want := []string{"TomHanks", "ScienceFiction", "Spielberg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collapse() = %v, want %v", got, want)
	}

	// idempotencia: colapsar lo ya colapsado no cambia nada
	again := Collapse(got)
	if !reflect.DeepEqual(again, got) {
		t.Errorf("Collapse no es idempotente: %v != %v", again, got)
	}
}

func TestBuildRecord(t *testing.T) {
	raw := RawMovie{
		MovieID:  19995,
		Title:    "Avatar",
		Overview: "In the 22nd century a paraplegic Marine",
		Genres:   `[{"name": "Action"}, {"name": "Science Fiction"}]`,
		Keywords: `[{"name": "culture clash"}, {"name": "future"}]`,
		Cast:     sampleCast,
		Crew:     sampleCrew,
	}

	rec := BuildRecord(raw)

	if rec.MovieID != 19995 || rec.Title != "Avatar" {
		t.Fatalf("identidad del record incorrecta: %+v", rec)
	}
	if !reflect.DeepEqual(rec.Genres, []string{"Action", "ScienceFiction"}) {
		t.Errorf("Genres = %v, want tokens canónicos", rec.Genres)
	}

	// orden de concatenación: overview, genres, keywords, cast, crew; todo en minúsculas
	want := "in the 22nd century a paraplegic marine " +
		"action sciencefiction " +
		"cultureclash future " +
		"samworthington zoesaldana sigourneyweaver " +
		"jamescameron"
	if rec.TagBag != want {
		t.Errorf("TagBag =\n%q\nwant\n%q", rec.TagBag, want)
	}
	if rec.TagBag != strings.ToLower(rec.TagBag) {
		t.Errorf("TagBag no está en minúsculas")
	}
}

func TestBuildRecordDegradation(t *testing.T) {
	// campos rotos no tiran el record: degradan a listas vacías
	raw := RawMovie{
		MovieID:  1,
		Title:    "Broken",
		Overview: "some plot",
		Genres:   "not json",
		Keywords: "also not json",
		Cast:     "nope",
		Crew:     "nope",
	}

	rec := BuildRecord(raw)
	if rec.Title != "Broken" {
		t.Fatalf("el record se perdió: %+v", rec)
	}
	if len(rec.Genres) != 0 {
		t.Errorf("Genres = %v, want vacío", rec.Genres)
	}
	if rec.TagBag != "some plot" {
		t.Errorf("TagBag = %q, want solo el overview", rec.TagBag)
	}
}

func TestBuildRecordsAssignsRowIdx(t *testing.T) {
	raws := []RawMovie{
		{MovieID: 10, Title: "A"},
		{MovieID: 20, Title: "B"},
		{MovieID: 30, Title: "C"},
	}
	recs := BuildRecords(raws)
	for i, rec := range recs {
		if rec.RowIdx != i {
			t.Errorf("RowIdx[%d] = %d", i, rec.RowIdx)
		}
	}
}
