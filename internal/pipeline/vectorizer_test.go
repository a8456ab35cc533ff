package pipeline

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "minúsculas y corte en no alfanuméricos",
			doc:  "Space-opera, épica y Robots!",
			want: []string{"space", "opera", "épica", "robots"},
		},
		{
			name: "descarta tokens de un carácter",
			doc:  "a b sé ab",
			want: []string{"sé", "ab"},
		},
		{
			name: "descarta stopwords en inglés",
			doc:  "the future of the world",
			want: []string{"future", "world"},
		},
		{
			name: "dígitos y guiones bajos cuentan como parte del token",
			doc:  "blade_runner 2049",
			want: []string{"blade_runner", "2049"},
		},
		{
			name: "documento vacío",
			doc:  "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.doc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}

func TestVectorizerFitOrdering(t *testing.T) {
	// "ship" aparece 3 veces, "alien" 2, y "crew"/"mars" empatan en 1:
	// el desempate es alfabético.
	docs := []string{
		"ship ship alien",
		"ship alien crew",
		"mars",
	}

	v := NewVectorizer(0)
	v.Fit(docs)

	wantTerms := []string{"ship", "alien", "crew", "mars"}
	if !reflect.DeepEqual(v.terms, wantTerms) {
		t.Fatalf("terms = %v, want %v", v.terms, wantTerms)
	}

	// mismo corpus, mismo vocabulario: Fit es determinista
	v2 := NewVectorizer(0)
	v2.Fit(docs)
	if !reflect.DeepEqual(v2.terms, v.terms) {
		t.Errorf("Fit no es determinista: %v vs %v", v2.terms, v.terms)
	}
}

func TestVectorizerMaxFeatures(t *testing.T) {
	docs := []string{"ship ship ship alien alien crew mars"}

	v := NewVectorizer(2)
	v.Fit(docs)

	if v.VocabSize() != 2 {
		t.Fatalf("VocabSize = %d, want 2", v.VocabSize())
	}
	if !reflect.DeepEqual(v.terms, []string{"ship", "alien"}) {
		t.Errorf("terms = %v, want los 2 más frecuentes", v.terms)
	}

	// un término fuera del vocabulario no aporta al vector
	vec := v.Transform("crew mars ship")
	if !reflect.DeepEqual(vec, []int{1, 0}) {
		t.Errorf("Transform = %v, want [1 0]", vec)
	}
}

func TestVectorizerTransform(t *testing.T) {
	docs := []string{"ship alien", "ship crew"}
	v := NewVectorizer(0)
	v.Fit(docs)

	tests := []struct {
		name string
		doc  string
		want map[string]int
	}{
		{
			name: "conteos por término",
			doc:  "ship ship alien",
			want: map[string]int{"ship": 2, "alien": 1},
		},
		{
			name: "documento sin términos conocidos da vector cero",
			doc:  "the of and",
			want: map[string]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec := v.Transform(tt.doc)
			if len(vec) != v.VocabSize() {
				t.Fatalf("len(vec) = %d, want %d", len(vec), v.VocabSize())
			}
			for i, term := range v.terms {
				if vec[i] != tt.want[term] {
					t.Errorf("conteo de %q = %d, want %d", term, vec[i], tt.want[term])
				}
			}
		})
	}
}
