package pipeline

import (
	"sort"
	"strings"
	"unicode"
)

// Vectorizer convierte tag bags en vectores de conteo sobre un vocabulario
// acotado: los maxFeatures términos más frecuentes del corpus, sin
// stopwords. Un término fuera del tope simplemente no existe para ningún
// vector, no es error.
type Vectorizer struct {
	maxFeatures int
	vocab       map[string]int // término -> posición en el vector
	terms       []string       // posición -> término
}

func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Tokenize pasa a minúsculas y corta en secuencias de letras/dígitos.
// Tokens de un solo carácter y stopwords se descartan.
func Tokenize(doc string) []string {
	doc = strings.ToLower(doc)
	var out []string
	var b strings.Builder
	flush := func() {
		if b.Len() >= 2 {
			tok := b.String()
			if !IsStopWord(tok) {
				out = append(out, tok)
			}
		}
		b.Reset()
	}
	for _, r := range doc {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return out
}

// Fit arma el vocabulario a partir del corpus completo. Determinista:
// frecuencia total descendente, y a igual frecuencia orden alfabético.
func (v *Vectorizer) Fit(docs []string) {
	counts := map[string]int{}
	for _, doc := range docs {
		for _, tok := range Tokenize(doc) {
			counts[tok]++
		}
	}

	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}

	v.terms = terms
	v.vocab = make(map[string]int, len(terms))
	for i, t := range terms {
		v.vocab[t] = i
	}
}

// Transform vectoriza un documento contra el vocabulario ya ajustado.
func (v *Vectorizer) Transform(doc string) []int {
	vec := make([]int, len(v.terms))
	for _, tok := range Tokenize(doc) {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx]++
		}
	}
	return vec
}

// TransformAll vectoriza el corpus completo en orden.
func (v *Vectorizer) TransformAll(docs []string) [][]int {
	out := make([][]int, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}

// VocabSize devuelve el tamaño real del vocabulario tras Fit.
func (v *Vectorizer) VocabSize() int {
	return len(v.terms)
}
