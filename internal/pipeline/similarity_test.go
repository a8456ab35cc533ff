package pipeline

import (
	"math"
	"testing"
)

func TestCosineMatrix(t *testing.T) {
	vectors := [][]int{
		{1, 1, 0, 0}, // A
		{1, 1, 0, 0}, // B idéntico a A
		{0, 0, 1, 1}, // C ortogonal a A
		{1, 0, 1, 0}, // D comparte un término con todos
		{0, 0, 0, 0}, // E vector cero
	}

	m := CosineMatrix(vectors)

	if len(m) != 5 {
		t.Fatalf("len(matrix) = %d, want 5", len(m))
	}
	for i, row := range m {
		if len(row) != 5 {
			t.Fatalf("len(matrix[%d]) = %d, want 5", i, len(row))
		}
	}

	// diagonal siempre 1.0, incluso para el vector cero
	for i := range m {
		if m[i][i] != 1.0 {
			t.Errorf("matrix[%d][%d] = %v, want 1.0", i, i, m[i][i])
		}
	}

	// simetría y rango [0,1]
	for i := range m {
		for j := range m {
			if m[i][j] != m[j][i] {
				t.Errorf("asimetría en (%d,%d): %v vs %v", i, j, m[i][j], m[j][i])
			}
			if m[i][j] < 0 || m[i][j] > 1 {
				t.Errorf("matrix[%d][%d] = %v fuera de [0,1]", i, j, m[i][j])
			}
		}
	}

	approx := func(got float32, want float64) bool {
		return math.Abs(float64(got)-want) < 1e-6
	}

	if !approx(m[0][1], 1.0) {
		t.Errorf("vectores idénticos: sim = %v, want 1.0", m[0][1])
	}
	if m[0][2] != 0 {
		t.Errorf("vectores ortogonales: sim = %v, want 0", m[0][2])
	}
	// A·D = 1, |A| = sqrt(2), |D| = sqrt(2)
	if !approx(m[0][3], 0.5) {
		t.Errorf("sim(A,D) = %v, want 0.5", m[0][3])
	}
	// el vector cero da 0 contra todo lo demás, no NaN
	for j := 0; j < 4; j++ {
		if m[4][j] != 0 {
			t.Errorf("sim(E,%d) = %v, want 0", j, m[4][j])
		}
	}
}

func TestCosineMatrixEmpty(t *testing.T) {
	m := CosineMatrix(nil)
	if len(m) != 0 {
		t.Errorf("matriz de corpus vacío: len = %d, want 0", len(m))
	}
}
