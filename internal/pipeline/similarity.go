package pipeline

import "math"

// CosineMatrix calcula la matriz N×N de similitud coseno entre todos los
// vectores de conteo. Simétrica, valores en [0,1] (los conteos nunca son
// negativos), diagonal fijada a 1.0 por construcción. Se devuelve en
// float32 para reducir el modelo a la mitad; los valores solo se usan
// para rankear, la pérdida de precisión no importa.
//
// Un vector cero (tag bag vacío o puro stopwords) daría 0/0: lo definimos
// como 0.0 en vez de propagar NaN.
func CosineMatrix(vectors [][]int) [][]float32 {
	n := len(vectors)

	norms := make([]float64, n)
	for i, v := range vectors {
		var sum float64
		for _, x := range v {
			sum += float64(x) * float64(x)
		}
		norms[i] = math.Sqrt(sum)
	}

	matrix := make([][]float32, n)
	for i := range matrix {
		matrix[i] = make([]float32, n)
		matrix[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sim float64
			if norms[i] > 0 && norms[j] > 0 {
				var dot float64
				for t, x := range vectors[i] {
					if x != 0 && vectors[j][t] != 0 {
						dot += float64(x) * float64(vectors[j][t])
					}
				}
				sim = dot / (norms[i] * norms[j])
			}
			matrix[i][j] = float32(sim)
			matrix[j][i] = float32(sim)
		}
	}
	return matrix
}
