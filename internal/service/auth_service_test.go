package service

import (
	"reflect"
	"testing"
)

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{
			name: "lista normal",
			csv:  "Action,Drama",
			want: []string{"Action", "Drama"},
		},
		{
			name: "espacios y entradas vacías",
			csv:  " Action , ,Drama,",
			want: []string{"Action", "Drama"},
		},
		{
			name: "vacío",
			csv:  "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitGenres(tt.csv); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitGenres(%q) = %v, want %v", tt.csv, got, tt.want)
			}
		})
	}
}
