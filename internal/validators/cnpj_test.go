package validators

import "testing"

func TestIsCNPJValid(t *testing.T) {
	cases := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"vazio é opcional", "", true},
		{"com máscara", "11.222.333/0001-81", true},
		{"sem máscara", "11222333000181", true},
		{"dígito verificador errado", "11.222.333/0001-80", false},
		{"curto demais", "1122233300018", false},
		{"todos iguais", "11111111111111", false},
		{"letras", "11.222.333/0001-8a", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCNPJValid(tc.cnpj); got != tc.valid {
				t.Fatalf("IsCNPJValid(%q) = %v, esperado %v", tc.cnpj, got, tc.valid)
			}
		})
	}
}
