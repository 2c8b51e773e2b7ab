package validators

// IsCNPJValid aceita o CNPJ com ou sem máscara e confere os dois
// dígitos verificadores. String vazia é considerada válida (campo
// opcional no cadastro da empresa).
func IsCNPJValid(cnpj string) bool {
	if cnpj == "" {
		return true
	}

	var digits []int
	for _, r := range cnpj {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '/' || r == '-':
			// máscara
		default:
			return false
		}
	}
	if len(digits) != 14 {
		return false
	}

	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return digits[12] == cnpjCheckDigit(digits[:12]) &&
		digits[13] == cnpjCheckDigit(digits[:13])
}

func cnpjCheckDigit(digits []int) int {
	weight := len(digits) - 7
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
