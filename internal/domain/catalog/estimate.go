package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/models"
)

// ===============================
// Estimativa de custo/margem
// ===============================

type CostEstimate struct {
	MaterialCost  decimal.Decimal `json:"material_cost"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

var hundred = decimal.NewFromInt(100)

// EstimateCost usa os snapshots de unit_cost dos materiais, não o
// custo médio corrente dos produtos. Consulta pura; nunca escreve.
func EstimateCost(svc *models.Service, materials []models.ServiceMaterial) CostEstimate {
	materialCost := decimal.Zero
	for _, m := range materials {
		materialCost = materialCost.Add(m.Quantidade.Mul(m.UnitCost))
	}

	est := CostEstimate{
		MaterialCost:  materialCost,
		Profit:        decimal.Zero,
		MarginPercent: decimal.Zero,
	}

	if svc == nil || svc.Target == nil || svc.Target.IsZero() {
		return est
	}

	profit := svc.Target.Sub(materialCost)
	if profit.IsNegative() {
		profit = decimal.Zero
	}
	est.Profit = profit
	est.MarginPercent = profit.Div(*svc.Target).Mul(hundred)
	return est
}

// CoalesceMaterials soma quantidades de product_ids duplicados na
// primeira ocorrência, preservando a ordem de entrada.
func CoalesceMaterials(materials []models.ServiceMaterial) []models.ServiceMaterial {
	out := make([]models.ServiceMaterial, 0, len(materials))
	index := make(map[string]int, len(materials))

	for _, m := range materials {
		key := m.ProductID.String()
		if i, ok := index[key]; ok {
			out[i].Quantidade = out[i].Quantidade.Add(m.Quantidade)
			continue
		}
		index[key] = len(out)
		out = append(out, m)
	}
	return out
}
