package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
)

// ===============================
// Custo médio ponderado
// ===============================

// AverageCost recompõe o custo médio após uma entrada:
//
//	C' = (Q*C + q*Ic) / (Q + q)
//
// com a guarda Q+q == 0 -> Ic. Saídas nunca passam por aqui;
// o custo médio só muda em entradas.
func AverageCost(currentQty, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	total := currentQty.Add(inQty)
	if total.IsZero() {
		return inCost
	}
	accumulated := currentQty.Mul(currentCost).Add(inQty.Mul(inCost))
	return accumulated.Div(total)
}

// Apply valida e aplica um movimento de estoque sobre o produto,
// devolvendo a linha imutável do razão de estoque. O produto é
// mutado em memória; persistir ambos na mesma transação é
// responsabilidade do chamador.
func Apply(
	p *models.Product,
	movType string,
	quantidade decimal.Decimal,
	unitCost decimal.Decimal,
	note string,
	now time.Time,
) (*models.ProductMovement, error) {

	if quantidade.LessThanOrEqual(decimal.Zero) {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	mov := &models.ProductMovement{
		CompanyID:  p.CompanyID,
		ProductID:  p.ID,
		Type:       movType,
		Quantidade: quantidade,
		Note:       note,
	}

	switch movType {
	case models.MovementEntrada:
		if unitCost.LessThanOrEqual(decimal.Zero) {
			return nil, httperr.ErrBusiness("missing_unit_cost")
		}
		p.CostPrice = AverageCost(p.Quantidade, p.CostPrice, quantidade, unitCost)
		p.Quantidade = p.Quantidade.Add(quantidade)
		p.DataUltimaEntrada = &now
		mov.UnitCost = unitCost

	case models.MovementSaida:
		if quantidade.GreaterThan(p.Quantidade) {
			return nil, httperr.ErrBusiness(httperr.CodeInsufficientStock)
		}
		// A saída consome a base de custo vigente; o médio não muda.
		mov.UnitCost = p.CostPrice
		p.Quantidade = p.Quantidade.Sub(quantidade)

	default:
		return nil, httperr.ErrBusiness("invalid_movement_type")
	}

	refreshStatus(p)
	return mov, nil
}

// Inativo é preservado; o limiar só alterna entre Ativo e
// Estoque Baixo.
func refreshStatus(p *models.Product) {
	if p.Status == models.ProductStatusInativo {
		return
	}
	if p.LowStock() {
		p.Status = models.ProductStatusEstoqueBaixo
		return
	}
	p.Status = models.ProductStatusAtivo
}
