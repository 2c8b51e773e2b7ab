package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newProduct(qty, cost string) *models.Product {
	return &models.Product{
		ID:            uuid.New(),
		CompanyID:     uuid.New(),
		Nome:          "Óleo essencial",
		Quantidade:    dec(qty),
		CostPrice:     dec(cost),
		EstoqueMinimo: dec("0"),
		Status:        models.ProductStatusAtivo,
	}
}

func TestAverageCost_WeightedByQuantity(t *testing.T) {
	// 10 un a 5,00 + 10 un a 7,00 => média 6,00
	got := AverageCost(dec("10"), dec("5"), dec("10"), dec("7"))
	if !got.Equal(dec("6")) {
		t.Fatalf("expected 6, got %s", got)
	}
}

func TestAverageCost_ZeroTotalFallsBackToIncomingCost(t *testing.T) {
	got := AverageCost(dec("0"), dec("0"), dec("0"), dec("12.5"))
	if !got.Equal(dec("12.5")) {
		t.Fatalf("expected 12.5, got %s", got)
	}
}

func TestApply_EntradaRecomputesAverage(t *testing.T) {
	p := newProduct("10", "5")
	now := time.Now()

	mov, err := Apply(p, models.MovementEntrada, dec("10"), dec("7"), "", now)
	if err != nil {
		t.Fatalf("entrada failed: %v", err)
	}

	if !p.CostPrice.Equal(dec("6")) {
		t.Fatalf("expected cost 6, got %s", p.CostPrice)
	}
	if !p.Quantidade.Equal(dec("20")) {
		t.Fatalf("expected qty 20, got %s", p.Quantidade)
	}
	if !mov.UnitCost.Equal(dec("7")) {
		t.Fatalf("movement should record the incoming cost, got %s", mov.UnitCost)
	}
	if p.DataUltimaEntrada == nil {
		t.Fatal("entrada should refresh data_ultima_entrada")
	}
}

func TestApply_SaidaLeavesAverageUntouched(t *testing.T) {
	p := newProduct("20", "6")

	mov, err := Apply(p, models.MovementSaida, dec("5"), decimal.Zero, "", time.Now())
	if err != nil {
		t.Fatalf("saida failed: %v", err)
	}

	if !p.CostPrice.Equal(dec("6")) {
		t.Fatalf("saida must not change the average, got %s", p.CostPrice)
	}
	if !p.Quantidade.Equal(dec("15")) {
		t.Fatalf("expected qty 15, got %s", p.Quantidade)
	}
	if !mov.UnitCost.Equal(dec("6")) {
		t.Fatalf("saida must record the current average, got %s", mov.UnitCost)
	}
}

func TestApply_SaidaBeyondOnHandIsRejected(t *testing.T) {
	p := newProduct("3", "6")

	_, err := Apply(p, models.MovementSaida, dec("5"), decimal.Zero, "", time.Now())
	if !httperr.IsBusiness(err, httperr.CodeInsufficientStock) {
		t.Fatalf("expected insufficient_stock, got %v", err)
	}

	// rejeição não pode deixar efeito parcial
	if !p.Quantidade.Equal(dec("3")) || !p.CostPrice.Equal(dec("6")) {
		t.Fatalf("product mutated after rejection: qty=%s cost=%s", p.Quantidade, p.CostPrice)
	}
}

func TestApply_RejectsNonPositiveQuantity(t *testing.T) {
	p := newProduct("10", "5")

	for _, q := range []string{"0", "-1"} {
		if _, err := Apply(p, models.MovementEntrada, dec(q), dec("5"), "", time.Now()); !httperr.IsBusiness(err, "invalid_quantity") {
			t.Fatalf("quantidade %s: expected invalid_quantity, got %v", q, err)
		}
	}
}

func TestApply_EntradaRequiresUnitCost(t *testing.T) {
	p := newProduct("10", "5")

	_, err := Apply(p, models.MovementEntrada, dec("1"), decimal.Zero, "", time.Now())
	if !httperr.IsBusiness(err, "missing_unit_cost") {
		t.Fatalf("expected missing_unit_cost, got %v", err)
	}
}

func TestApply_StatusFollowsThreshold(t *testing.T) {
	p := newProduct("10", "5")
	p.EstoqueMinimo = dec("8")

	if _, err := Apply(p, models.MovementSaida, dec("3"), decimal.Zero, "", time.Now()); err != nil {
		t.Fatalf("saida failed: %v", err)
	}
	if p.Status != models.ProductStatusEstoqueBaixo {
		t.Fatalf("expected Estoque Baixo, got %s", p.Status)
	}

	if _, err := Apply(p, models.MovementEntrada, dec("10"), dec("5"), "", time.Now()); err != nil {
		t.Fatalf("entrada failed: %v", err)
	}
	if p.Status != models.ProductStatusAtivo {
		t.Fatalf("expected Ativo, got %s", p.Status)
	}
}

func TestApply_InativoIsPreserved(t *testing.T) {
	p := newProduct("10", "5")
	p.Status = models.ProductStatusInativo

	if _, err := Apply(p, models.MovementEntrada, dec("1"), dec("5"), "", time.Now()); err != nil {
		t.Fatalf("entrada failed: %v", err)
	}
	if p.Status != models.ProductStatusInativo {
		t.Fatalf("manual Inativo must survive movements, got %s", p.Status)
	}
}
