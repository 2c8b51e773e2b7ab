package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func material(productID uuid.UUID, qty, cost string) models.ServiceMaterial {
	return models.ServiceMaterial{
		ProductID:  productID,
		Quantidade: dec(qty),
		UnitCost:   dec(cost),
	}
}

func TestEstimateCost_ProfitAndMargin(t *testing.T) {
	target := dec("100")
	svc := &models.Service{Target: &target}

	materials := []models.ServiceMaterial{
		material(uuid.New(), "2", "10"), // 20
		material(uuid.New(), "1", "30"), // 30
	}

	est := EstimateCost(svc, materials)

	if !est.MaterialCost.Equal(dec("50")) {
		t.Fatalf("expected cost 50, got %s", est.MaterialCost)
	}
	if !est.Profit.Equal(dec("50")) {
		t.Fatalf("expected profit 50, got %s", est.Profit)
	}
	if !est.MarginPercent.Equal(dec("50")) {
		t.Fatalf("expected margin 50%%, got %s", est.MarginPercent)
	}
}

func TestEstimateCost_CostAboveTargetClampsProfit(t *testing.T) {
	target := dec("40")
	svc := &models.Service{Target: &target}

	est := EstimateCost(svc, []models.ServiceMaterial{material(uuid.New(), "1", "60")})

	if !est.Profit.IsZero() {
		t.Fatalf("profit must not go negative, got %s", est.Profit)
	}
	if !est.MarginPercent.IsZero() {
		t.Fatalf("margin must be zero when cost exceeds target, got %s", est.MarginPercent)
	}
}

func TestEstimateCost_NilOrZeroTarget(t *testing.T) {
	materials := []models.ServiceMaterial{material(uuid.New(), "3", "4")}

	est := EstimateCost(&models.Service{}, materials)
	if !est.MaterialCost.Equal(dec("12")) || !est.Profit.IsZero() || !est.MarginPercent.IsZero() {
		t.Fatalf("nil target: unexpected estimate %+v", est)
	}

	zero := decimal.Zero
	est = EstimateCost(&models.Service{Target: &zero}, materials)
	if !est.Profit.IsZero() || !est.MarginPercent.IsZero() {
		t.Fatalf("zero target: unexpected estimate %+v", est)
	}
}

func TestCoalesceMaterials_SumsDuplicatesIntoFirstOccurrence(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	in := []models.ServiceMaterial{
		material(a, "1", "5"),
		material(b, "2", "3"),
		material(a, "4", "5"),
	}

	out := CoalesceMaterials(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].ProductID != a || !out[0].Quantidade.Equal(dec("5")) {
		t.Fatalf("first row should hold the summed quantity, got %s of %s", out[0].Quantidade, out[0].ProductID)
	}
	if out[1].ProductID != b || !out[1].Quantidade.Equal(dec("2")) {
		t.Fatalf("order must be preserved, got %s of %s", out[1].Quantidade, out[1].ProductID)
	}
}

func TestCoalesceMaterials_EmptyInput(t *testing.T) {
	if out := CoalesceMaterials(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %d rows", len(out))
	}
}
