package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/tenant"
)

type fakePreapprovalClient struct {
	created *preapproval.Request
	get     *preapproval.Response
}

func (f *fakePreapprovalClient) Create(ctx context.Context, request preapproval.Request) (*preapproval.Response, error) {
	f.created = &request
	return &preapproval.Response{
		ID:                "pre-1",
		InitPoint:         "https://mp.example/checkout/pre-1",
		ExternalReference: request.ExternalReference,
		Status:            "pending",
	}, nil
}

func (f *fakePreapprovalClient) Get(ctx context.Context, id string) (*preapproval.Response, error) {
	return f.get, nil
}

func newTestService(client preapprovalClient) *Service {
	return &Service{
		client:        client,
		webhookSecret: "secret",
		backURL:       "https://app.example/config",
		amounts: map[tenant.Plan]decimal.Decimal{
			tenant.PlanPlus: decimal.RequireFromString("49.90"),
			tenant.PlanPro:  decimal.RequireFromString("99.90"),
		},
	}
}

func TestCreateCheckout_BuildsMonthlyPreapproval(t *testing.T) {
	client := &fakePreapprovalClient{}
	s := newTestService(client)

	companyID := uuid.New()
	tn := tenant.Context{CompanyID: companyID, UserID: uuid.New(), Role: tenant.RoleOwner}

	result, err := s.CreateCheckout(context.Background(), tn, "dona@example.com", tenant.PlanPlus)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if result.PreapprovalID != "pre-1" || result.InitPoint == "" {
		t.Fatalf("unexpected result: %+v", result)
	}

	req := client.created
	if req == nil {
		t.Fatal("no preapproval created")
	}
	if req.PayerEmail != "dona@example.com" {
		t.Fatalf("unexpected payer %q", req.PayerEmail)
	}
	if req.AutoRecurring == nil ||
		req.AutoRecurring.Frequency != 1 ||
		req.AutoRecurring.FrequencyType != "months" ||
		req.AutoRecurring.TransactionAmount != 49.9 ||
		req.AutoRecurring.CurrencyID != "BRL" {
		t.Fatalf("unexpected recurrence: %+v", req.AutoRecurring)
	}

	gotCompany, gotPlan, err := parseExternalReference(req.ExternalReference)
	if err != nil {
		t.Fatalf("external reference unparseable: %v", err)
	}
	if gotCompany != companyID || gotPlan != tenant.PlanPlus {
		t.Fatalf("external reference mismatch: %s %s", gotCompany, gotPlan)
	}
}

func TestCreateCheckout_RejectsFreePlan(t *testing.T) {
	s := newTestService(&fakePreapprovalClient{})
	tn := tenant.Context{CompanyID: uuid.New(), UserID: uuid.New(), Role: tenant.RoleOwner}

	_, err := s.CreateCheckout(context.Background(), tn, "dona@example.com", tenant.PlanFree)
	if !httperr.IsBusiness(err, "invalid_plan") {
		t.Fatalf("expected invalid_plan, got %v", err)
	}
}

func TestParseExternalReference_Invalid(t *testing.T) {
	for _, ref := range []string{"", "no-separator", "not-a-uuid|plus"} {
		if _, _, err := parseExternalReference(ref); err == nil {
			t.Fatalf("reference %q should be rejected", ref)
		}
	}
}
