package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/organizeja/gestor-api/internal/config"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
)

// ======================================================================
// COBRANÇA - integração de assinaturas com o Mercado Pago
// ======================================================================

type preapprovalClient interface {
	Create(ctx context.Context, request preapproval.Request) (*preapproval.Response, error)
	Get(ctx context.Context, id string) (*preapproval.Response, error)
}

type Service struct {
	db            *gorm.DB
	client        preapprovalClient
	webhookSecret string
	backURL       string
	amounts       map[tenant.Plan]decimal.Decimal
}

func NewService(db *gorm.DB, cfg *config.Config) (*Service, error) {
	mpCfg, err := mpconfig.New(cfg.MPAccessToken)
	if err != nil {
		return nil, fmt.Errorf("billing: configurar mercado pago: %w", err)
	}

	plusAmount, err := decimal.NewFromString(cfg.PlanPlusAmount)
	if err != nil {
		return nil, fmt.Errorf("billing: valor do plano plus inválido: %w", err)
	}
	proAmount, err := decimal.NewFromString(cfg.PlanProAmount)
	if err != nil {
		return nil, fmt.Errorf("billing: valor do plano pro inválido: %w", err)
	}

	return &Service{
		db:            db,
		client:        preapproval.NewClient(mpCfg),
		webhookSecret: cfg.MPWebhookSecret,
		backURL:       cfg.CheckoutBackURL,
		amounts: map[tenant.Plan]decimal.Decimal{
			tenant.PlanPlus: plusAmount,
			tenant.PlanPro:  proAmount,
		},
	}, nil
}

func (s *Service) WebhookSecret() string { return s.webhookSecret }

type CheckoutResult struct {
	PreapprovalID string `json:"preapproval_id"`
	InitPoint     string `json:"init_point"`
}

// CreateCheckout cria uma assinatura recorrente pendente no Mercado Pago
// e devolve o link de pagamento. O plano fica gravado na external_reference
// para o webhook resolver depois.
func (s *Service) CreateCheckout(ctx context.Context, t tenant.Context, payerEmail string, plan tenant.Plan) (*CheckoutResult, error) {
	amount, ok := s.amounts[plan]
	if !ok {
		return nil, httperr.ErrBusiness("invalid_plan")
	}

	value, _ := amount.Float64()

	resp, err := s.client.Create(ctx, preapproval.Request{
		Reason:            fmt.Sprintf("OrganizeJá - plano %s", plan),
		ExternalReference: externalReference(t.CompanyID, plan),
		PayerEmail:        payerEmail,
		BackURL:           s.backURL,
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: value,
			CurrencyID:        "BRL",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("billing: criar assinatura: %w", err)
	}

	return &CheckoutResult{PreapprovalID: resp.ID, InitPoint: resp.InitPoint}, nil
}

// HandleNotification busca a assinatura notificada e sincroniza o plano
// da empresa conforme o status dela.
func (s *Service) HandleNotification(ctx context.Context, preapprovalID string) error {
	resp, err := s.client.Get(ctx, preapprovalID)
	if err != nil {
		return fmt.Errorf("billing: consultar assinatura %s: %w", preapprovalID, err)
	}

	companyID, plan, err := parseExternalReference(resp.ExternalReference)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	switch resp.Status {
	case "authorized":
		periodEnd := resp.NextPaymentDate
		if periodEnd.IsZero() {
			periodEnd = now.AddDate(0, 1, 0)
		}
		return s.upsertPlan(models.CompanyPlan{
			CompanyID:             companyID,
			Plan:                  string(plan),
			Status:                models.PlanStatusActive,
			GatewaySubscriptionID: preapprovalID,
			CurrentPeriodEnd:      &periodEnd,
		})

	case "paused":
		return s.setStatus(companyID, preapprovalID, models.PlanStatusPastDue)

	case "cancelled":
		// Assinatura encerrada: a empresa volta para o plano gratuito.
		return s.upsertPlan(models.CompanyPlan{
			CompanyID:             companyID,
			Plan:                  string(tenant.PlanFree),
			Status:                models.PlanStatusCanceled,
			GatewaySubscriptionID: preapprovalID,
		})

	default:
		logrus.WithFields(logrus.Fields{
			"preapproval_id": preapprovalID,
			"status":         resp.Status,
		}).Info("billing: notificação ignorada")
		return nil
	}
}

func (s *Service) upsertPlan(plan models.CompanyPlan) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan", "status", "gateway_subscription_id", "current_period_end", "updated_at"}),
	}).Create(&plan).Error
}

func (s *Service) setStatus(companyID uuid.UUID, preapprovalID, status string) error {
	return s.db.Model(&models.CompanyPlan{}).
		Where("company_id = ?", companyID).
		Updates(map[string]interface{}{"status": status, "gateway_subscription_id": preapprovalID}).Error
}

func externalReference(companyID uuid.UUID, plan tenant.Plan) string {
	return fmt.Sprintf("%s|%s", companyID, plan)
}

func parseExternalReference(ref string) (uuid.UUID, tenant.Plan, error) {
	parts := strings.SplitN(ref, "|", 2)
	if len(parts) != 2 {
		return uuid.Nil, "", fmt.Errorf("billing: external_reference inválida: %s", strconv.Quote(ref))
	}
	companyID, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("billing: external_reference inválida: %w", err)
	}
	return companyID, tenant.Plan(parts[1]), nil
}
