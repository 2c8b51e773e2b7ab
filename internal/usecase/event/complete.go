package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/audit"
	domain "github.com/organizeja/gestor-api/internal/domain/event"
	domaininv "github.com/organizeja/gestor-api/internal/domain/inventory"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/lock"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
	"github.com/organizeja/gestor-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ConsumedItem struct {
	ProductID  uuid.UUID
	Quantidade decimal.Decimal
}

type CompleteEventInput struct {
	EventID uuid.UUID

	// Materiais do serviço, já ajustados pelo operador
	Materials []ConsumedItem
	// Itens avulsos consumidos no atendimento
	Extras []ConsumedItem

	Price    decimal.Decimal
	Discount decimal.Decimal
}

// ======================================================
// USE CASE — liquidação do atendimento
// ======================================================

// CompleteEvent é o único caminho que toca estoque, razão
// financeiro e agregados do cliente ao mesmo tempo. Tudo roda numa
// transação única: se qualquer passo falhar, nada é aplicado e o
// evento permanece no status anterior.
type CompleteEvent struct {
	repo   domain.Repository
	locker *lock.Locker
	audit  *audit.Dispatcher
}

func NewCompleteEvent(
	repo domain.Repository,
	locker *lock.Locker,
	audit *audit.Dispatcher,
) *CompleteEvent {
	return &CompleteEvent{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

func (uc *CompleteEvent) Execute(
	ctx context.Context,
	t tenant.Context,
	in CompleteEventInput,
) (*models.Event, error) {

	release, err := uc.locker.AcquireSettlement(ctx, in.EventID.String())
	if err != nil {
		return nil, err
	}
	defer release()

	var ev *models.Event

	err = uc.repo.Transaction(ctx, func(r domain.Repository) error {
		var err error
		ev, err = r.GetEventForUpdate(ctx, t.CompanyID, in.EventID)
		if err != nil {
			return httperr.ErrBusiness(httperr.CodeEventNotFound)
		}

		// Reavaliado sob lock: a segunda liquidação do mesmo evento
		// morre aqui, sem baixa nem lançamento duplicado.
		if err := domain.CanComplete(domain.Status(ev.Status)); err != nil {
			return err
		}

		now := timezone.Now()

		// 1) Baixa de estoque dos materiais consumidos.
		// O unit_cost registrado em cada saída é o custo médio
		// vigente, que a própria saída não altera — é ele que
		// alimenta o lançamento de despesa no passo 4.
		materialCost := decimal.Zero
		for _, m := range in.Materials {
			if m.Quantidade.LessThanOrEqual(decimal.Zero) {
				continue
			}
			mov, err := deductStock(ctx, r, t, m,
				fmt.Sprintf("Consumo no evento %s", ev.Title), now)
			if err != nil {
				return err
			}
			materialCost = materialCost.Add(m.Quantidade.Mul(mov.UnitCost))
		}

		// 2) Baixa dos itens extras (fora do custo de materiais,
		// como no fluxo original).
		for _, ex := range in.Extras {
			if ex.Quantidade.LessThanOrEqual(decimal.Zero) {
				continue
			}
			if _, err := deductStock(ctx, r, t, ex,
				fmt.Sprintf("Item extra no evento %s", ev.Title), now); err != nil {
				return err
			}
		}

		// 3) Faturamento líquido de desconto; linha zerada não entra.
		net := in.Price.Sub(in.Discount)
		if net.IsNegative() {
			net = decimal.Zero
		}
		if net.IsPositive() {
			header := ev.Title
			if ev.Service != nil {
				header = ev.Service.Header
			}
			if err := r.InsertFinancialMovement(ctx, &models.FinancialMovement{
				CompanyID:   t.CompanyID,
				ClientID:    ev.ClientID,
				EventID:     &ev.ID,
				Type:        models.FinancialFaturamento,
				Amount:      net,
				Description: "Faturamento do evento: " + header,
				Category:    "Serviço",
				Date:        now,
				CreatedBy:   &t.UserID,
			}); err != nil {
				return err
			}
		}

		// 4) Despesa com o custo dos materiais consumidos.
		if materialCost.IsPositive() {
			header := ev.Title
			if ev.Service != nil {
				header = ev.Service.Header
			}
			if err := r.InsertFinancialMovement(ctx, &models.FinancialMovement{
				CompanyID:   t.CompanyID,
				ClientID:    ev.ClientID,
				EventID:     &ev.ID,
				Type:        models.FinancialDespesa,
				Amount:      materialCost.Round(2),
				Description: "Custo de materiais do evento: " + header,
				Category:    "Custo de materiais",
				Date:        now,
				CreatedBy:   &t.UserID,
			}); err != nil {
				return err
			}
		}

		// 5) Agregados do cliente. total_gasto soma o preço BRUTO,
		// não o líquido — comportamento herdado do produto.
		if ev.ClientID != nil {
			client, err := r.GetClientForUpdate(ctx, t.CompanyID, *ev.ClientID)
			if err != nil {
				return httperr.ErrBusiness(httperr.CodeClientNotFound)
			}
			client.TotalGasto = client.TotalGasto.Add(in.Price)
			client.UltimoAtendimento = &now
			if err := r.UpdateClient(ctx, client); err != nil {
				return err
			}
		}

		// 6) Status vira completed só com todos os passos aplicados.
		if err := domain.Complete(ev, now); err != nil {
			return err
		}
		return r.UpdateEvent(ctx, ev)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "event_completed",
		Entity:    "event",
		EntityID:  &ev.ID,
		Metadata: map[string]any{
			"price":    in.Price,
			"discount": in.Discount,
		},
	})

	return ev, nil
}

// deductStock aplica uma saída pelo mesmo caminho do ledger de
// estoque, com a linha do produto trancada na transação corrente.
func deductStock(
	ctx context.Context,
	w domaininv.Writer,
	t tenant.Context,
	item ConsumedItem,
	note string,
	now time.Time,
) (*models.ProductMovement, error) {

	product, err := w.GetProductForUpdate(ctx, t.CompanyID, item.ProductID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeProductNotFound)
	}

	mov, err := domaininv.Apply(
		product,
		models.MovementSaida,
		item.Quantidade,
		decimal.Zero,
		note,
		now,
	)
	if err != nil {
		return nil, err
	}
	mov.CreatedBy = &t.UserID

	if err := w.InsertMovement(ctx, mov); err != nil {
		return nil, err
	}
	if err := w.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return mov, nil
}
