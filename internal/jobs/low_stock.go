package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/organizeja/gestor-api/internal/audit"
	"github.com/organizeja/gestor-api/internal/domain/inventory"
)

// ======================================================================
// JOBS - varredura diária de estoque baixo
// ======================================================================

// LowStockSweep percorre os produtos ativos de todas as empresas e
// registra um evento de auditoria para cada produto que está em (ou
// abaixo de) seu estoque mínimo. Roda pelo cron configurado.
type LowStockSweep struct {
	repo  inventory.Repository
	audit *audit.Dispatcher
	cron  *cron.Cron
}

func NewLowStockSweep(repo inventory.Repository, dispatcher *audit.Dispatcher) *LowStockSweep {
	return &LowStockSweep{
		repo:  repo,
		audit: dispatcher,
		cron:  cron.New(),
	}
}

// Start agenda a varredura. Spec no formato padrão do cron (5 campos).
func (j *LowStockSweep) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.Run); err != nil {
		return fmt.Errorf("jobs: agendar varredura de estoque: %w", err)
	}
	j.cron.Start()
	logrus.WithField("spec", spec).Info("low stock sweep scheduled")
	return nil
}

func (j *LowStockSweep) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *LowStockSweep) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	products, err := j.repo.ListBelowMinimum(ctx)
	if err != nil {
		logrus.Error("low stock sweep failed: " + err.Error())
		return
	}

	for i := range products {
		p := &products[i]
		j.audit.Dispatch(audit.Event{
			CompanyID: p.CompanyID,
			Action:    "low_stock_detected",
			Entity:    "product",
			EntityID:  &p.ID,
			Metadata: map[string]any{
				"nome":           p.Nome,
				"quantidade":     p.Quantidade.String(),
				"estoque_minimo": p.EstoqueMinimo.String(),
			},
		})
	}

	if len(products) > 0 {
		logrus.WithField("count", len(products)).Info("low stock sweep completed")
	}
}
