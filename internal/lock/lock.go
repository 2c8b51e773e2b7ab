package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/organizeja/gestor-api/internal/httperr"
)

const settlementTTL = 30 * time.Second

// Locker serializa operações entre instâncias da API via SET NX.
// O banco já garante consistência transacional; o lock só existe
// para cortar cedo a dupla liquidação concorrente do mesmo evento.
type Locker struct {
	rdb *redis.Client
}

func NewLocker(rdb *redis.Client) *Locker {
	return &Locker{rdb: rdb}
}

// AcquireSettlement tenta o lock da liquidação do evento. Retorna
// a função de release; erro de negócio "settlement_in_progress"
// quando outro processo segura o lock.
func (l *Locker) AcquireSettlement(ctx context.Context, eventID string) (func(), error) {
	if l.rdb == nil {
		// redis é opcional em dev; a transação segue protegendo
		return func() {}, nil
	}

	key := "settlement:" + eventID
	ok, err := l.rdb.SetNX(ctx, key, "1", settlementTTL).Result()
	if err != nil {
		// Indisponibilidade do redis não bloqueia a operação.
		return func() {}, nil
	}
	if !ok {
		return nil, httperr.ErrBusiness("settlement_in_progress")
	}

	return func() {
		l.rdb.Del(context.Background(), key)
	}, nil
}
