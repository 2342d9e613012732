package lists

import (
	"context"

	"github.com/obratex/deposito-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los repositorios
// que necesita el ciclo de vida de listas. Finalizar/reabrir y la creación masiva de
// vagas son todo-o-nada: cualquier fallo revierte la transacción completa.
type TxRunner interface {
	RunLists(ctx context.Context, fn func(
		slotRepo repository.SlotRepository,
		productRepo repository.ProductRepository,
		listRepo repository.ListRepository,
	) error) error
}
