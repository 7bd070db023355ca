package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
)

// MenuEntry is a priced catalog position resolved for an order line.
type MenuEntry struct {
	Name      string
	UnitPrice kernel.Money
}

// MenuCatalog resolves menu item identifiers to their name and current
// price for the requested size. Orders snapshot the resolved price, so
// later catalog changes never touch placed orders.
type MenuCatalog interface {
	// Lookup resolves a menu item in the given size. A missing item or a
	// size the item is not sold in yields errs.ErrObjectNotFound.
	Lookup(ctx context.Context, menuID kernel.UUID, size string) (MenuEntry, error)
}
