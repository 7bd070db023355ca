package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Resolves every requested line against the menu catalog, snapshots names
// and prices into the order, and persists it in the Placed status with
// server-computed totals.
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	menuCatalog ports.MenuCatalog
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// MenuCatalog for price resolution.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, menuCatalog ports.MenuCatalog) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		menuCatalog: menuCatalog,
	}
}

// Handle processes the order placement command.
// Catalog lookups run before the transaction opens; an unknown menu item or
// size fails the whole placement with errs.ErrObjectNotFound.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		entry, err := h.menuCatalog.Lookup(ctx, line.MenuID(), line.Size())
		if err != nil {
			return err
		}

		item, err := order.NewItem(line.MenuID(), entry.Name, line.Size(), entry.UnitPrice, line.Quantity())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	customer, err := order.NewCustomer(cmd.CustomerName(), cmd.CustomerPhone(),
		cmd.CustomerEmail(), cmd.CustomerAddress())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), order.NewNumber(time.Now()),
		cmd.BranchID(), customer, items, cmd.OrderType())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
