// Package menucatalog provides the database-backed menu lookup used when
// pricing order lines.
package menucatalog

import (
	"context"
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItemDTO represents one sellable menu position in one size. The same
// menu item appears once per size it is sold in, each row carrying its own
// price.
type MenuItemDTO struct {
	MenuID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Size      string          `gorm:"primaryKey"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for menu entries.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormMenuCatalog implements ports.MenuCatalog using GORM.
type GormMenuCatalog struct {
	db *gorm.DB
}

// NewGormMenuCatalog creates a new GORM menu catalog.
func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// Lookup resolves a menu item in the given size to its name and price.
func (c *GormMenuCatalog) Lookup(ctx context.Context, menuID kernel.UUID, size string) (ports.MenuEntry, error) {
	if err := menuID.Validate(); err != nil {
		return ports.MenuEntry{}, err
	}

	var dto MenuItemDTO
	err := c.db.WithContext(ctx).
		First(&dto, "menu_id = ? AND size = ?", menuID.Bytes(), size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MenuEntry{}, errs.NewObjectNotFoundError("menuItem",
				fmt.Sprintf("%s/%s", menuID, size))
		}
		return ports.MenuEntry{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return ports.MenuEntry{}, err
	}

	return ports.MenuEntry{
		Name:      dto.Name,
		UnitPrice: price,
	}, nil
}
