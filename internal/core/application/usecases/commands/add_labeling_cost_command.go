package commands

import (
	"errors"
	"strings"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/errs"
	"cogs/internal/pkg/guard"
	"cogs/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var ErrAddLabelingCostCommandIsNotConstructed = errors.New(
	"AddLabelingCostCommand must be created via NewAddLabelingCostCommand constructor",
)

// AddLabelingCostCommand attaches a prep or labeling charge to an order item.
// The cost total covers the item's whole quantity.
//
// Example:
//
//	cmd, err := NewAddLabelingCostCommand(kernel.NewUUID(), itemID, "FNSKU labels", "12,50")
//	if err != nil {
//	    return err
//	}
//	po, err := handler.Handle(ctx, cmd)
type AddLabelingCostCommand struct { //nolint:recvcheck //using for validation
	labelingCostID kernel.UUID
	itemID         kernel.UUID
	note           string
	costTotal      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddLabelingCostCommand parses costTotal with money.Parse. A missing total
// is required, an unparseable or negative one is invalid.
func NewAddLabelingCostCommand(
	labelingCostID, itemID kernel.UUID,
	note string,
	costTotal any,
) (AddLabelingCostCommand, error) {
	cmd := AddLabelingCostCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLabelingCostID(labelingCostID),
		cmd.setItemID(itemID),
		cmd.setCostTotal(costTotal),
	); err != nil {
		return AddLabelingCostCommand{}, err
	}

	return cmd, nil
}

func (c AddLabelingCostCommand) Validate() error {
	return c.guard.Validate(ErrAddLabelingCostCommandIsNotConstructed)
}

func (c AddLabelingCostCommand) LabelingCostID() kernel.UUID {
	return c.labelingCostID
}

func (c AddLabelingCostCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddLabelingCostCommand) Note() string {
	return c.note
}

func (c AddLabelingCostCommand) CostTotal() decimal.Decimal {
	return c.costTotal
}

func (c *AddLabelingCostCommand) setLabelingCostID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.labelingCostID = id
	return nil
}

func (c *AddLabelingCostCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}

func (c *AddLabelingCostCommand) setCostTotal(v any) error {
	costTotal, err := money.Parse(v)
	switch {
	case errors.Is(err, money.ErrEmpty):
		return errs.NewValueIsRequiredError("labeling cost total")
	case err != nil:
		return errs.NewValueIsInvalidErrorWithCause("labeling cost total", err)
	case costTotal.IsNegative():
		return errs.NewValueIsInvalidError("labeling cost total")
	}

	c.costTotal = costTotal
	return nil
}
