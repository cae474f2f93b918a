package purchaseorder

import (
	"errors"
	"fmt"
	"strings"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LabelingCost is a prep, labeling or transport charge for the whole quantity
// of one item. It is divided by the item quantity during allocation.
type LabelingCost struct {
	id        kernel.UUID
	itemID    kernel.UUID
	note      string
	costTotal decimal.Decimal
}

// NewLabelingCost validates and creates a labeling cost for itemID.
// The cost total must not be negative.
func NewLabelingCost(id, itemID kernel.UUID, note string, costTotal decimal.Decimal) (*LabelingCost, error) {
	if err := errors.Join(id.Validate(), itemID.Validate()); err != nil {
		return nil, err
	}
	if costTotal.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"labeling cost total",
			fmt.Errorf("%s is negative", costTotal),
		)
	}
	return &LabelingCost{
		id:        id,
		itemID:    itemID,
		note:      strings.TrimSpace(note),
		costTotal: costTotal,
	}, nil
}

func (l *LabelingCost) ID() kernel.UUID {
	return l.id
}

func (l *LabelingCost) ItemID() kernel.UUID {
	return l.itemID
}

func (l *LabelingCost) Note() string {
	return l.note
}

func (l *LabelingCost) CostTotal() decimal.Decimal {
	return l.costTotal
}
