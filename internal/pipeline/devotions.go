package pipeline

import (
	"errors"

	"github.com/google/uuid"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
)

// ErrNoRemainderDevotions reports an attempt to compute a per-remainder share
// for a division with no remainder devotions. It signals a data-modeling
// problem (nothing absorbs the slack) rather than a routine absence.
var ErrNoRemainderDevotions = errors.New("no remainder devotions present")

// Allocation is the fully resolved split of an income division's total.
type Allocation struct {
	// DevotionsTotal is the sum of all fixed amounts plus all percentage
	// slices; remainder devotions contribute nothing here.
	DevotionsTotal money.Money
	// RemainderValue is the division total minus DevotionsTotal.
	RemainderValue money.Money
	// RemainderCount is how many remainder devotions share RemainderValue.
	RemainderCount int
	// Variance is zero when a remainder devotion absorbs the slack;
	// otherwise it equals RemainderValue, sign preserved.
	Variance money.Money

	perRemainder money.Money
	amounts      map[uuid.UUID]money.Money
}

// Allocate resolves a division's devotions against its total amount. All
// percentage math runs on exact decimals; nothing is rounded until display.
func Allocate(div model.IncomeDivision) Allocation {
	alloc := Allocation{amounts: make(map[uuid.UUID]money.Money, len(div.Devotions))}

	for _, dev := range div.Devotions {
		switch dev.Kind {
		case model.DevotionAmount:
			alloc.DevotionsTotal = alloc.DevotionsTotal.Add(dev.Amount)
			alloc.amounts[dev.ID] = dev.Amount
		case model.DevotionPercent:
			slice := div.Amount.Percent(dev.Percent)
			alloc.DevotionsTotal = alloc.DevotionsTotal.Add(slice)
			alloc.amounts[dev.ID] = slice
		case model.DevotionRemainder:
			alloc.RemainderCount++
		}
	}

	alloc.RemainderValue = div.Amount.Sub(alloc.DevotionsTotal)

	if alloc.RemainderCount > 0 {
		alloc.perRemainder = alloc.RemainderValue.DivInt(int64(alloc.RemainderCount))
		for _, dev := range div.Devotions {
			if dev.Kind == model.DevotionRemainder {
				alloc.amounts[dev.ID] = alloc.perRemainder
			}
		}
		// The remainder absorbs all slack by construction.
		alloc.Variance = money.Zero
	} else {
		alloc.Variance = alloc.RemainderValue
	}

	return alloc
}

// PerRemainderValue is the even share each remainder devotion receives.
// Guarded: with no remainder devotions the division is undefined and the
// typed error is returned instead of a NaN-style result.
func (a Allocation) PerRemainderValue() (money.Money, error) {
	if a.RemainderCount == 0 {
		return money.Zero, ErrNoRemainderDevotions
	}
	return a.perRemainder, nil
}

// EffectiveAmount is the resolved value of one devotion: its fixed amount,
// its percentage slice, or its remainder share.
func (a Allocation) EffectiveAmount(devotionID uuid.UUID) money.Money {
	return a.amounts[devotionID]
}

// Balanced reports whether the division's devotions account for its full
// amount, either exactly or through a remainder devotion.
func (a Allocation) Balanced() bool {
	return a.Variance.IsZero()
}

// GroupTotals sums resolved devotion amounts by need/want/savings group.
func GroupTotals(div model.IncomeDivision) map[model.DevotionGroup]money.Money {
	alloc := Allocate(div)
	totals := make(map[model.DevotionGroup]money.Money)
	for _, dev := range div.Devotions {
		totals[dev.Group] = totals[dev.Group].Add(alloc.EffectiveAmount(dev.ID))
	}
	return totals
}
