package pipeline

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
)

func TestAllocate_MixedDevotions(t *testing.T) {
	rent := uuid.New()
	tithe := uuid.New()
	rest := uuid.New()

	div := model.IncomeDivision{
		Name:   "June paycheck",
		Amount: money.FromInt(450),
		Kind:   model.IncomePay,
		Devotions: []model.IncomeDevotion{
			{ID: rent, Name: "Rent", Kind: model.DevotionAmount, Group: model.GroupNeed, Amount: money.MustParse("137.50")},
			{ID: tithe, Name: "Tithe", Kind: model.DevotionPercent, Group: model.GroupWant, Percent: decimal.NewFromInt(8)},
			{ID: rest, Name: "Everything else", Kind: model.DevotionRemainder, Group: model.GroupSavings},
		},
	}

	alloc := Allocate(div)

	if !alloc.DevotionsTotal.Equal(money.MustParse("173.50")) {
		t.Errorf("devotionsTotal = %s, want 173.50", alloc.DevotionsTotal)
	}
	if !alloc.RemainderValue.Equal(money.MustParse("276.50")) {
		t.Errorf("remainderValue = %s, want 276.50", alloc.RemainderValue)
	}
	per, err := alloc.PerRemainderValue()
	if err != nil {
		t.Fatalf("perRemainderValue: %v", err)
	}
	if !per.Equal(money.MustParse("276.50")) {
		t.Errorf("perRemainderValue = %s, want 276.50", per)
	}
	if !alloc.Variance.IsZero() {
		t.Errorf("variance = %s, want 0", alloc.Variance)
	}
	if !alloc.Balanced() {
		t.Error("division with a remainder devotion reported unbalanced")
	}

	if got := alloc.EffectiveAmount(tithe); !got.Equal(money.FromInt(36)) {
		t.Errorf("percent slice = %s, want 36", got)
	}
	if got := alloc.EffectiveAmount(rest); !got.Equal(money.MustParse("276.50")) {
		t.Errorf("remainder share = %s, want 276.50", got)
	}
}

func TestAllocate_OverCommittedWithoutRemainder(t *testing.T) {
	div := model.IncomeDivision{
		Amount: money.FromInt(450),
		Devotions: []model.IncomeDevotion{
			{ID: uuid.New(), Kind: model.DevotionAmount, Amount: money.FromInt(300)},
			{ID: uuid.New(), Kind: model.DevotionAmount, Amount: money.FromInt(200)},
		},
	}

	alloc := Allocate(div)

	// The gap is reported directly, not clamped to zero.
	if !alloc.Variance.Equal(money.FromInt(-50)) {
		t.Errorf("variance = %s, want -50", alloc.Variance)
	}
	if alloc.Balanced() {
		t.Error("over-committed division reported balanced")
	}

	if _, err := alloc.PerRemainderValue(); !errors.Is(err, ErrNoRemainderDevotions) {
		t.Errorf("perRemainderValue err = %v, want ErrNoRemainderDevotions", err)
	}
}

func TestAllocate_MultipleRemaindersSplitEvenly(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	div := model.IncomeDivision{
		Amount: money.FromInt(100),
		Devotions: []model.IncomeDevotion{
			{ID: uuid.New(), Kind: model.DevotionAmount, Amount: money.FromInt(40)},
			{ID: a, Kind: model.DevotionRemainder},
			{ID: b, Kind: model.DevotionRemainder},
		},
	}

	alloc := Allocate(div)
	want := money.FromInt(30)
	if got := alloc.EffectiveAmount(a); !got.Equal(want) {
		t.Errorf("remainder a = %s, want 30", got)
	}
	if got := alloc.EffectiveAmount(b); !got.Equal(want) {
		t.Errorf("remainder b = %s, want 30", got)
	}
}

func TestAllocate_ExactDecimalPercent(t *testing.T) {
	dev := uuid.New()
	div := model.IncomeDivision{
		Amount: money.MustParse("1033.33"),
		Devotions: []model.IncomeDevotion{
			{ID: dev, Kind: model.DevotionPercent, Percent: decimal.NewFromFloat(12.5)},
		},
	}

	alloc := Allocate(div)
	// 12.5% of 1033.33 is exactly 129.16625 - no cent-level drift allowed.
	if got := alloc.EffectiveAmount(dev); !got.Equal(money.MustParse("129.16625")) {
		t.Errorf("percent slice = %s, want 129.16625", got)
	}
}

func TestAllocate_EmptyDivision(t *testing.T) {
	div := model.IncomeDivision{Amount: money.FromInt(200)}
	alloc := Allocate(div)
	if !alloc.Variance.Equal(money.FromInt(200)) {
		t.Errorf("variance = %s, want the full unallocated amount", alloc.Variance)
	}
}

func TestGroupTotals(t *testing.T) {
	div := model.IncomeDivision{
		Amount: money.FromInt(100),
		Devotions: []model.IncomeDevotion{
			{ID: uuid.New(), Kind: model.DevotionAmount, Group: model.GroupNeed, Amount: money.FromInt(60)},
			{ID: uuid.New(), Kind: model.DevotionAmount, Group: model.GroupNeed, Amount: money.FromInt(10)},
			{ID: uuid.New(), Kind: model.DevotionRemainder, Group: model.GroupSavings},
		},
	}

	totals := GroupTotals(div)
	if !totals[model.GroupNeed].Equal(money.FromInt(70)) {
		t.Errorf("need total = %s, want 70", totals[model.GroupNeed])
	}
	if !totals[model.GroupSavings].Equal(money.FromInt(30)) {
		t.Errorf("savings total = %s, want 30", totals[model.GroupSavings])
	}
}
