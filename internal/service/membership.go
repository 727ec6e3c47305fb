package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/shopspring/decimal"
)

type TierPolicy struct {
	Silver   decimal.Decimal
	Gold     decimal.Decimal
	Platinum decimal.Decimal
}

func DefaultTierPolicy() TierPolicy {
	return TierPolicy{
		Silver:   decimal.NewFromInt(2_000_000),
		Gold:     decimal.NewFromInt(5_000_000),
		Platinum: decimal.NewFromInt(10_000_000),
	}
}

func (p TierPolicy) TierFor(spend decimal.Decimal) domain.Tier {
	switch {
	case spend.GreaterThanOrEqual(p.Platinum):
		return domain.TierPlatinum
	case spend.GreaterThanOrEqual(p.Gold):
		return domain.TierGold
	case spend.GreaterThanOrEqual(p.Silver):
		return domain.TierSilver
	}
	return domain.TierBronze
}

// Accrue adds amount to the user's lifetime spend inside tx and upgrades the
// tier when the new spend crosses a threshold. Tiers never go down.
func (p TierPolicy) Accrue(ctx context.Context, tx MembershipTx, userID int, amount decimal.Decimal, now time.Time) (*domain.MembershipChange, error) {
	after, err := tx.AddLifetimeSpend(ctx, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("add lifetime spend: %w", err)
	}
	if after.Tier == "" {
		after.Tier = domain.TierBronze
	}
	before := *after
	before.LifetimeSpend = after.LifetimeSpend.Sub(amount)

	change := &domain.MembershipChange{Before: before, After: *after}
	computed := p.TierFor(after.LifetimeSpend)
	if computed.Rank() <= after.Tier.Rank() {
		return change, nil
	}

	if err := tx.UpdateTier(ctx, userID, computed, now); err != nil {
		return nil, fmt.Errorf("update membership tier: %w", err)
	}
	since := now
	if after.MemberSince != nil {
		since = *after.MemberSince
	}
	change.After.Tier = computed
	change.After.MemberSince = &since
	change.TierChanged = true
	return change, nil
}
