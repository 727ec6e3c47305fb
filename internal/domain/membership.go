package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

// Rank orders tiers so upgrades can be compared; unknown tiers rank as BRONZE.
func (t Tier) Rank() int {
	switch t {
	case TierSilver:
		return 1
	case TierGold:
		return 2
	case TierPlatinum:
		return 3
	}
	return 0
}

type Membership struct {
	UserID        int             `json:"user_id"`
	LifetimeSpend decimal.Decimal `json:"lifetime_spend"`
	Tier          Tier            `json:"membership_tier"`
	MemberSince   *time.Time      `json:"member_since"`
}

type MembershipChange struct {
	Before      Membership
	After       Membership
	TierChanged bool
}
