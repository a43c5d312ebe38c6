// internal/game/economy.go
package game

// Economy is the player's currency. Spending is checked up front so the
// balance can never go negative; TotalEarned only ever grows and feeds the
// end-of-game summary.
type Economy struct {
	currency    int
	totalEarned int
}

func NewEconomy(start int) *Economy {
	return &Economy{currency: start, totalEarned: start}
}

func (e *Economy) Currency() int    { return e.currency }
func (e *Economy) TotalEarned() int { return e.totalEarned }

func (e *Economy) CanAfford(cost int) bool {
	return cost <= e.currency
}

func (e *Economy) Spend(cost int) error {
	if cost > e.currency {
		return ErrInsufficientFunds
	}
	e.currency -= cost
	return nil
}

func (e *Economy) Earn(amount int) {
	if amount <= 0 {
		return
	}
	e.currency += amount
	e.totalEarned += amount
}
