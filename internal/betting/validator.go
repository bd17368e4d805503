package betting

import (
	"time"

	"betsim-platform/internal/fixtures"
)

// CloseWindow is how long before a match's end time betting closes.
const CloseWindow = 60 * time.Second

// ValidateSelections checks every leg against the current pool:
// referenced match exists, betting is open, and the close window has not
// been reached. Acceptance is all-or-nothing.
func ValidateSelections(pool map[string]fixtures.Match, selections []Selection, now time.Time) error {
	if len(selections) == 0 {
		return ErrNoSelections
	}

	for _, sel := range selections {
		m, ok := pool[sel.MatchID]
		if !ok {
			return ErrUnknownMatch
		}
		if !m.BettingOpen {
			return ErrMarketClosed
		}
		if m.EndTime.Sub(now) <= CloseWindow {
			return ErrBettingWindowClosed
		}
		if _, ok := m.Outcome(sel.Market, sel.Option); !ok {
			return ErrUnknownSelection
		}
	}

	return checkConflicts(pool, selections)
}

// checkConflicts applies the two documented exclusion pairs per match:
// a Draw outright alongside either outright winner, and a double-chance
// pick alongside the opposing team's outright winner. Other cross-market
// combinations are deliberately not checked.
func checkConflicts(pool map[string]fixtures.Match, selections []Selection) error {
	type picks struct {
		outright     map[string]bool
		doubleChance []string
	}

	byMatch := make(map[string]*picks)
	for _, sel := range selections {
		p, ok := byMatch[sel.MatchID]
		if !ok {
			p = &picks{outright: make(map[string]bool)}
			byMatch[sel.MatchID] = p
		}
		switch fixtures.MarketKind(sel.Market) {
		case fixtures.MarketWinner:
			p.outright[sel.Option] = true
		case fixtures.MarketDoubleChance:
			p.doubleChance = append(p.doubleChance, sel.Option)
		}
	}

	for matchID, p := range byMatch {
		m := pool[matchID]

		if p.outright[fixtures.OptionDraw] {
			if p.outright[m.Home] || p.outright[m.Away] {
				return ErrConflictingSelections
			}
		}

		for _, dc := range p.doubleChance {
			// "<team> or Draw" conflicts with the opposing team winning
			// outright.
			var opponent string
			switch dc {
			case fixtures.DoubleChanceOption(m.Home):
				opponent = m.Away
			case fixtures.DoubleChanceOption(m.Away):
				opponent = m.Home
			default:
				continue
			}
			if p.outright[opponent] {
				return ErrConflictingSelections
			}
		}
	}

	return nil
}

// PriceSelections multiplies the current odds of every leg.
func PriceSelections(pool map[string]fixtures.Match, selections []Selection) (float64, error) {
	totalOdds := 1.0
	for _, sel := range selections {
		m, ok := pool[sel.MatchID]
		if !ok {
			return 0, ErrUnknownMatch
		}
		out, ok := m.Outcome(sel.Market, sel.Option)
		if !ok {
			return 0, ErrUnknownSelection
		}
		totalOdds *= out.Odds
	}
	return totalOdds, nil
}
