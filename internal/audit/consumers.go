package audit

import (
	"fmt"

	"betsim-platform/internal/betting"
	"betsim-platform/internal/event"
)

// RegisterConsumers records account-affecting events on the audit trail.
func RegisterConsumers(bus *event.Bus, svc *Service) {
	bus.Subscribe(event.EventBetPlaced, func(payload interface{}) {
		if bet, ok := payload.(betting.Bet); ok {
			svc.Log(bet.Username, "bet_placed",
				fmt.Sprintf("bet=%s stake=%.2f odds=%.2f", bet.ID, bet.Stake, bet.TotalOdds))
		}
	})

	bus.Subscribe(event.EventBetWon, func(payload interface{}) {
		if bet, ok := payload.(betting.Bet); ok {
			svc.Log(bet.Username, "bet_won",
				fmt.Sprintf("bet=%s payout=%.2f", bet.ID, bet.PotentialPayout))
		}
	})

	bus.Subscribe(event.EventBetLost, func(payload interface{}) {
		if bet, ok := payload.(betting.Bet); ok {
			svc.Log(bet.Username, "bet_lost", fmt.Sprintf("bet=%s", bet.ID))
		}
	})

	bus.Subscribe(event.EventUserRegistered, func(payload interface{}) {
		if username, ok := payload.(string); ok {
			svc.Log(username, "user_registered", "")
		}
	})
}
