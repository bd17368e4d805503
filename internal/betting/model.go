package betting

import "time"

// Status is the bet state machine: pending is the only non-terminal
// state, won and lost are terminal and never revisited.
type Status string

const (
	StatusPending Status = "pending"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Selection is one {match, market, option} leg of a bet.
type Selection struct {
	MatchID string `json:"matchId"`
	Market  string `json:"market"`
	Option  string `json:"option"`
}

// Bet is immutable after creation except for Status.
type Bet struct {
	ID              string      `json:"id"`
	Username        string      `json:"username"`
	Selections      []Selection `json:"betSelections"`
	Stake           float64     `json:"stake"`
	TotalOdds       float64     `json:"totalOdds"`
	PotentialPayout float64     `json:"potentialPayout"`
	Status          Status      `json:"status"`
	PlacedAt        time.Time   `json:"placedAt"`
}
