package fixtures

import "time"

// Team is a registry entry. Strength is a relative weight, not normalized
// against the rest of the registry.
type Team struct {
	Name     string  `json:"name"`
	Strength float64 `json:"strength"`
}

// Outcome is one selectable option inside a market: a concealed truth
// value fixed at match creation and the price applied to a winning stake.
type Outcome struct {
	Result bool    `json:"result"`
	Odds   float64 `json:"odds"`
}

// MarketKind enumerates the fixed market template set.
type MarketKind string

const (
	MarketWinner       MarketKind = "match_winner"
	MarketOver05       MarketKind = "over_0.5_goals"
	MarketOver15       MarketKind = "over_1.5_goals"
	MarketOver25       MarketKind = "over_2.5_goals"
	MarketBTTS         MarketKind = "both_teams_to_score"
	MarketDoubleChance MarketKind = "double_chance"
)

func MarketKinds() []MarketKind {
	return []MarketKind{
		MarketWinner,
		MarketOver05,
		MarketOver15,
		MarketOver25,
		MarketBTTS,
		MarketDoubleChance,
	}
}

// Option names that are not team names.
const (
	OptionDraw = "Draw"
	OptionYes  = "Yes"
	OptionNo   = "No"
	OptionOver = "Over"
)

// DoubleChanceOption names the "<team> or Draw" selection.
func DoubleChanceOption(team string) string {
	return team + " or Draw"
}

// Match carries a pre-computed final score and fully priced markets. The
// outcome booleans are fixed at creation and merely concealed until
// EndTime passes; odds never move.
type Match struct {
	ID          string    `json:"matchId"`
	Home        string    `json:"home"`
	Away        string    `json:"away"`
	EndTime     time.Time `json:"endTime"`
	BettingOpen bool      `json:"bettingOpen"`

	HomeGoals      int `json:"homeGoals"`
	AwayGoals      int `json:"awayGoals"`
	FirstHalfGoals int `json:"firstHalfGoals"`

	// Display-only stats, no betting semantics.
	Possession map[string]string `json:"possession"`
	Corners    map[string]int    `json:"corners"`

	Markets map[string]map[string]Outcome `json:"markets"`
}

// Ended reports whether the match result may be revealed.
func (m *Match) Ended(now time.Time) bool {
	return !now.Before(m.EndTime)
}

// Outcome looks up one market option.
func (m *Match) Outcome(market, option string) (Outcome, bool) {
	options, ok := m.Markets[market]
	if !ok {
		return Outcome{}, false
	}
	out, ok := options[option]
	return out, ok
}

// IndexByID maps a pool slice by match id.
func IndexByID(pool []Match) map[string]Match {
	idx := make(map[string]Match, len(pool))
	for _, m := range pool {
		idx[m.ID] = m
	}
	return idx
}
