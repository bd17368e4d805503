package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// BatchSize is the fixed size of every generated pool.
	BatchSize = 10

	oddsFloor = 1.5
	oddsCeil  = 4.5

	drawProbability         = 0.25
	bttsTrueProbability     = 0.6
	bttsFalseProbability    = 0.3
	doubleChanceProbability = 0.7
)

// Per-threshold divisors for the over-goals implied probabilities.
var overDivisors = map[MarketKind]float64{
	MarketOver05: 5,
	MarketOver15: 6,
	MarketOver25: 7,
}

var overThresholds = map[MarketKind]float64{
	MarketOver05: 0.5,
	MarketOver15: 1.5,
	MarketOver25: 2.5,
}

// Generator produces match batches from the team registry. Each match
// carries a simulated final score, concealed market results derived from
// that score, and invariant odds.
type Generator struct {
	teams []Team
	rnd   *rand.Rand
}

func NewGenerator(teams []Team) *Generator {
	return &Generator{
		teams: teams,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededGenerator pins the random source, for deterministic tests.
func NewSeededGenerator(teams []Team, seed int64) *Generator {
	return &Generator{
		teams: teams,
		rnd:   rand.New(rand.NewSource(seed)),
	}
}

// Batch draws BatchSize matches by rejection sampling: random team pairs,
// discarding self-pairs and pairs already in the batch regardless of
// order. Not every team is guaranteed an appearance.
func (g *Generator) Batch(now time.Time) ([]Match, error) {
	if len(g.teams) < 2 {
		return nil, fmt.Errorf("team registry needs at least 2 teams, have %d", len(g.teams))
	}

	matches := make([]Match, 0, BatchSize)
	used := make(map[string]bool)

	for len(matches) < BatchSize {
		home := g.teams[g.rnd.Intn(len(g.teams))]
		away := g.teams[g.rnd.Intn(len(g.teams))]
		if home.Name == away.Name {
			continue
		}
		key := pairKey(home.Name, away.Name)
		if used[key] {
			continue
		}
		used[key] = true

		matches = append(matches, g.buildMatch(home, away, now))
	}

	return matches, nil
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func (g *Generator) buildMatch(home, away Team, now time.Time) Match {
	homeGoals, awayGoals := g.simulateScore(home, away)

	homePossession := 30 + g.rnd.Intn(41)

	lower := homeGoals
	if awayGoals < lower {
		lower = awayGoals
	}

	m := Match{
		ID:          uuid.NewString(),
		Home:        home.Name,
		Away:        away.Name,
		EndTime:     now.Add(time.Duration(5+g.rnd.Intn(116)) * time.Minute),
		BettingOpen: true,

		HomeGoals:      homeGoals,
		AwayGoals:      awayGoals,
		FirstHalfGoals: g.rnd.Intn(lower + 1),

		Possession: map[string]string{
			home.Name: fmt.Sprintf("%d%%", homePossession),
			away.Name: fmt.Sprintf("%d%%", 100-homePossession),
		},
		Corners: map[string]int{
			home.Name: g.rnd.Intn(12),
			away.Name: g.rnd.Intn(12),
		},
	}

	m.Markets = buildMarkets(home, away, homeGoals, awayGoals)
	return m
}

// simulateScore draws each side's goal count from the high range when a
// coin flip weighted by that side's share of combined strength succeeds,
// otherwise from the low range.
func (g *Generator) simulateScore(home, away Team) (int, int) {
	total := home.Strength + away.Strength
	homeShare := home.Strength / total

	goals := func(share float64) int {
		if g.rnd.Float64() < share {
			return 2 + g.rnd.Intn(3) // 2..4
		}
		return g.rnd.Intn(3) // 0..2
	}

	return goals(homeShare), goals(1 - homeShare)
}

// buildMarkets prices the fixed template set from one simulated score.
func buildMarkets(home, away Team, homeGoals, awayGoals int) map[string]map[string]Outcome {
	total := home.Strength + away.Strength
	homeShare := home.Strength / total
	awayShare := away.Strength / total

	totalGoals := homeGoals + awayGoals
	btts := homeGoals > 0 && awayGoals > 0

	markets := make(map[string]map[string]Outcome, len(MarketKinds()))

	for _, kind := range MarketKinds() {
		switch kind {
		case MarketWinner:
			markets[string(kind)] = map[string]Outcome{
				home.Name:  {Result: homeGoals > awayGoals, Odds: price(homeShare)},
				away.Name:  {Result: awayGoals > homeGoals, Odds: price(awayShare)},
				OptionDraw: {Result: homeGoals == awayGoals, Odds: price(drawProbability)},
			}
		case MarketOver05, MarketOver15, MarketOver25:
			markets[string(kind)] = map[string]Outcome{
				OptionOver: {
					Result: float64(totalGoals) > overThresholds[kind],
					Odds:   price(float64(totalGoals) / overDivisors[kind]),
				},
			}
		case MarketBTTS:
			yesP, noP := bttsFalseProbability, bttsTrueProbability
			if btts {
				yesP, noP = bttsTrueProbability, bttsFalseProbability
			}
			markets[string(kind)] = map[string]Outcome{
				OptionYes: {Result: btts, Odds: price(yesP)},
				OptionNo:  {Result: !btts, Odds: price(noP)},
			}
		case MarketDoubleChance:
			markets[string(kind)] = map[string]Outcome{
				DoubleChanceOption(home.Name): {
					Result: homeGoals >= awayGoals,
					Odds:   price(doubleChanceProbability),
				},
				DoubleChanceOption(away.Name): {
					Result: awayGoals >= homeGoals,
					Odds:   price(doubleChanceProbability),
				},
			}
		}
	}

	return markets
}

// price converts an implied probability into clamped decimal odds. The
// floor caps the favorite's price, the ceiling bounds liability on long
// shots.
func price(impliedProbability float64) float64 {
	if impliedProbability <= 0 {
		return oddsCeil
	}
	odds := 1 / impliedProbability
	if odds < oddsFloor {
		return oddsFloor
	}
	if odds > oddsCeil {
		return oddsCeil
	}
	return odds
}
