package fixtures

// DefaultTeams is the static team registry the generator draws from.
func DefaultTeams() []Team {
	return []Team{
		{Name: "Arsenal", Strength: 85},
		{Name: "Manchester City", Strength: 90},
		{Name: "Liverpool", Strength: 86},
		{Name: "Chelsea", Strength: 74},
		{Name: "Manchester United", Strength: 72},
		{Name: "Tottenham", Strength: 70},
		{Name: "Newcastle", Strength: 68},
		{Name: "Aston Villa", Strength: 66},
		{Name: "Brighton", Strength: 60},
		{Name: "West Ham", Strength: 55},
		{Name: "Brentford", Strength: 52},
		{Name: "Crystal Palace", Strength: 50},
		{Name: "Fulham", Strength: 48},
		{Name: "Wolves", Strength: 45},
		{Name: "Everton", Strength: 42},
		{Name: "Nottingham Forest", Strength: 40},
	}
}
