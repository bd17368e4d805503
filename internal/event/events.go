package event

const (
	EventBetPlaced       = "bet.placed"
	EventBetWon          = "bet.won"
	EventBetLost         = "bet.lost"
	EventPoolRegenerated = "pool.regenerated"
	EventUserRegistered  = "user.registered"
)
