package types

// MatchData is the ball-by-ball record uploaded alongside a chart image.
// Innings are kept in playing order; the narrative merge rules expect one
// or two of them.
type MatchData struct {
	Innings []Inning `json:"innings"`
}

type Inning struct {
	Team  string `json:"team"`
	Overs []Over `json:"overs"`
}

type Over struct {
	Deliveries []Delivery `json:"deliveries"`
}

type Delivery struct {
	Batter     string   `json:"batter"`
	NonStriker string   `json:"non_striker"`
	Runs       Runs     `json:"runs"`
	Wickets    []Wicket `json:"wickets,omitempty"`
}

// Runs: Total includes extras, Batter is runs off the bat (0..6).
type Runs struct {
	Total  int `json:"total"`
	Batter int `json:"batter"`
}

type Wicket struct {
	Kind      string `json:"kind"`
	PlayerOut string `json:"player_out"`
}
