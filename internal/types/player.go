package types

// PlayerData maps the named graph-data sections of a player insight record.
// Each section is consumed independently by exactly one summarizer; there are
// no cross-section invariants.
type PlayerData struct {
	CurrentForm     []FormEntry      `json:"current_form_graph_data"`
	PlayingStyle    PlayingStyle     `json:"playing_style_graph_data"`
	WagonWheel      []WagonEntry     `json:"wagon_wheel_graph_data"`
	ShotRuns        []ShotRunsEntry  `json:"shot_runs_graph_data"`
	ShotOuts        []ShotOutsEntry  `json:"shot_outs_graph_data"`
	BattingPosition BattingPositions `json:"batting_position_graph_data"`
	VsBowling       []BowlingTypeRow `json:"graph_data"`
	RunTypes        []RunTypeRow     `json:"types_of_runs_graph_data"`
	Statements      []Statement      `json:"statements"`
}

// FormEntry is one recent innings in the current-form section.
type FormEntry struct {
	Runs    int    `json:"runs"`
	Balls   int    `json:"balls"`
	IsOut   int    `json:"is_out"`
	OutType string `json:"out_type"`
}

// PlayingStyle wraps the per-ball entries in an "all" object upstream.
type PlayingStyle struct {
	All []StyleBall `json:"all"`
}

type StyleBall struct {
	Runs Num `json:"runs"`
	SR   Num `json:"SR"`
}

type WagonEntry struct {
	Run             Num    `json:"run"`
	WagonPart       string `json:"wagon_part"`
	BowlingTypeName string `json:"bowling_type_name"`
}

type ShotRunsEntry struct {
	ShotName string `json:"shot_name"`
	Runs     int    `json:"runs"`
}

type ShotOutsEntry struct {
	ShotName string `json:"shot_name"`
	Outs     int    `json:"outs"`
}

type BattingPositions struct {
	All []PositionEntry `json:"all"`
}

// PositionEntry is pre-aggregated upstream; avg and SR are reported verbatim.
type PositionEntry struct {
	Position   Num `json:"position"`
	Runs       int `json:"runs"`
	Avg        Num `json:"avg"`
	SR         Num `json:"SR"`
	TotalMatch int `json:"total_match"`
}

// BowlingTypeRow keeps Wicket as a raw string because the feed appends a
// trailing "%" to the dismissal percentage.
type BowlingTypeRow struct {
	BowlingType string `json:"bowling_type"`
	Average     Num    `json:"average"`
	StrikeRate  Num    `json:"strike_rate"`
	Wicket      string `json:"wicket"`
}

type RunTypeRow struct {
	BowlingTypeName string  `json:"bowling_type_name"`
	TotalRuns       int     `json:"total_runs"`
	DotBalls        int     `json:"dot_balls"`
	PerDotBalls     float64 `json:"per_dot_balls"`
	BoundariesRun   int     `json:"boundaries_run"`
}

// Statement is a free-text fact with a numeric value, e.g. a preferred
// batting position.
type Statement struct {
	Text  string `json:"text"`
	Value Num    `json:"value"`
}
