package types

import "encoding/json"

// TeamData holds a team insight record. graph_data is shape-shifting
// upstream: an array of past-match results for current form, a single
// counter object for toss insights. It stays raw until the detected graph
// type picks the decoding.
type TeamData struct {
	TeamID    int64           `json:"team_id"`
	GraphData json.RawMessage `json:"graph_data"`
}

type TeamFormEntry struct {
	TeamName    string `json:"team_name"`
	MatchResult string `json:"match_result"`
	WonTeamID   int64  `json:"won_team_id"`
	WinBy       string `json:"win_by"`
}

type TossCounters struct {
	TeamName      string `json:"team_name"`
	WonToss       int    `json:"won_toss"`
	LostToss      int    `json:"lost_toss"`
	BatFirst      int    `json:"bat_first"`
	FieldFirst    int    `json:"field_first"`
	WonBatFirst   int    `json:"won_bat_first"`
	WonFieldFirst int    `json:"won_field_first"`
}

// DataEnvelope is the top-level wrapper player and team uploads arrive in.
type DataEnvelope struct {
	Data json.RawMessage `json:"data"`
}
