package insights

import (
	"encoding/json"
	"testing"

	"cricket-insights-go/internal/types"
)

func TestTeamCurrentForm(t *testing.T) {
	graph, _ := json.Marshal([]types.TeamFormEntry{
		{TeamName: "Alpha XI", MatchResult: "Resulted", WonTeamID: 7, WinBy: "won by 25 runs"},
		{TeamName: "Alpha XI", MatchResult: "Resulted", WonTeamID: 9},
		{TeamName: "Alpha XI", MatchResult: "Abandoned"},
		{TeamName: "Alpha XI", MatchResult: "Resulted", WonTeamID: 7, WinBy: "won by 8 wickets with 14 balls remaining"},
	})
	s, err := TeamCurrentForm(types.TeamData{TeamID: 7, GraphData: graph})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TeamName != "Alpha XI" || s.Played != 4 {
		t.Fatalf("expected Alpha XI with 4 matches, got %s with %d", s.TeamName, s.Played)
	}
	if s.Wins != 2 || s.Losses != 1 || s.Abandoned != 1 {
		t.Fatalf("expected 2W 1L 1A, got %dW %dL %dA", s.Wins, s.Losses, s.Abandoned)
	}
	if s.BiggestWin != "won by 8 wickets with 14 balls remaining" {
		t.Fatalf("expected the longer margin text, got %q", s.BiggestWin)
	}
}

func TestTeamCurrentFormZeroTeamID(t *testing.T) {
	graph, _ := json.Marshal([]types.TeamFormEntry{
		{MatchResult: "resulted", WonTeamID: 0, WinBy: "won by 5 runs"},
	})
	s, err := TeamCurrentForm(types.TeamData{TeamID: 0, GraphData: graph})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// without a subject team id nothing can count as a win
	if s.Wins != 0 || s.Losses != 1 {
		t.Fatalf("expected 0W 1L, got %dW %dL", s.Wins, s.Losses)
	}
	if s.TeamName != "This team" {
		t.Fatalf("expected the default team name, got %q", s.TeamName)
	}
}

func TestTeamCurrentFormNoData(t *testing.T) {
	cases := []types.TeamData{
		{},
		{GraphData: json.RawMessage(`[]`)},
		{GraphData: json.RawMessage(`{"not":"an array"}`)},
	}
	for i, d := range cases {
		if _, err := TeamCurrentForm(d); err == nil || !IsNoData(err) {
			t.Fatalf("case %d: expected no-data error, got %v", i, err)
		}
	}
}

func TestTeamTossInsights(t *testing.T) {
	graph := json.RawMessage(`{"team_name":"Alpha XI","won_toss":6,"lost_toss":4,"bat_first":3,"field_first":3,"won_bat_first":2,"won_field_first":1}`)
	s, err := TeamTossInsights(types.TeamData{GraphData: graph})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TeamName != "Alpha XI" || s.WonToss != 6 || s.LostToss != 4 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.BatFirst != 3 || s.FieldFirst != 3 || s.WonBatFirst != 2 || s.WonFieldFirst != 1 {
		t.Fatalf("unexpected counters: %+v", s)
	}
}

func TestTeamTossInsightsEmptyCounters(t *testing.T) {
	if _, err := TeamTossInsights(types.TeamData{GraphData: json.RawMessage(`{}`)}); err == nil || !IsNoData(err) {
		t.Fatalf("expected no-data error for all-zero counters, got %v", err)
	}
}
