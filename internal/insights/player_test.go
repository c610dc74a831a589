package insights

import (
	"testing"

	"cricket-insights-go/internal/types"
)

func TestPlayerCurrentForm(t *testing.T) {
	p := types.PlayerData{CurrentForm: []types.FormEntry{
		{Runs: 40, Balls: 30, IsOut: 1, OutType: "caught"},
		{Runs: 10, Balls: 12, IsOut: 1, OutType: "bowled"},
		{Runs: 70, Balls: 45, IsOut: 0},
		{Runs: 30, Balls: 25, IsOut: 1, OutType: "caught"},
	}}
	s, err := PlayerCurrentForm(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Innings != 4 || s.TotalRuns != 150 {
		t.Fatalf("expected 150 runs over 4 innings, got %d over %d", s.TotalRuns, s.Innings)
	}
	if s.Average != 50.0 {
		t.Fatalf("expected average 50, got %v", s.Average)
	}
	if s.TopScoreRuns != 70 || s.TopScoreBalls != 45 {
		t.Fatalf("expected top score 70(45), got %d(%d)", s.TopScoreRuns, s.TopScoreBalls)
	}
	if s.TopDismissal != "caught" {
		t.Fatalf("expected caught as the common dismissal, got %q", s.TopDismissal)
	}
}

func TestPlayerCurrentFormNeverOut(t *testing.T) {
	p := types.PlayerData{CurrentForm: []types.FormEntry{
		{Runs: 20, Balls: 10},
		{Runs: 15, Balls: 10},
	}}
	s, err := PlayerCurrentForm(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// with zero dismissals the average is the raw total, not a division
	if s.Average != 35.0 {
		t.Fatalf("expected average to fall back to 35, got %v", s.Average)
	}
	if s.TopDismissal != "" {
		t.Fatalf("expected no dismissal label, got %q", s.TopDismissal)
	}
}

func TestPlayerCurrentFormDismissalTie(t *testing.T) {
	p := types.PlayerData{CurrentForm: []types.FormEntry{
		{Runs: 5, Balls: 5, IsOut: 1, OutType: "lbw"},
		{Runs: 5, Balls: 5, IsOut: 1, OutType: "caught"},
	}}
	s, err := PlayerCurrentForm(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TopDismissal != "lbw" {
		t.Fatalf("expected the first-seen kind on a tie, got %q", s.TopDismissal)
	}
}

func TestPlayerPlayingStyleAccelerates(t *testing.T) {
	p := types.PlayerData{PlayingStyle: types.PlayingStyle{All: []types.StyleBall{
		{Runs: 1, SR: 100}, {Runs: 0, SR: 50}, {Runs: 1, SR: 66.7}, {Runs: 0, SR: 50}, {Runs: 1, SR: 60},
		{Runs: 4, SR: 83.3}, {Runs: 6, SR: 110}, {Runs: 2, SR: 115}, {Runs: 4, SR: 125}, {Runs: 1, SR: 120},
	}}}
	s, err := PlayerPlayingStyle(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalRuns != 20 || s.Balls != 10 {
		t.Fatalf("expected 20 runs off 10 balls, got %d off %d", s.TotalRuns, s.Balls)
	}
	if s.StrikeRate != 120 {
		t.Fatalf("expected the last entry's strike rate, got %v", s.StrikeRate)
	}
	if s.Intent != "accelerates later" {
		t.Fatalf("expected accelerates later, got %q", s.Intent)
	}
}

func TestPlayerPlayingStyleTieStartsStrong(t *testing.T) {
	// short window: first five and last five are the same three balls
	p := types.PlayerData{PlayingStyle: types.PlayingStyle{All: []types.StyleBall{
		{Runs: 2, SR: 200}, {Runs: 2, SR: 200}, {Runs: 2, SR: 200},
	}}}
	s, err := PlayerPlayingStyle(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Intent != "starts strong" {
		t.Fatalf("expected starts strong on a tie, got %q", s.Intent)
	}
}

func TestPlayerWagonWheel(t *testing.T) {
	zones := map[string]string{"1": "Mid-wicket", "2": "Cover"}
	p := types.PlayerData{WagonWheel: []types.WagonEntry{
		{Run: 4, WagonPart: "1", BowlingTypeName: "Fast"},
		{Run: 2, WagonPart: "2", BowlingTypeName: "Spin"},
		{Run: 6, WagonPart: "1", BowlingTypeName: "Fast"},
		{Run: 1, WagonPart: "", BowlingTypeName: "Spin"},
	}}
	s, err := PlayerWagonWheel(p, zones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Zone != "Mid-wicket" || s.ZoneRuns != 10 {
		t.Fatalf("expected Mid-wicket with 10 runs, got %s with %d", s.Zone, s.ZoneRuns)
	}
	if s.TopBowlingType != "Fast" {
		t.Fatalf("expected Fast bowling to top, got %q", s.TopBowlingType)
	}
}

func TestPlayerWagonWheelUnknownZone(t *testing.T) {
	p := types.PlayerData{WagonWheel: []types.WagonEntry{
		{Run: 4, WagonPart: "9", BowlingTypeName: "Fast"},
	}}
	s, err := PlayerWagonWheel(p, map[string]string{"1": "Mid-wicket"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Zone != "Region 9" {
		t.Fatalf("expected Region fallback, got %q", s.Zone)
	}
}

func TestPlayerWagonWheelNoZones(t *testing.T) {
	p := types.PlayerData{WagonWheel: []types.WagonEntry{
		{Run: 4, WagonPart: "", BowlingTypeName: "Fast"},
	}}
	if _, err := PlayerWagonWheel(p, nil); err == nil || !IsNoData(err) {
		t.Fatalf("expected no-data error when every zone is blank, got %v", err)
	}
}

func TestPlayerShotRunsTopThree(t *testing.T) {
	p := types.PlayerData{ShotRuns: []types.ShotRunsEntry{
		{ShotName: "Cut", Runs: 12},
		{ShotName: "Drive", Runs: 40},
		{ShotName: "Pull", Runs: 25},
		{ShotName: "Sweep", Runs: 8},
	}}
	s, err := PlayerShotRuns(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Top) != 3 {
		t.Fatalf("expected three shots, got %d", len(s.Top))
	}
	if s.Top[0].ShotName != "Drive" || s.Top[1].ShotName != "Pull" || s.Top[2].ShotName != "Cut" {
		t.Fatalf("unexpected order: %v", s.Top)
	}
	// the input slice must not be reordered
	if p.ShotRuns[0].ShotName != "Cut" {
		t.Fatalf("input was mutated: %v", p.ShotRuns)
	}
}

func TestPlayerShotOutsFirstMax(t *testing.T) {
	p := types.PlayerData{ShotOuts: []types.ShotOutsEntry{
		{ShotName: "Hook", Outs: 3},
		{ShotName: "Drive", Outs: 3},
		{ShotName: "Cut", Outs: 1},
	}}
	s, err := PlayerShotOuts(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Shot != "Hook" || s.Outs != 3 {
		t.Fatalf("expected Hook x3 on a tie, got %s x%d", s.Shot, s.Outs)
	}
}

func TestPlayerBattingPosition(t *testing.T) {
	p := types.PlayerData{
		BattingPosition: types.BattingPositions{All: []types.PositionEntry{
			{Position: 3, Runs: 120, Avg: 40, SR: 130.5, TotalMatch: 4},
			{Position: 4, Runs: 200, Avg: 50, SR: 125, TotalMatch: 5},
			{Position: 5, Runs: 200, Avg: 66, SR: 140, TotalMatch: 3},
		}},
		Statements: []types.Statement{
			{Text: "Preferable batting position of Asha", Value: 4},
			{Text: "2nd preferable batting position of Asha", Value: 3},
		},
	}
	s, err := PlayerBattingPosition(p, "Preferable batting position", "2nd preferable batting position")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Position != "4" || s.Runs != 200 {
		t.Fatalf("expected the first position to reach 200 runs, got %s with %d", s.Position, s.Runs)
	}
	if s.Average != 50 || s.StrikeRate != 125 || s.Innings != 5 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.Preferred != "4" || s.SecondPreferred != "3" {
		t.Fatalf("expected preferred 4 and second 3, got %q and %q", s.Preferred, s.SecondPreferred)
	}
}

func TestPlayerVsBowling(t *testing.T) {
	p := types.PlayerData{VsBowling: []types.BowlingTypeRow{
		{BowlingType: "Fast", Average: 22.5, StrikeRate: 110, Wicket: "40%"},
		{BowlingType: "Spin", Average: 55, StrikeRate: 95, Wicket: "15%"},
		{BowlingType: "Medium", Average: 30, StrikeRate: 120, Wicket: "45%"},
	}}
	s, err := PlayerVsBowling(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BestType != "Spin" || s.BestAverage != 55 {
		t.Fatalf("expected Spin as the best matchup, got %s (%v)", s.BestType, s.BestAverage)
	}
	if s.WeakType != "Medium" || s.WeakDismissalPct != 45 {
		t.Fatalf("expected Medium at 45%%, got %s at %v", s.WeakType, s.WeakDismissalPct)
	}
}

func TestPlayerVsBowlingJunkPercentage(t *testing.T) {
	p := types.PlayerData{VsBowling: []types.BowlingTypeRow{
		{BowlingType: "Fast", Average: 20, Wicket: "n/a"},
		{BowlingType: "Spin", Average: 25, Wicket: "10%"},
	}}
	s, err := PlayerVsBowling(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.WeakType != "Spin" {
		t.Fatalf("expected the junk percentage to read as zero, got weak type %q", s.WeakType)
	}
}

func TestPlayerRunTypes(t *testing.T) {
	p := types.PlayerData{RunTypes: []types.RunTypeRow{
		{BowlingTypeName: "Fast", TotalRuns: 80, DotBalls: 30, PerDotBalls: 42.5, BoundariesRun: 20},
		{BowlingTypeName: "Spin", TotalRuns: 60, DotBalls: 12, PerDotBalls: 18.0, BoundariesRun: 36},
		{BowlingTypeName: "", TotalRuns: 100, DotBalls: 99, BoundariesRun: 99},
		{BowlingTypeName: "Medium", TotalRuns: 0, DotBalls: 50, BoundariesRun: 50},
	}}
	s, err := PlayerRunTypes(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.DotType != "Fast" || s.DotRate != 42.5 {
		t.Fatalf("expected Fast to tie the batter down, got %s (%v)", s.DotType, s.DotRate)
	}
	if s.BoundaryType != "Spin" || s.BoundaryRuns != 36 {
		t.Fatalf("expected Spin for boundaries, got %s (%d)", s.BoundaryType, s.BoundaryRuns)
	}
	if s.BoundaryPct != 60 {
		t.Fatalf("expected 60%% boundary share, got %v", s.BoundaryPct)
	}
}

func TestPlayerRunTypesAllRowsInvalid(t *testing.T) {
	p := types.PlayerData{RunTypes: []types.RunTypeRow{
		{BowlingTypeName: "", TotalRuns: 10},
		{BowlingTypeName: "Fast", TotalRuns: 0},
	}}
	if _, err := PlayerRunTypes(p); err == nil || !IsNoData(err) {
		t.Fatalf("expected no-data error, got %v", err)
	}
}
