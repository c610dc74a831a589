package insights

import (
	"encoding/json"
	"strings"

	"cricket-insights-go/internal/types"
)

// TeamFormSummary tallies a team's recent results.
type TeamFormSummary struct {
	TeamName   string
	Played     int
	Wins       int
	Losses     int
	Abandoned  int
	BiggestWin string // longest win-margin description, "" when winless
}

// TeamCurrentForm classifies each past match as a win, loss or abandonment
// by comparing the winning team id against the record's subject team id. The
// "biggest win" is the longest margin description by character length, a
// readability pick rather than a numeric comparison.
func TeamCurrentForm(d types.TeamData) (TeamFormSummary, error) {
	var matches []types.TeamFormEntry
	if len(d.GraphData) == 0 || json.Unmarshal(d.GraphData, &matches) != nil || len(matches) == 0 {
		return TeamFormSummary{}, noData("no match data available for team current form")
	}

	s := TeamFormSummary{TeamName: matches[0].TeamName, Played: len(matches)}
	if s.TeamName == "" {
		s.TeamName = "This team"
	}
	for _, m := range matches {
		switch strings.ToLower(m.MatchResult) {
		case "abandoned":
			s.Abandoned++
		case "resulted":
			if d.TeamID != 0 && m.WonTeamID == d.TeamID {
				s.Wins++
				if len(m.WinBy) > len(s.BiggestWin) {
					s.BiggestWin = m.WinBy
				}
			} else {
				s.Losses++
			}
		}
	}
	return s, nil
}

// TossSummary reads the six toss counters straight off the record.
type TossSummary struct {
	TeamName      string
	WonToss       int
	LostToss      int
	BatFirst      int
	FieldFirst    int
	WonBatFirst   int
	WonFieldFirst int
}

func TeamTossInsights(d types.TeamData) (TossSummary, error) {
	var c types.TossCounters
	if len(d.GraphData) == 0 || json.Unmarshal(d.GraphData, &c) != nil || c == (types.TossCounters{}) {
		return TossSummary{}, noData("no toss insights data found")
	}

	s := TossSummary{
		TeamName:      c.TeamName,
		WonToss:       c.WonToss,
		LostToss:      c.LostToss,
		BatFirst:      c.BatFirst,
		FieldFirst:    c.FieldFirst,
		WonBatFirst:   c.WonBatFirst,
		WonFieldFirst: c.WonFieldFirst,
	}
	if s.TeamName == "" {
		s.TeamName = "This team"
	}
	return s, nil
}
