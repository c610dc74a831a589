package narrative

import (
	"fmt"
	"strings"

	"cricket-insights-go/internal/insights"
)

// Manhattan produces one sentence per team. With exactly two teams the
// sentences merge into a single comparison joined by ", Whereas ".
func Manhattan(teams []insights.ManhattanTeam) string {
	parts := make([]string, 0, len(teams))
	for _, t := range teams {
		s := fmt.Sprintf("**%s** had their highest scoring over in the %dth, smashing %d runs. ",
			t.Team, t.TopOver, t.TopRuns)
		if len(t.HighOvers) > 0 {
			s += fmt.Sprintf("They had big momentum shifts in overs %s. ", joinOvers(t.HighOvers))
		}
		if len(t.LowOvers) > 0 {
			s += fmt.Sprintf("However, they slowed down significantly in overs %s. ", joinOvers(t.LowOvers))
		}
		parts = append(parts, s)
	}
	if len(parts) == 2 {
		return mergeWith(parts[0], parts[1], ", Whereas ")
	}
	return joinParts(parts)
}

func Worm(w insights.WormSummary) string {
	s := fmt.Sprintf("%s and %s were neck and neck for most of the innings. ", w.Team1, w.Team2)
	if w.TurningPoint > 0 {
		s += fmt.Sprintf("%s pulled ahead noticeably after over %d. ", w.Winner, w.TurningPoint)
	}
	s += fmt.Sprintf("%s maintained their lead and finished stronger.", w.Winner)
	return s
}

// RunRate merges two teams with ", and "; otherwise one sentence per team.
func RunRate(teams []insights.RunRateTeam) string {
	parts := make([]string, 0, len(teams))
	for _, t := range teams {
		parts = append(parts, fmt.Sprintf(
			"**%s** had a %s run rate overall. Their average run rate was %s, peaking in over %d and dropping in over %d.",
			t.Team, t.Trend, fmtRate(t.AvgRate), t.PeakOver, t.DipOver))
	}
	if len(parts) == 2 {
		return mergeWith(parts[0], parts[1], ", and ")
	}
	return joinParts(parts)
}

func WicketsPie(w insights.WicketsPieSummary) string {
	s := fmt.Sprintf("A total of %d wickets fell in this match. The most common dismissal was **%s** (%d times).",
		w.Total, w.TopKind, w.TopCount)
	if len(w.OtherKinds) > 0 {
		s += " Other types included: " + strings.Join(w.OtherKinds, ", ") + "."
	}
	return s
}

func Partnerships(pairs []insights.Partnership) string {
	if len(pairs) == 0 {
		return ""
	}
	main := pairs[0]
	s := fmt.Sprintf("The highest partnership was between **%s** and **%s**, who added **%d runs**.",
		main.Batter1, main.Batter2, main.Runs)
	for _, p := range pairs[1:] {
		s += fmt.Sprintf(" Another key stand was **%s** and **%s**, adding **%d runs**.",
			p.Batter1, p.Batter2, p.Runs)
	}
	return s
}

// TypesOfRuns merges two teams with ", and " and a closing period. Triples
// only appear when a team actually ran one; fives are never narrated.
func TypesOfRuns(teams []insights.RunTypeCounts) string {
	parts := make([]string, 0, len(teams))
	for _, t := range teams {
		s := fmt.Sprintf("**%s** scored %d singles, %d doubles", t.Team, t.Singles, t.Doubles)
		if t.Triples > 0 {
			s += fmt.Sprintf(", %d triples", t.Triples)
		}
		s += fmt.Sprintf(", hit %d fours and %d sixes", t.Fours, t.Sixes)
		parts = append(parts, s)
	}
	if len(parts) == 2 {
		return parts[0] + ", and " + parts[1] + "."
	}
	return joinParts(parts)
}

func joinParts(parts []string) string {
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, "\n")
}
