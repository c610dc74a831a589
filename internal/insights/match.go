package insights

import (
	"math"
	"sort"

	"cricket-insights-go/internal/types"
)

// Thresholds for the Manhattan over markers and the worm turning point.
const (
	highOverRuns     = 15
	lowOverRuns      = 5
	turningPointLead = 10
	steadySpread     = 2.0
)

func overRuns(inning types.Inning) []int {
	totals := make([]int, 0, len(inning.Overs))
	for _, over := range inning.Overs {
		runs := 0
		for _, d := range over.Deliveries {
			runs += d.Runs.Total
		}
		totals = append(totals, runs)
	}
	return totals
}

// ManhattanTeam carries one side's per-over totals and the derived markers.
// Over indices are 1-based throughout.
type ManhattanTeam struct {
	Team      string
	Overs     []int
	TopOver   int
	TopRuns   int
	HighOvers []int
	LowOvers  []int
}

// Manhattan reduces each innings to per-over totals and marks the top over
// (first maximum wins), the big overs (>= 15) and the quiet overs (<= 5).
func Manhattan(m types.MatchData) ([]ManhattanTeam, error) {
	out := make([]ManhattanTeam, 0, len(m.Innings))
	for _, inning := range m.Innings {
		overs := overRuns(inning)
		if len(overs) == 0 {
			continue
		}
		t := ManhattanTeam{Team: inning.Team, Overs: overs}
		for i, r := range overs {
			if r >= highOverRuns {
				t.HighOvers = append(t.HighOvers, i+1)
			}
			if r <= lowOverRuns {
				t.LowOvers = append(t.LowOvers, i+1)
			}
			if i == 0 || r > t.TopRuns {
				t.TopOver = i + 1
				t.TopRuns = r
			}
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, noData("no innings found in the match data")
	}
	return out, nil
}

// WormSummary compares two cumulative scoring curves.
type WormSummary struct {
	Team1        string
	Team2        string
	TurningPoint int // 1-based over, 0 when the lead never exceeded 10
	Winner       string
}

// Worm needs exactly two innings. The turning point is the first over where
// team 1's cumulative total leads team 2's by more than 10; the winner is
// whoever finishes with the higher cumulative total (team 2 on a tie).
func Worm(m types.MatchData) (WormSummary, error) {
	if len(m.Innings) != 2 {
		return WormSummary{}, noData("expected two teams in the match data")
	}
	cum1 := cumulative(overRuns(m.Innings[0]))
	cum2 := cumulative(overRuns(m.Innings[1]))
	if len(cum1) == 0 || len(cum2) == 0 {
		return WormSummary{}, noData("no overs found in the match data")
	}

	w := WormSummary{Team1: m.Innings[0].Team, Team2: m.Innings[1].Team}
	n := len(cum1)
	if len(cum2) < n {
		n = len(cum2)
	}
	for i := 0; i < n; i++ {
		if cum1[i]-cum2[i] > turningPointLead {
			w.TurningPoint = i + 1
			break
		}
	}
	w.Winner = w.Team2
	if cum1[len(cum1)-1] > cum2[len(cum2)-1] {
		w.Winner = w.Team1
	}
	return w, nil
}

func cumulative(overs []int) []int {
	out := make([]int, len(overs))
	total := 0
	for i, r := range overs {
		total += r
		out[i] = total
	}
	return out
}

// RunRateTeam holds per-over run rates and their trend markers.
type RunRateTeam struct {
	Team     string
	Rates    []float64
	Trend    string // "steady" or "up-and-down"
	AvgRate  float64
	PeakOver int
	DipOver  int
}

// RunRate computes the cumulative rate after each over, rounded to two
// decimals. The trend is steady when the spread between the best and worst
// rate stays within 2 runs per over; peak and dip report the first over that
// reached the extreme.
func RunRate(m types.MatchData) ([]RunRateTeam, error) {
	out := make([]RunRateTeam, 0, len(m.Innings))
	for _, inning := range m.Innings {
		overs := overRuns(inning)
		if len(overs) == 0 {
			continue
		}
		t := RunRateTeam{Team: inning.Team}
		cumRuns := 0
		for i, r := range overs {
			cumRuns += r
			t.Rates = append(t.Rates, round2(float64(cumRuns)/float64(i+1)))
		}

		maxRate, minRate := t.Rates[0], t.Rates[0]
		t.PeakOver, t.DipOver = 1, 1
		sum := 0.0
		for i, rate := range t.Rates {
			sum += rate
			if rate > maxRate {
				maxRate = rate
				t.PeakOver = i + 1
			}
			if rate < minRate {
				minRate = rate
				t.DipOver = i + 1
			}
		}
		t.AvgRate = round2(sum / float64(len(t.Rates)))
		t.Trend = "steady"
		if maxRate-minRate > steadySpread {
			t.Trend = "up-and-down"
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, noData("no innings found in the match data")
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WicketsPieSummary counts dismissals by kind across the whole match.
type WicketsPieSummary struct {
	Total      int
	TopKind    string
	TopCount   int
	OtherKinds []string // every other kind, in first-seen order
}

func WicketsPie(m types.MatchData) (WicketsPieSummary, error) {
	counts := map[string]int{}
	var kinds []string // first-seen order
	for _, inning := range m.Innings {
		for _, over := range inning.Overs {
			for _, d := range over.Deliveries {
				for _, w := range d.Wickets {
					if _, seen := counts[w.Kind]; !seen {
						kinds = append(kinds, w.Kind)
					}
					counts[w.Kind]++
				}
			}
		}
	}
	if len(kinds) == 0 {
		return WicketsPieSummary{}, noData("no wickets found in the match data")
	}

	var s WicketsPieSummary
	for _, kind := range kinds {
		s.Total += counts[kind]
		if counts[kind] > s.TopCount {
			s.TopKind = kind
			s.TopCount = counts[kind]
		}
	}
	for _, kind := range kinds {
		if kind != s.TopKind {
			s.OtherKinds = append(s.OtherKinds, kind)
		}
	}
	return s, nil
}

// Partnership is an unordered batter pair and its combined runs. The pair
// keeps accumulating even after a dismissal splits it up; see DESIGN.md.
type Partnership struct {
	Batter1 string
	Batter2 string
	Runs    int
}

// Partnerships returns the top three pairs by total runs, descending. Pair
// keys are order-independent: (A,B) and (B,A) accumulate together.
func Partnerships(m types.MatchData) ([]Partnership, error) {
	totals := map[string]int{}
	var order []string
	pairs := map[string]Partnership{}
	for _, inning := range m.Innings {
		for _, over := range inning.Overs {
			for _, d := range over.Deliveries {
				a, b := d.Batter, d.NonStriker
				if a > b {
					a, b = b, a
				}
				key := a + "|" + b
				if _, seen := totals[key]; !seen {
					order = append(order, key)
					pairs[key] = Partnership{Batter1: a, Batter2: b}
				}
				totals[key] += d.Runs.Total
			}
		}
	}
	if len(order) == 0 {
		return nil, noData("no partnerships found in the match data")
	}

	out := make([]Partnership, 0, len(order))
	for _, key := range order {
		p := pairs[key]
		p.Runs = totals[key]
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Runs > out[j].Runs })
	if len(out) > 3 {
		out = out[:3]
	}
	return out, nil
}

// RunTypeCounts buckets a team's scoring deliveries by runs off the bat.
// Fives are counted but the narrative never mentions them.
type RunTypeCounts struct {
	Team    string
	Singles int
	Doubles int
	Triples int
	Fours   int
	Fives   int
	Sixes   int
}

func TypesOfRuns(m types.MatchData) ([]RunTypeCounts, error) {
	if len(m.Innings) == 0 {
		return nil, noData("no innings found in the match data")
	}
	out := make([]RunTypeCounts, 0, len(m.Innings))
	for _, inning := range m.Innings {
		t := RunTypeCounts{Team: inning.Team}
		for _, over := range inning.Overs {
			for _, d := range over.Deliveries {
				switch d.Runs.Batter {
				case 1:
					t.Singles++
				case 2:
					t.Doubles++
				case 3:
					t.Triples++
				case 4:
					t.Fours++
				case 5:
					t.Fives++
				case 6:
					t.Sixes++
				}
			}
		}
		out = append(out, t)
	}
	return out, nil
}
