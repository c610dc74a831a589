package insights

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cricket-insights-go/internal/types"
)

// CurrentFormSummary aggregates a batter's recent innings.
type CurrentFormSummary struct {
	Innings       int
	TotalRuns     int
	Average       float64
	StrikeRate    float64
	TopScoreRuns  int
	TopScoreBalls int
	TopDismissal  string // "" when the batter was never dismissed
}

// PlayerCurrentForm computes average, strike rate, top score and the most
// frequent dismissal. With no dismissals the average falls back to the raw
// run total rather than dividing by zero; that is deliberate policy, not a
// bug workaround.
func PlayerCurrentForm(p types.PlayerData) (CurrentFormSummary, error) {
	matches := p.CurrentForm
	if len(matches) == 0 {
		return CurrentFormSummary{}, noData("no current form data found")
	}

	s := CurrentFormSummary{Innings: len(matches)}
	totalBalls := 0
	outs := 0
	var dismissals []string
	for i, m := range matches {
		s.TotalRuns += m.Runs
		totalBalls += m.Balls
		if m.IsOut == 1 {
			outs++
			if m.OutType != "" {
				dismissals = append(dismissals, m.OutType)
			}
		}
		if i == 0 || m.Runs > s.TopScoreRuns {
			s.TopScoreRuns = m.Runs
			s.TopScoreBalls = m.Balls
		}
	}

	s.Average = float64(s.TotalRuns)
	if outs > 0 {
		s.Average = float64(s.TotalRuns) / float64(outs)
	}
	if totalBalls > 0 {
		s.StrikeRate = float64(s.TotalRuns) / float64(totalBalls) * 100
	}
	s.TopDismissal = modeFirstSeen(dismissals)
	return s, nil
}

// modeFirstSeen returns the most frequent value; among ties, the first one
// encountered wins.
func modeFirstSeen(values []string) string {
	counts := map[string]int{}
	for _, v := range values {
		counts[v]++
	}
	best := ""
	bestCount := 0
	for _, v := range values {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// PlayingStyleSummary describes scoring tempo over a ball-by-ball window.
type PlayingStyleSummary struct {
	TotalRuns  int
	Balls      int
	StrikeRate float64 // taken verbatim from the last entry
	Intent     string  // "accelerates later" or "starts strong"
}

// PlayerPlayingStyle sums runs over the window and compares the first five
// balls with the last five. The accelerates label needs a strict majority
// late, so a tie reads as "starts strong".
func PlayerPlayingStyle(p types.PlayerData) (PlayingStyleSummary, error) {
	balls := p.PlayingStyle.All
	if len(balls) == 0 {
		return PlayingStyleSummary{}, noData("no playing style data found")
	}

	s := PlayingStyleSummary{Balls: len(balls)}
	for _, b := range balls {
		s.TotalRuns += int(b.Runs)
	}
	s.StrikeRate = float64(balls[len(balls)-1].SR)

	head := len(balls)
	if head > 5 {
		head = 5
	}
	first5, last5 := 0, 0
	for _, b := range balls[:head] {
		first5 += int(b.Runs)
	}
	for _, b := range balls[len(balls)-head:] {
		last5 += int(b.Runs)
	}
	s.Intent = "starts strong"
	if last5 > first5 {
		s.Intent = "accelerates later"
	}
	return s, nil
}

// WagonWheelSummary names the batter's primary scoring zone and the bowling
// type they cash in on most.
type WagonWheelSummary struct {
	Zone           string
	ZoneRuns       int
	TopBowlingType string
}

// PlayerWagonWheel aggregates runs per field zone and per bowling type.
// Zone codes resolve through the configured table; unknown codes render as
// "Region {code}". Entries without a zone still count toward bowling types.
func PlayerWagonWheel(p types.PlayerData, zones map[string]string) (WagonWheelSummary, error) {
	entries := p.WagonWheel
	if len(entries) == 0 {
		return WagonWheelSummary{}, noData("no wagon wheel data available")
	}

	zoneRuns := map[string]int{}
	var zoneOrder []string
	bowlerRuns := map[string]int{}
	var bowlerOrder []string
	for _, e := range entries {
		run := int(e.Run)
		if e.WagonPart != "" {
			if _, seen := zoneRuns[e.WagonPart]; !seen {
				zoneOrder = append(zoneOrder, e.WagonPart)
			}
			zoneRuns[e.WagonPart] += run
		}
		bt := e.BowlingTypeName
		if bt == "" {
			bt = "Unknown"
		}
		if _, seen := bowlerRuns[bt]; !seen {
			bowlerOrder = append(bowlerOrder, bt)
		}
		bowlerRuns[bt] += run
	}
	if len(zoneOrder) == 0 {
		return WagonWheelSummary{}, noData("no valid region data found")
	}

	bestZone := zoneOrder[0]
	for _, z := range zoneOrder[1:] {
		if zoneRuns[z] > zoneRuns[bestZone] {
			bestZone = z
		}
	}
	s := WagonWheelSummary{ZoneRuns: zoneRuns[bestZone]}
	if name, ok := zones[bestZone]; ok {
		s.Zone = name
	} else {
		s.Zone = fmt.Sprintf("Region %s", bestZone)
	}

	s.TopBowlingType = bowlerOrder[0]
	for _, bt := range bowlerOrder[1:] {
		if bowlerRuns[bt] > bowlerRuns[s.TopBowlingType] {
			s.TopBowlingType = bt
		}
	}
	return s, nil
}

// ShotRunsSummary lists the top scoring shots, best first.
type ShotRunsSummary struct {
	Top []types.ShotRunsEntry // up to three
}

func PlayerShotRuns(p types.PlayerData) (ShotRunsSummary, error) {
	if len(p.ShotRuns) == 0 {
		return ShotRunsSummary{}, noData("no shot analysis (runs) data found")
	}
	shots := make([]types.ShotRunsEntry, len(p.ShotRuns))
	copy(shots, p.ShotRuns)
	sort.SliceStable(shots, func(i, j int) bool { return shots[i].Runs > shots[j].Runs })
	if len(shots) > 3 {
		shots = shots[:3]
	}
	return ShotRunsSummary{Top: shots}, nil
}

// ShotOutsSummary is the single shot that costs the batter their wicket
// most often.
type ShotOutsSummary struct {
	Shot string
	Outs int
}

func PlayerShotOuts(p types.PlayerData) (ShotOutsSummary, error) {
	if len(p.ShotOuts) == 0 {
		return ShotOutsSummary{}, noData("no shot analysis (outs) data found")
	}
	best := p.ShotOuts[0]
	for _, s := range p.ShotOuts[1:] {
		if s.Outs > best.Outs {
			best = s
		}
	}
	return ShotOutsSummary{Shot: best.ShotName, Outs: best.Outs}, nil
}

// BattingPositionSummary reports the most productive batting position with
// its pre-aggregated stats, plus optional preferred positions looked up from
// the record's statements list.
type BattingPositionSummary struct {
	Position        string
	Runs            int
	Average         float64
	StrikeRate      float64
	Innings         int
	Preferred       string // "" when the statement is absent
	SecondPreferred string
}

// PlayerBattingPosition picks the position with the most runs (first maximum
// wins) and resolves the preferred-position statements by configured label
// prefix, so the lookup works for any player name the feed appends.
func PlayerBattingPosition(p types.PlayerData, prefLabel, secondLabel string) (BattingPositionSummary, error) {
	graph := p.BattingPosition.All
	if len(graph) == 0 {
		return BattingPositionSummary{}, noData("no batting position data found")
	}

	top := graph[0]
	for _, e := range graph[1:] {
		if e.Runs > top.Runs {
			top = e
		}
	}
	s := BattingPositionSummary{
		Position:   top.Position.String(),
		Runs:       top.Runs,
		Average:    float64(top.Avg),
		StrikeRate: float64(top.SR),
		Innings:    top.TotalMatch,
	}
	for _, st := range p.Statements {
		switch {
		case secondLabel != "" && strings.HasPrefix(st.Text, secondLabel):
			if s.SecondPreferred == "" {
				s.SecondPreferred = st.Value.String()
			}
		case prefLabel != "" && strings.HasPrefix(st.Text, prefLabel):
			if s.Preferred == "" {
				s.Preferred = st.Value.String()
			}
		}
	}
	return s, nil
}

// VsBowlingSummary pairs the bowling type the batter dominates with the one
// that dismisses them most. The two picks are independent; they can name the
// same type.
type VsBowlingSummary struct {
	BestType         string
	BestAverage      float64
	BestStrikeRate   float64
	WeakType         string
	WeakDismissalPct float64
}

func PlayerVsBowling(p types.PlayerData) (VsBowlingSummary, error) {
	rows := p.VsBowling
	if len(rows) == 0 {
		return VsBowlingSummary{}, noData("no data found for bowling type performance")
	}

	best := rows[0]
	weak := rows[0]
	weakPct := dismissalPct(rows[0].Wicket)
	for _, r := range rows[1:] {
		if float64(r.Average) > float64(best.Average) {
			best = r
		}
		if pct := dismissalPct(r.Wicket); pct > weakPct {
			weak = r
			weakPct = pct
		}
	}
	return VsBowlingSummary{
		BestType:         best.BowlingType,
		BestAverage:      float64(best.Average),
		BestStrikeRate:   float64(best.StrikeRate),
		WeakType:         weak.BowlingType,
		WeakDismissalPct: weakPct,
	}, nil
}

// dismissalPct parses percentage strings like "12.5%"; junk reads as 0.
func dismissalPct(raw string) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// RunTypesSummary contrasts the bowling type that ties the batter down with
// the one they attack.
type RunTypesSummary struct {
	DotType       string
	DotRate       float64
	BoundaryType  string
	BoundaryRuns  int
	TotalRuns     int
	BoundaryPct   float64
}

// PlayerRunTypes considers only rows with a named bowling type and positive
// total runs. Dot balls mark pressure, boundary runs mark aggression.
func PlayerRunTypes(p types.PlayerData) (RunTypesSummary, error) {
	var rows []types.RunTypeRow
	for _, r := range p.RunTypes {
		if r.BowlingTypeName != "" && r.TotalRuns > 0 {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return RunTypesSummary{}, noData("no types of runs data found")
	}

	dotty := rows[0]
	boundary := rows[0]
	for _, r := range rows[1:] {
		if r.DotBalls > dotty.DotBalls {
			dotty = r
		}
		if r.BoundariesRun > boundary.BoundariesRun {
			boundary = r
		}
	}
	s := RunTypesSummary{
		DotType:      dotty.BowlingTypeName,
		DotRate:      dotty.PerDotBalls,
		BoundaryType: boundary.BowlingTypeName,
		BoundaryRuns: boundary.BoundariesRun,
		TotalRuns:    boundary.TotalRuns,
	}
	if s.TotalRuns > 0 {
		s.BoundaryPct = float64(s.BoundaryRuns) / float64(s.TotalRuns) * 100
	}
	return s, nil
}
