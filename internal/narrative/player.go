package narrative

import (
	"fmt"
	"strings"

	"cricket-insights-go/internal/insights"
)

func PlayerCurrentForm(s insights.CurrentFormSummary) string {
	lines := []string{
		fmt.Sprintf("Over the last **%d innings**, the batsman scored **%d runs** at an average of **%.2f** and a strike rate of **%.2f**.",
			s.Innings, s.TotalRuns, s.Average, s.StrikeRate),
		fmt.Sprintf("Highest score was **%d (%d balls)**", s.TopScoreRuns, s.TopScoreBalls),
	}
	if s.TopDismissal != "" {
		lines = append(lines, fmt.Sprintf("and the most common dismissal was **%s**.", s.TopDismissal))
	}
	return strings.Join(lines, "\n")
}

func PlayerPlayingStyle(s insights.PlayingStyleSummary) string {
	return fmt.Sprintf(
		"The batsman has scored **%d runs in %d balls**, maintaining a strike rate of **%.2f**.\n\nBased on run trends, the player **%s**.",
		s.TotalRuns, s.Balls, s.StrikeRate, s.Intent)
}

func PlayerWagonWheel(s insights.WagonWheelSummary) string {
	return fmt.Sprintf(
		"The batsman has been most effective in the **%s** region, scoring **%d runs** there. "+
			"Placing a strong fielder in that zone could help restrict scoring. "+
			"They've also been particularly productive against **%s** bowlers, "+
			"so adjusting your attack strategy accordingly might reduce their impact.",
		s.Zone, s.ZoneRuns, s.TopBowlingType)
}

func PlayerShotRuns(s insights.ShotRunsSummary) string {
	if len(s.Top) == 0 {
		return ""
	}
	lines := []string{fmt.Sprintf("The batsman's most productive shot is **%s**, fetching **%d runs**.",
		s.Top[0].ShotName, s.Top[0].Runs)}
	for _, shot := range s.Top[1:] {
		lines = append(lines, fmt.Sprintf("They've also scored well with the **%s** (%d runs).",
			shot.ShotName, shot.Runs))
	}
	lines = append(lines, "These shots define the batsman's scoring style — protect those zones with deep fielders.")
	return strings.Join(lines, "\n")
}

func PlayerShotOuts(s insights.ShotOutsSummary) string {
	return fmt.Sprintf(
		"The batsman has been dismissed most often while playing the **%s**, getting out **%d times**.\n\n"+
			"Consider encouraging this shot with specific field placements or slower deliveries — it's their weak spot.",
		s.Shot, s.Outs)
}

func PlayerBattingPosition(s insights.BattingPositionSummary) string {
	out := fmt.Sprintf(
		"The batsman's most productive position is **#%s**, where they've scored **%d runs** at an average of **%.2f** and a strike rate of **%.2f** across **%d innings**.",
		s.Position, s.Runs, s.Average, s.StrikeRate, s.Innings)
	if s.Preferred != "" && s.SecondPreferred != "" {
		out += fmt.Sprintf(
			"\n\nAccording to data preference, position **#%s** is most suitable, followed by **#%s**. "+
				"These likely match the batsman's comfort and success rate.",
			s.Preferred, s.SecondPreferred)
	}
	return out
}

func PlayerVsBowling(s insights.VsBowlingSummary) string {
	return fmt.Sprintf(
		"The batsman performs best against **%s**, scoring an average of **%s** and a strike rate of **%s**.\n\n"+
			"On the other hand, they've struggled most against **%s**, where their dismissal rate is **%s%%** — "+
			"the highest among all bowling types.",
		s.BestType, fmtStat(s.BestAverage), fmtStat(s.BestStrikeRate), s.WeakType, fmtStat(s.WeakDismissalPct))
}

func PlayerRunTypes(s insights.RunTypesSummary) string {
	return fmt.Sprintf(
		"The batsman plays the most dot balls against **%s** bowlers — with **%.1f%%** of deliveries not scoring.\n\n"+
			"However, they're highly aggressive against **%s**, scoring **%d out of %d runs** via boundaries — "+
			"that's **%.1f%%** of their output.\n\n"+
			"Consider using %s options early to build pressure, then rotate away from %s when they're set.",
		s.DotType, s.DotRate, s.BoundaryType, s.BoundaryRuns, s.TotalRuns, s.BoundaryPct, s.DotType, s.BoundaryType)
}
