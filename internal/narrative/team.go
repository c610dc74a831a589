package narrative

import (
	"fmt"

	"cricket-insights-go/internal/insights"
)

func TeamCurrentForm(s insights.TeamFormSummary) string {
	out := fmt.Sprintf(
		"**%s** has played their last **%d matches** with **%d wins**, **%d losses**, and **%d abandoned**.\n\n",
		s.TeamName, s.Played, s.Wins, s.Losses, s.Abandoned)

	switch {
	case s.Wins > s.Losses:
		out += "They've had a strong recent run, dominating most opponents."
	case s.Losses > s.Wins:
		out += "They've been struggling lately with more losses than wins."
	default:
		out += "Their form has been balanced, with mixed outcomes."
	}

	if s.BiggestWin != "" {
		out += fmt.Sprintf("\n\nBiggest win: **%s**.", s.BiggestWin)
	}
	return out
}

func TeamTossInsights(s insights.TossSummary) string {
	out := fmt.Sprintf(
		"**%s** has won the toss **%d** times and lost it **%d** times in their last few matches.\n\n"+
			"When winning the toss, they chose to **bat first %d times** (won %d), and **field first %d times** (won %d).\n\n",
		s.TeamName, s.WonToss, s.LostToss, s.BatFirst, s.WonBatFirst, s.FieldFirst, s.WonFieldFirst)

	switch {
	case s.WonBatFirst > s.WonFieldFirst:
		out += "They have clearly performed better when batting first after winning the toss."
	case s.WonFieldFirst > s.WonBatFirst:
		out += "They've had better luck chasing after winning the toss."
	default:
		out += "Their toss outcomes show no strong preference between batting or fielding first."
	}
	return out
}
