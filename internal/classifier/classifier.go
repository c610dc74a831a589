package classifier

import (
	"regexp"
	"strings"
)

// Category is the top-level chart grouping detected from OCR text.
type Category string

const (
	CategoryMatch   Category = "match"
	CategoryPlayer  Category = "player"
	CategoryTeam    Category = "team"
	CategoryUnknown Category = "unknown"
)

// Match chart types.
const (
	MatchRunRate     = "Run Rate"
	MatchManhattan   = "Manhattan"
	MatchWorm        = "Worm"
	MatchWicketsPie  = "Wickets Pie"
	MatchPartnership = "Partnership"
	MatchTypesOfRuns = "Types of Runs"
)

// Player chart types.
const (
	PlayerRunTypes            = "player_run_types"
	PlayerShotAnalysisRuns    = "player_shot_analysis_runs"
	PlayerShotAnalysisOuts    = "player_shot_analysis_outs"
	PlayerShotAnalysisUnknown = "player_shot_analysis_unknown"
	PlayerCurrentForm         = "player_current_form"
	PlayerPlayingStyle        = "player_playing_style"
	PlayerWagonWheel          = "player_wagon_wheel"
	PlayerPosition            = "player_position"
	PlayerVsBowling           = "player_vs_bowling"
)

// Team chart types.
const (
	TeamCurrentForm  = "team_current_form"
	TeamTossInsights = "team_toss_insights"
)

// Normalize flattens OCR output into the single lower-cased line the keyword
// rules are written against.
func Normalize(raw string) string {
	text := strings.ToLower(raw)
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

type categoryRule struct {
	match func(text string) bool
	label Category
}

// categoryRules is evaluated top to bottom, first match wins. The order is
// the tie-break policy: singular "type of runs" outranks the plural, and the
// plural outranks everything below it.
var categoryRules = []categoryRule{
	{func(t string) bool { return strings.Contains(t, "type of runs") }, CategoryMatch},
	{func(t string) bool { return strings.Contains(t, "types of runs") }, CategoryPlayer},
	{func(t string) bool {
		return strings.Contains(t, "current form") &&
			(strings.Contains(t, "score") || strings.Contains(t, "out type"))
	}, CategoryPlayer},
	{func(t string) bool { return strings.Contains(t, "current form") }, CategoryTeam},
	{func(t string) bool {
		return containsAny(t, "manhattan", "worm", "run rate", "partnership", "wickets pie")
	}, CategoryMatch},
	{func(t string) bool {
		return containsAny(t, "playing style", "wagon wheel", "shots analysis", "batting position", "bowling type")
	}, CategoryPlayer},
	{func(t string) bool {
		return containsAny(t, "toss insights", "win toss", "bat first", "field first")
	}, CategoryTeam},
}

// DetectCategory maps free OCR text to a chart category. Empty or
// unrecognized text degrades to CategoryUnknown, never an error.
func DetectCategory(raw string) Category {
	text := Normalize(raw)
	if text == "" {
		return CategoryUnknown
	}
	for _, rule := range categoryRules {
		if rule.match(text) {
			return rule.label
		}
	}
	return CategoryUnknown
}

type keywordRule struct {
	keywords []string
	label    string
}

var matchRules = []keywordRule{
	{[]string{"run rate", "runrate", "rr", "rpo"}, MatchRunRate},
	{[]string{"manhattan", "runs per over", "run distribution", "per over runs"}, MatchManhattan},
	{[]string{"worm", "cumulative runs", "cumulative", "score progress"}, MatchWorm},
	{[]string{"wickets pie", "dismissals", "dismissal type", "fall of wicket"}, MatchWicketsPie},
	{[]string{"partnership"}, MatchPartnership},
	{[]string{"type of runs"}, MatchTypesOfRuns},
}

// DetectMatchGraphType picks the match chart subtype, or "" when no keyword
// matched.
func DetectMatchGraphType(raw string) string {
	text := Normalize(raw)
	for _, rule := range matchRules {
		if containsAny(text, rule.keywords...) {
			return rule.label
		}
	}
	return ""
}

// Whole-word matches only, so "outside" or "runsaved" don't count.
var (
	runsWordRe = regexp.MustCompile(`\bruns?\b`)
	outsWordRe = regexp.MustCompile(`\b(out|outs|wickets)\b`)
)

// DetectPlayerGraphType picks the player chart subtype, or "" when no
// keyword matched. Shot-analysis charts come in a runs and an outs variant
// distinguished by which word family dominates the axis labels.
func DetectPlayerGraphType(raw string) string {
	text := Normalize(raw)

	runsCount := len(runsWordRe.FindAllString(text, -1))
	outsCount := len(outsWordRe.FindAllString(text, -1))

	switch {
	case strings.Contains(text, "types of runs"):
		return PlayerRunTypes
	case strings.Contains(text, "shot") && strings.Contains(text, "analysis"):
		switch {
		case runsCount > outsCount:
			return PlayerShotAnalysisRuns
		case outsCount > runsCount:
			return PlayerShotAnalysisOuts
		default:
			return PlayerShotAnalysisUnknown
		}
	case strings.Contains(text, "current form"):
		return PlayerCurrentForm
	case strings.Contains(text, "playing style"):
		return PlayerPlayingStyle
	case strings.Contains(text, "wagon wheel"):
		return PlayerWagonWheel
	case strings.Contains(text, "batting position"):
		return PlayerPosition
	case strings.Contains(text, "bowling type"):
		return PlayerVsBowling
	}
	return ""
}

// DetectTeamGraphType picks the team chart subtype, or "" when no keyword
// matched.
func DetectTeamGraphType(raw string) string {
	text := Normalize(raw)
	if strings.Contains(text, "current form") {
		return TeamCurrentForm
	}
	if containsAny(text, "toss insights", "win toss", "bat first", "field first") {
		return TeamTossInsights
	}
	return ""
}
