// Package processor is the dispatcher: OCR text in, narrative out. It wires
// the classifier to the aggregator families and the narrative generator, and
// turns every failure path into a user-visible notice.
package processor

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cricket-insights-go/internal/classifier"
	"cricket-insights-go/internal/config"
	"cricket-insights-go/internal/insights"
	"cricket-insights-go/internal/logger"
	"cricket-insights-go/internal/metrics"
	"cricket-insights-go/internal/narrative"
	"cricket-insights-go/internal/types"
)

// TextExtractor is the OCR collaborator. A failed extraction is treated as
// empty text, never propagated.
type TextExtractor interface {
	ExtractText(imageURL string) (string, error)
}

type Processor struct {
	cfg *config.Config
	ocr TextExtractor
}

func New(cfg *config.Config, ocr TextExtractor) *Processor {
	return &Processor{cfg: cfg, ocr: ocr}
}

// Request carries either pre-extracted OCR text or an image URL to extract
// from, plus the raw uploaded data record.
type Request struct {
	OCRText  string          `json:"ocr_text,omitempty"`
	ImageURL string          `json:"image_url,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Result is handed to the presentation layer. Exactly one of Narrative and
// Notice is meaningful; Notice covers classification misses, missing data
// and degenerate inputs.
type Result struct {
	Category   classifier.Category `json:"category"`
	GraphType  string              `json:"graph_type,omitempty"`
	Heading    string              `json:"heading"`
	Narrative  string              `json:"narrative,omitempty"`
	Notice     string              `json:"notice,omitempty"`
	DurationMs int64               `json:"duration_ms"`
}

// Explain runs the full classify-aggregate-narrate chain for one upload.
func (p *Processor) Explain(req Request) Result {
	log := logger.Component("processor")
	start := time.Now()

	text := req.OCRText
	if text == "" && req.ImageURL != "" {
		extracted, err := p.ocr.ExtractText(req.ImageURL)
		if err != nil {
			log.WithError(err).Warn("ocr extraction failed, treating text as empty")
		} else {
			text = extracted
		}
	}

	category := classifier.DetectCategory(text)
	metrics.CategoriesTotal.WithLabelValues(string(category)).Inc()

	res := Result{
		Category: category,
		Heading:  fmt.Sprintf("Detected Category: %s Insight", titleCase(string(category))),
	}
	switch category {
	case classifier.CategoryMatch:
		p.explainMatch(text, req.Data, &res)
	case classifier.CategoryPlayer:
		p.explainPlayer(text, req.Data, &res)
	case classifier.CategoryTeam:
		p.explainTeam(text, req.Data, &res)
	default:
		res.Notice = "could not detect the chart category from the image text"
	}

	if res.GraphType != "" {
		metrics.GraphTypesTotal.WithLabelValues(res.GraphType).Inc()
	}
	if res.Notice != "" {
		metrics.NoticesTotal.Inc()
	}
	res.DurationMs = time.Since(start).Milliseconds()
	log.WithField("category", category).WithField("graph_type", res.GraphType).Info("explain finished")
	return res
}

func (p *Processor) explainMatch(text string, data json.RawMessage, res *Result) {
	graphType := classifier.DetectMatchGraphType(text)
	if graphType == "" {
		res.Notice = "could not identify match graph type"
		return
	}
	res.GraphType = graphType

	var match types.MatchData
	if len(data) == 0 {
		res.Notice = "please upload a match data file to continue"
		return
	}
	if err := json.Unmarshal(data, &match); err != nil {
		res.Notice = "match data is not in the expected format"
		return
	}
	p.runMatch(graphType, match, res)
}

func (p *Processor) runMatch(graphType string, match types.MatchData, res *Result) {
	var err error
	switch graphType {
	case classifier.MatchManhattan:
		var teams []insights.ManhattanTeam
		if teams, err = insights.Manhattan(match); err == nil {
			res.Narrative = narrative.Manhattan(teams)
		}
	case classifier.MatchWorm:
		var w insights.WormSummary
		if w, err = insights.Worm(match); err == nil {
			res.Narrative = narrative.Worm(w)
		}
	case classifier.MatchRunRate:
		var teams []insights.RunRateTeam
		if teams, err = insights.RunRate(match); err == nil {
			res.Narrative = narrative.RunRate(teams)
		}
	case classifier.MatchWicketsPie:
		var w insights.WicketsPieSummary
		if w, err = insights.WicketsPie(match); err == nil {
			res.Narrative = narrative.WicketsPie(w)
		}
	case classifier.MatchPartnership:
		var pairs []insights.Partnership
		if pairs, err = insights.Partnerships(match); err == nil {
			res.Narrative = narrative.Partnerships(pairs)
		}
	case classifier.MatchTypesOfRuns:
		var teams []insights.RunTypeCounts
		if teams, err = insights.TypesOfRuns(match); err == nil {
			res.Narrative = narrative.TypesOfRuns(teams)
		}
	}
	if err != nil {
		res.Notice = err.Error()
	}
}

func (p *Processor) explainPlayer(text string, data json.RawMessage, res *Result) {
	graphType := classifier.DetectPlayerGraphType(text)
	if graphType == "" || graphType == classifier.PlayerShotAnalysisUnknown {
		res.Notice = "could not detect player graph type from the image text"
		return
	}
	res.GraphType = graphType

	raw := unwrap(data)
	if len(raw) == 0 {
		res.Notice = "please upload a player data file to continue"
		return
	}
	var player types.PlayerData
	if err := json.Unmarshal(raw, &player); err != nil {
		res.Notice = "player data is not in the expected format"
		return
	}

	nc := p.cfg.Narrative
	var err error
	switch graphType {
	case classifier.PlayerCurrentForm:
		var s insights.CurrentFormSummary
		if s, err = insights.PlayerCurrentForm(player); err == nil {
			res.Narrative = narrative.PlayerCurrentForm(s)
		}
	case classifier.PlayerPlayingStyle:
		var s insights.PlayingStyleSummary
		if s, err = insights.PlayerPlayingStyle(player); err == nil {
			res.Narrative = narrative.PlayerPlayingStyle(s)
		}
	case classifier.PlayerWagonWheel:
		var s insights.WagonWheelSummary
		if s, err = insights.PlayerWagonWheel(player, nc.WagonZones); err == nil {
			res.Narrative = narrative.PlayerWagonWheel(s)
		}
	case classifier.PlayerShotAnalysisRuns:
		var s insights.ShotRunsSummary
		if s, err = insights.PlayerShotRuns(player); err == nil {
			res.Narrative = narrative.PlayerShotRuns(s)
		}
	case classifier.PlayerShotAnalysisOuts:
		var s insights.ShotOutsSummary
		if s, err = insights.PlayerShotOuts(player); err == nil {
			res.Narrative = narrative.PlayerShotOuts(s)
		}
	case classifier.PlayerPosition:
		var s insights.BattingPositionSummary
		if s, err = insights.PlayerBattingPosition(player, nc.PreferredPosLabel, nc.SecondPrefPosLabel); err == nil {
			res.Narrative = narrative.PlayerBattingPosition(s)
		}
	case classifier.PlayerVsBowling:
		var s insights.VsBowlingSummary
		if s, err = insights.PlayerVsBowling(player); err == nil {
			res.Narrative = narrative.PlayerVsBowling(s)
		}
	case classifier.PlayerRunTypes:
		var s insights.RunTypesSummary
		if s, err = insights.PlayerRunTypes(player); err == nil {
			res.Narrative = narrative.PlayerRunTypes(s)
		}
	}
	if err != nil {
		res.Notice = err.Error()
	}
}

func (p *Processor) explainTeam(text string, data json.RawMessage, res *Result) {
	graphType := classifier.DetectTeamGraphType(text)
	if graphType == "" {
		res.Notice = "could not detect team graph type from the image text"
		return
	}
	res.GraphType = graphType

	raw := unwrap(data)
	if len(raw) == 0 {
		res.Notice = "please upload a team data file to continue"
		return
	}
	var team types.TeamData
	if err := json.Unmarshal(raw, &team); err != nil {
		res.Notice = "team data is not in the expected format"
		return
	}

	var err error
	switch graphType {
	case classifier.TeamCurrentForm:
		var s insights.TeamFormSummary
		if s, err = insights.TeamCurrentForm(team); err == nil {
			res.Narrative = narrative.TeamCurrentForm(s)
		}
	case classifier.TeamTossInsights:
		var s insights.TossSummary
		if s, err = insights.TeamTossInsights(team); err == nil {
			res.Narrative = narrative.TeamTossInsights(s)
		}
	}
	if err != nil {
		res.Notice = err.Error()
	}
}

// DemoMatch runs every match summarizer against one preloaded record, for
// the demo endpoint.
func (p *Processor) DemoMatch(match types.MatchData) []Result {
	graphTypes := []string{
		classifier.MatchManhattan,
		classifier.MatchWorm,
		classifier.MatchRunRate,
		classifier.MatchWicketsPie,
		classifier.MatchPartnership,
		classifier.MatchTypesOfRuns,
	}
	out := make([]Result, 0, len(graphTypes))
	for _, gt := range graphTypes {
		res := Result{
			Category:  classifier.CategoryMatch,
			GraphType: gt,
			Heading:   "Detected Category: Match Insight",
		}
		p.runMatch(gt, match, &res)
		out = append(out, res)
	}
	return out
}

// unwrap peels the top-level {"data": ...} envelope player and team uploads
// arrive in; bare records pass through untouched.
func unwrap(data json.RawMessage) json.RawMessage {
	if len(data) == 0 {
		return data
	}
	var env types.DataEnvelope
	if err := json.Unmarshal(data, &env); err == nil && len(env.Data) > 0 {
		return env.Data
	}
	return data
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
