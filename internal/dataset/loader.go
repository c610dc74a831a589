// Package dataset loads ball-by-ball match records from the files analysts
// actually have: the JSON export, or an Excel scoresheet with one delivery
// per row.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cricket-insights-go/internal/logger"
	"cricket-insights-go/internal/types"
)

// LoadMatch dispatches on file extension: .xlsx/.xlsm go through the
// scoresheet loader, anything else is treated as JSON.
func LoadMatch(path string) (types.MatchData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadMatchSheet(path)
	default:
		return LoadMatchJSON(path)
	}
}

func LoadMatchJSON(path string) (types.MatchData, error) {
	var m types.MatchData
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse match json: %w", err)
	}
	return m, nil
}

// LoadMatchSheet reads a one-delivery-per-row scoresheet. Columns are
// auto-detected by header heuristics; rows without a team or batter are
// skipped quietly. Rows are expected in bowling order.
func LoadMatchSheet(path string) (types.MatchData, error) {
	log := logger.Component("dataset").WithField("path", path)
	var m types.MatchData

	f, err := excelize.OpenFile(path)
	if err != nil {
		return m, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return m, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return m, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return m, fmt.Errorf("no data rows")
	}

	cols := detectColumns(rows[0])
	log.WithField("columns", fmt.Sprintf("%+v", cols)).Info("detected scoresheet columns")
	if cols.team == -1 || cols.over == -1 || cols.batter == -1 {
		return m, fmt.Errorf("scoresheet missing team, over or batter column")
	}

	type overKey struct {
		inning int
		over   int
	}
	inningIdx := map[string]int{}
	overIdx := map[overKey]int{}
	skipped := 0
	for i, r := range rows {
		if i == 0 {
			continue
		}
		team := cell(r, cols.team)
		batter := cell(r, cols.batter)
		if team == "" || batter == "" {
			skipped++
			continue
		}
		overNum, err := strconv.Atoi(cell(r, cols.over))
		if err != nil {
			skipped++
			continue
		}

		ii, ok := inningIdx[team]
		if !ok {
			ii = len(m.Innings)
			inningIdx[team] = ii
			m.Innings = append(m.Innings, types.Inning{Team: team})
		}
		oi, ok := overIdx[overKey{ii, overNum}]
		if !ok {
			oi = len(m.Innings[ii].Overs)
			overIdx[overKey{ii, overNum}] = oi
			m.Innings[ii].Overs = append(m.Innings[ii].Overs, types.Over{})
		}

		d := types.Delivery{
			Batter:     batter,
			NonStriker: cell(r, cols.nonStriker),
		}
		d.Runs.Total = atoiOr0(cell(r, cols.totalRuns))
		d.Runs.Batter = atoiOr0(cell(r, cols.batterRuns))
		if kind := cell(r, cols.wicketKind); kind != "" {
			d.Wickets = append(d.Wickets, types.Wicket{
				Kind:      kind,
				PlayerOut: cell(r, cols.playerOut),
			})
		}
		m.Innings[ii].Overs[oi].Deliveries = append(m.Innings[ii].Overs[oi].Deliveries, d)
	}
	if skipped > 0 {
		log.WithField("skipped_rows", skipped).Warn("skipped invalid scoresheet rows")
	}
	if len(m.Innings) == 0 {
		return m, fmt.Errorf("no valid deliveries in scoresheet")
	}
	return m, nil
}

type columns struct {
	team       int
	over       int
	batter     int
	nonStriker int
	totalRuns  int
	batterRuns int
	wicketKind int
	playerOut  int
}

func detectColumns(header []string) columns {
	c := columns{team: -1, over: -1, batter: -1, nonStriker: -1,
		totalRuns: -1, batterRuns: -1, wicketKind: -1, playerOut: -1}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case c.team == -1 && (strings.Contains(l, "team") || strings.Contains(l, "inning")):
			c.team = i
		case c.over == -1 && strings.Contains(l, "over"):
			c.over = i
		case c.nonStriker == -1 && strings.Contains(l, "non") && strings.Contains(l, "strik"):
			c.nonStriker = i
		case c.batterRuns == -1 && strings.Contains(l, "bat") && strings.Contains(l, "run"):
			c.batterRuns = i
		case c.batter == -1 && (strings.Contains(l, "batter") || strings.Contains(l, "batsman") || strings.Contains(l, "striker")):
			c.batter = i
		case c.totalRuns == -1 && strings.Contains(l, "run"):
			c.totalRuns = i
		case c.wicketKind == -1 && (strings.Contains(l, "wicket") || strings.Contains(l, "dismissal") || strings.Contains(l, "kind")):
			c.wicketKind = i
		case c.playerOut == -1 && strings.Contains(l, "out"):
			c.playerOut = i
		}
	}
	return c
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func atoiOr0(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
