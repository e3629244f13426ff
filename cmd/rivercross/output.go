package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/rivercross/config"
	"github.com/katalvlaran/rivercross/river"
	"github.com/katalvlaran/rivercross/search"
)

// stateJSON is one path entry in JSON output.
type stateJSON struct {
	Step              int    `json:"step"`
	Load              string `json:"load,omitempty"`
	CannibalsLeft     int    `json:"cannibals_left"`
	MissionariesLeft  int    `json:"missionaries_left"`
	CannibalsRight    int    `json:"cannibals_right"`
	MissionariesRight int    `json:"missionaries_right"`
	Boat              string `json:"boat"`
}

// resultJSON is the JSON output document.
type resultJSON struct {
	RunID      string      `json:"run_id"`
	Status     string      `json:"status"`
	Iterations int         `json:"iterations"`
	Crossings  int         `json:"crossings"`
	Generated  int         `json:"generated"`
	Duplicates int         `json:"duplicates"`
	Invalid    int         `json:"invalid"`
	Expanded   int         `json:"expanded"`
	Path       []stateJSON `json:"path"`
}

func render(w io.Writer, format string, res search.Result) error {
	if format == config.FormatJSON {
		return renderJSON(w, res)
	}
	return renderText(w, res)
}

func renderText(w io.Writer, res search.Result) error {
	if !res.Solved() {
		_, err := fmt.Fprintf(w, "%s after %d iterations: no solution found\n", res.Status, res.Iterations)
		return err
	}
	if _, err := fmt.Fprintf(w, "solved in %d iterations, %d crossings\n", res.Iterations, res.Crossings()); err != nil {
		return err
	}
	for i, s := range res.Path {
		load := ""
		if i > 0 {
			load = loadBetween(res.Path[i-1], s)
		}
		if _, err := fmt.Fprintf(w, "%3d  %-5s  %s\n", i, load, s); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, res search.Result) error {
	doc := resultJSON{
		RunID:      res.RunID.String(),
		Status:     res.Status.String(),
		Iterations: res.Iterations,
		Crossings:  res.Crossings(),
		Generated:  res.Stats.Generated,
		Duplicates: res.Stats.Duplicates,
		Invalid:    res.Stats.Invalid,
		Expanded:   res.Stats.Expanded,
		Path:       make([]stateJSON, 0, len(res.Path)),
	}
	for i, s := range res.Path {
		entry := stateJSON{
			Step:              i,
			CannibalsLeft:     s.CannibalsLeft,
			MissionariesLeft:  s.MissionariesLeft,
			CannibalsRight:    s.CannibalsRight,
			MissionariesRight: s.MissionariesRight,
			Boat:              s.Boat.String(),
		}
		if i > 0 {
			entry.Load = loadBetween(res.Path[i-1], s)
		}
		doc.Path = append(doc.Path, entry)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func loadBetween(from, to river.State) string {
	if l, ok := river.LoadBetween(from, to); ok {
		return l.String()
	}
	return "?"
}
