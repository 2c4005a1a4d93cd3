package app

import (
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeBuilderTable(w io.Writer, ws *Workspace) error {
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header("Builder", "Game ID", "Directory", "Movies", "Debug Flags")

	data := make([][]any, 0, ws.Builders.Len())
	for b := range ws.Builders.Walk() {
		target, _ := ws.Target(b.Name)
		data = append(data, []any{
			b.Name,
			target.GameID,
			target.Directory,
			strconv.Itoa(len(target.MovieNames)),
			target.DebugFlags,
		})
	}

	if err := table.Bulk(data); err != nil {
		return zerr.Wrap(err, "failed to format builder table")
	}
	return table.Render()
}

func writeResultTable(w io.Writer, results []domain.StepResult) error {
	if len(results) == 0 {
		return nil
	}

	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header("Builder", "Step", "Status", "Duration")

	data := make([][]any, len(results))
	for i, res := range results {
		data[i] = []any{
			res.Builder,
			res.Step,
			string(res.Status),
			res.Duration.Round(time.Millisecond).String(),
		}
	}

	if err := table.Bulk(data); err != nil {
		return zerr.Wrap(err, "failed to format result table")
	}
	return table.Render()
}
