package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-distributed-raytracer/pkg/renderer"
)

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

// frameStatsTable renders one row per worker and a footer with the totals
func frameStatsTable(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Rank", "Samples", "Primary", "Secondary", "Shadow", "Rays", "Intersections", "Render time"})
	for _, w := range stats.Workers {
		c := w.Render.Counters
		table.Append([]string{
			fmt.Sprintf("%d", w.Rank),
			w.Samples.String(),
			fmt.Sprintf("%d", c.PrimaryRays),
			fmt.Sprintf("%d", c.SecondaryRays()),
			fmt.Sprintf("%d", c.ShadowRays),
			fmt.Sprintf("%d", c.TotalRays()),
			fmt.Sprintf("%d", c.IntersectionTests),
			w.Duration.String(),
		})
	}

	totals := stats.Totals.Counters
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Totals.TotalSamples),
		fmt.Sprintf("%d", totals.PrimaryRays),
		fmt.Sprintf("%d", totals.SecondaryRays()),
		fmt.Sprintf("%d", totals.ShadowRays),
		fmt.Sprintf("%d", totals.TotalRays()),
		fmt.Sprintf("%d", totals.IntersectionTests),
		fmt.Sprintf("%s + %s reduce", stats.RenderDuration, stats.ReduceDuration),
	})

	table.Render()
	return buf.String()
}
