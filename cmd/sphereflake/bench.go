package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/xlab/closer"

	"sphereflake/internal/config"
	"sphereflake/internal/geom"
	"sphereflake/internal/profiling"
	"sphereflake/internal/session"
	"sphereflake/internal/stencil"
	"sphereflake/internal/view"
)

// headless is a backend that only counts draw calls.
type headless struct {
	draws [view.LODs]int
}

func (h *headless) SetColor(r, g, b, a float32) {}

func (h *headless) DrawSphere(lod view.LOD, placement mgl64.Mat4) {
	h.draws[lod]++
}

type benchFrame struct {
	stats    view.Stats
	produced int
	elapsed  time.Duration
}

func runBench(ctx *cli.Context) error {
	setupLogging(ctx)
	applySettings(ctx)

	st, err := stencil.ByName(ctx.GlobalString("stencil"))
	if err != nil {
		return err
	}
	frames := ctx.Int("frames")
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	width, height := config.GetWindowSize()
	s := session.New(&headless{}, width, height, st)
	closer.Bind(s.Close)

	results := benchmark(s, frames, ctx.Float64("orbit"))
	fmt.Fprint(ctx.App.Writer, benchTable(results, s.Fractal.Budget()))
	return nil
}

// benchmark traverses frames frames, orbiting by orbit degrees after each one.
func benchmark(s *session.Session, frames int, orbit float64) []benchFrame {
	out := make([]benchFrame, 0, frames)
	for i := 0; i < frames; i++ {
		profiling.ResetFrame()
		start := time.Now()
		stats := s.Frame()
		out = append(out, benchFrame{
			stats:    stats,
			produced: s.Fractal.Produced(),
			elapsed:  time.Since(start),
		})
		logger.Debugf("frame %d: %d expansions %s", i, profiling.Calls("model.Descendants"), profiling.TopN(2))
		s.Viewport.OrbitHorizontal(orbit, geom.Degrees)
	}
	return out
}

func benchTable(frames []benchFrame, budget int) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Processed", "Invisible", "Culled", "Occluded", "Low", "Medium", "High", "Highest", "Cached", "Time"})

	var total view.Stats
	var elapsed time.Duration
	for i, f := range frames {
		total.Add(f.stats)
		elapsed += f.elapsed
		row := []string{
			fmt.Sprint(i),
			fmt.Sprint(f.stats.Processed),
			fmt.Sprint(f.stats.Invisible),
			fmt.Sprint(f.stats.Culled),
			fmt.Sprint(f.stats.Occluded),
		}
		for _, q := range f.stats.Queued {
			row = append(row, fmt.Sprint(q))
		}
		row = append(row, fmt.Sprintf("%d/%d", f.produced, budget), fmtDuration(f.elapsed))
		table.Append(row)
	}

	footer := []string{
		"Total",
		fmt.Sprint(total.Processed),
		fmt.Sprint(total.Invisible),
		fmt.Sprint(total.Culled),
		fmt.Sprint(total.Occluded),
	}
	for _, q := range total.Queued {
		footer = append(footer, fmt.Sprint(q))
	}
	footer = append(footer, " ", fmtDuration(elapsed))
	table.SetFooter(footer)

	table.Render()
	return buf.String()
}

func fmtDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}
