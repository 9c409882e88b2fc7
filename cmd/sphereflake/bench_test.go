package main

import (
	"strings"
	"testing"
	"time"

	"sphereflake/internal/model"
	"sphereflake/internal/session"
	"sphereflake/internal/view"
)

func TestBenchmarkFrames(t *testing.T) {
	b := &headless{}
	s := session.New(b, 800, 600, nil, model.WithCacheBudget(2000))
	frames := benchmark(s, 3, 5)
	if len(frames) != 3 {
		t.Fatalf("frames: got %d", len(frames))
	}

	drawn := 0
	for i, f := range frames {
		if f.stats.Processed == 0 {
			t.Fatalf("frame %d processed nothing", i)
		}
		drawn += f.stats.Drawn()
		if i > 0 && f.produced < frames[i-1].produced {
			t.Fatalf("cache shrank: %d -> %d", frames[i-1].produced, f.produced)
		}
	}
	if total := b.draws[0] + b.draws[1] + b.draws[2] + b.draws[3]; total != drawn {
		t.Fatalf("backend saw %d draws, stats %d", total, drawn)
	}
	if s.Viewport.Eye().Len() < 11.999 || s.Viewport.Eye().Len() > 12.001 {
		t.Fatalf("orbit moved the eye off the sphere: %v", s.Viewport.Eye())
	}
}

func TestBenchTable(t *testing.T) {
	frames := []benchFrame{
		{stats: view.Stats{Processed: 10, Occluded: 1, Queued: [view.LODs]int{2, 0, 0, 3}}, produced: 9, elapsed: 1500 * time.Microsecond},
		{stats: view.Stats{Processed: 12, Culled: 2, Queued: [view.LODs]int{1, 1, 0, 3}}, produced: 18, elapsed: time.Millisecond},
	}
	out := benchTable(frames, 100)
	for _, want := range []string{"Processed", "Highest", "18/100", "1.50ms", "Total", "22", "2.50ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}
