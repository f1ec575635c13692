package statistics

import (
	"fmt"
	"strconv"
	"time"
)

// yearlySpan años previos al actual incluidos en la serie anual.
const yearlySpan = 5

// Label un bucket de la secuencia canónica.
type Label struct {
	Key   string
	Label string
}

// Plan ventana de consulta, unidad de agrupación y secuencia canónica de un timeframe.
type Plan struct {
	Timeframe   Timeframe
	WindowStart time.Time
	WindowEnd   time.Time
	Unit        BucketUnit
	Sequence    []Label
}

type planner struct {
	window func(now time.Time) time.Time
	unit   BucketUnit
	labels func(now time.Time) []Label
}

var planners = map[Timeframe]planner{
	Weekly:  {window: weekStart, unit: UnitWeekday, labels: weekdayLabels},
	Monthly: {window: yearStart, unit: UnitMonth, labels: monthLabels},
	Yearly:  {window: yearlyStart, unit: UnitYear, labels: yearLabels},
}

// PlanBuckets calcula el plan de buckets para tf. now se recibe explícito para que
// el cálculo sea determinista; la ventana termina en now.
func PlanBuckets(tf Timeframe, now time.Time) (Plan, error) {
	p, ok := planners[tf]
	if !ok {
		return Plan{}, ErrUnsupportedTimeframe
	}
	return Plan{
		Timeframe:   tf,
		WindowStart: p.window(now),
		WindowEnd:   now,
		Unit:        p.unit,
		Sequence:    p.labels(now),
	}, nil
}

// weekStart lunes más reciente a las 00:00 UTC. Un domingo retrocede 6 días.
func weekStart(now time.Time) time.Time {
	u := now.UTC()
	back := (int(u.Weekday()) + 6) % 7
	return time.Date(u.Year(), u.Month(), u.Day()-back, 0, 0, 0, 0, time.UTC)
}

func yearStart(now time.Time) time.Time {
	return time.Date(now.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

func yearlyStart(now time.Time) time.Time {
	return time.Date(now.UTC().Year()-yearlySpan, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// weekdayLabels orden fijo domingo → sábado, sin importar que la ventana empiece en lunes.
func weekdayLabels(time.Time) []Label {
	out := make([]Label, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out = append(out, Label{Key: strconv.Itoa(int(d)), Label: d.String()})
	}
	return out
}

func monthLabels(time.Time) []Label {
	out := make([]Label, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, Label{Key: fmt.Sprintf("%02d", int(m)), Label: m.String()})
	}
	return out
}

func yearLabels(now time.Time) []Label {
	current := now.UTC().Year()
	out := make([]Label, 0, yearlySpan+1)
	for y := current - yearlySpan; y <= current; y++ {
		key := fmt.Sprintf("%04d", y)
		out = append(out, Label{Key: key, Label: key})
	}
	return out
}
