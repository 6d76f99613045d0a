package forecast

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/swellgrid/swellgrid/internal/buoy"
	"github.com/swellgrid/swellgrid/internal/observability"
	"github.com/swellgrid/swellgrid/internal/units"
)

// BuildSeries partitions every spectral time step and assembles surf forecast
// records, fanning the independent steps out over a worker pool. Results come
// back in input order; steps whose derivation fails are dropped. A nil
// metrics sink disables instrumentation.
func BuildSeries(
	ctx context.Context,
	records []*buoy.ForecastSpectralRecord,
	conditions BeachConditions,
	workers int,
	metrics *observability.Metrics,
) []*SurfForecastRecord {
	if workers < 1 {
		workers = 1
	}

	results := make([]*SurfForecastRecord, len(records))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = buildStep(records[i], conditions, metrics)
			}
		}()
	}

	for i := range records {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return compactSeries(results)
		}
	}
	close(jobs)
	wg.Wait()

	return compactSeries(results)
}

func buildStep(record *buoy.ForecastSpectralRecord, conditions BeachConditions, metrics *observability.Metrics) *SurfForecastRecord {
	started := time.Now()

	summary, err := record.SpectralSwellData(units.ConventionFrom)
	if err != nil {
		log.Debug().Err(err).Time("step", record.Date).Msg("skipping spectral step")
		if metrics != nil {
			metrics.StepErrors.Inc()
		}
		return nil
	}

	result, err := NewSurfForecastRecord(record.Date, summary, conditions)
	if err != nil {
		log.Debug().Err(err).Time("step", record.Date).Msg("skipping breaker solution")
		if metrics != nil {
			metrics.StepErrors.Inc()
		}
		return nil
	}
	result.MergeWind(record.WindSpeed, record.WindDirection)

	if metrics != nil {
		metrics.StepsProcessed.Inc()
		metrics.PartitionsFound.Observe(float64(len(summary.Components)))
		metrics.StepDuration.Observe(time.Since(started).Seconds())
	}
	return result
}

func compactSeries(results []*SurfForecastRecord) []*SurfForecastRecord {
	series := make([]*SurfForecastRecord, 0, len(results))
	for _, r := range results {
		if r != nil {
			series = append(series, r)
		}
	}
	return series
}
