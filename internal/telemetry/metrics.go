package telemetry

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Conveyor/internal/domain"
)

// Метрики прогонов. Экспортируются только в долгоживущем cron-режиме:
// у одноразового прогона нет endpoint'а, который можно было бы скрейпить.
var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conveyor_runs_total",
		Help: "Total pipeline runs by final status.",
	}, []string{"status"})

	stepsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conveyor_steps_completed_total",
		Help: "Total successfully completed steps across all runs.",
	})

	stepsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conveyor_steps_failed_total",
		Help: "Total failed steps across all runs.",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "conveyor_run_duration_seconds",
		Help:    "Wall-clock duration of pipeline runs.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 14),
	})
)

// ObserveRun учитывает завершённый прогон в метриках.
func ObserveRun(report *domain.Report) {
	runsTotal.WithLabelValues(string(report.Status)).Inc()
	stepsCompleted.Add(float64(report.CompletedSteps))
	if report.Status == domain.RunStatusFailedAtStep {
		stepsFailed.Inc()
	}
	runDuration.Observe(report.Duration().Seconds())
}

// ServeMetrics поднимает HTTP-сервер с /metrics и /healthz и держит его
// до отмены ctx. Возвращает ошибку запуска сервера; штатная остановка
// по ctx ошибкой не считается.
func ServeMetrics(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
