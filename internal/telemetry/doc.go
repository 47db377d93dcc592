// Package telemetry обеспечивает наблюдаемость Conveyor.
//
// Включает:
//   - logging.go — structured logging через slog (stderr)
//   - metrics.go — Prometheus-метрики прогонов и /metrics endpoint
//     для долгоживущего cron-режима
package telemetry
