// Package engine нормализует конфигурацию пайплайна.
//
// Включает:
//   - parser.go — разбор YAML и разрешение двух схем шагов
//     в канонический domain.Pipeline
//   - args.go   — детерминированный маппинг параметров шага в argv
//
// Engine отвечает за понимание структуры конфигурации; запуском
// процессов занимается пакет runner.
package engine
