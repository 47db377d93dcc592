// Package cli реализует команды инструмента Conveyor.
//
// # Команды
//
//   - run      — последовательный прогон пайплайна (плюс режимы
//     --cron и --record)
//   - validate — разрешение конфигурации и печать плана без запуска
//   - list     — обзор конфигураций в каталоге
//   - history  — просмотр записанных прогонов
//
// # Output
//
// Форматирование вывода поддерживает два режима:
//   - таблицы (text/tabwriter) — по умолчанию
//   - JSON — с флагом --json
//
// Данные выводятся в stdout, сообщения — в stderr, поэтому вывод
// можно передавать по pipe: conveyor validate --json | jq .
//
// Каждая команда создаётся фабричной функцией (NewRunCmd и т.д.),
// принимающей outputFn — замыкание для ленивого создания Output
// после парсинга PersistentFlags.
package cli
