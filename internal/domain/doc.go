// Package domain содержит доменные типы Conveyor.
//
// Здесь определены:
//   - Pipeline, Step, Param, Value — каноническая модель пайплайна
//     после нормализации конфигурации
//   - Report, RunStatus — результат прогона
//
// Пакет не зависит от способа разбора конфигурации и способа запуска
// процессов: это чистые типы данных, общие для всех слоёв.
package domain
