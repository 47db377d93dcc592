// Package repo хранит историю прогонов в PostgreSQL.
//
// История опциональна: включается флагом --record и переменной
// CONVEYOR_DB_URL. Без явного запроса отчёт о прогоне никуда
// не персистится.
package repo
