// Package migrations содержит SQL-миграции схемы базы данных.
// Файлы встраиваются в бинарник, чтобы миграции применялись из любого
// рабочего каталога.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
