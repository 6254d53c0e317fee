package main

import (
	"marketplace/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

// Generates typed query helpers for every persisted model into ./internal/infra/persistence/postgres/query.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(postgres.AllModels()...)

	g.Execute()
}
