package main

import (
	"fmt"

	"github.com/fwojciec/hadisler/sqlite"
)

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(deps.DBPath)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", deps.DBPath, err)
	}
	defer db.Close()

	if err := db.CreateSchema(deps.Ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	deps.Logger.InfoContext(deps.Ctx, "schema created", "path", deps.DBPath)
	fmt.Fprintf(deps.Stdout, "Created catalog at %s\n", deps.DBPath)
	return nil
}
