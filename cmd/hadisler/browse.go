package main

import "github.com/fwojciec/hadisler"

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	session := hadisler.NewSession(deps.Catalog, deps.Preferences, deps.TerminalRenderer)
	session.Start(deps.Ctx)

	if err := deps.Browse(deps.Ctx, session); err != nil {
		return err
	}
	return session.Save(deps.Ctx)
}
