package main

import (
	"fmt"

	"github.com/fwojciec/hadisler"
)

// Run executes the chapters command.
func (c *ChaptersCmd) Run(deps *Dependencies) error {
	chapters, err := deps.Catalog.ListChapters(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hadisler.ErrorMessage(err))
		return err
	}

	if len(chapters) == 0 {
		fmt.Fprintln(deps.Stdout, "No chapters found.")
		return nil
	}

	for _, ch := range chapters {
		fmt.Fprintln(deps.Stdout, ch)
	}
	return nil
}

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	topics, err := deps.Catalog.ListTopics(deps.Ctx, c.Chapter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hadisler.ErrorMessage(err))
		return err
	}

	if len(topics) == 0 {
		fmt.Fprintf(deps.Stderr, "error: chapter %q not found. Use 'hadisler chapters' to see available chapters.\n", c.Chapter)
		return hadisler.Errorf(hadisler.ENOTFOUND, "chapter %q not found", c.Chapter)
	}

	for _, t := range topics {
		fmt.Fprintln(deps.Stdout, t)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entries, err := deps.Catalog.FindEntriesByTopic(deps.Ctx, c.Topic)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hadisler.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stderr, "error: topic %q not found. Use 'hadisler topics <chapter>' to see available topics.\n", c.Topic)
		return hadisler.Errorf(hadisler.ENOTFOUND, "topic %q not found", c.Topic)
	}

	fmt.Fprintln(deps.Stdout, hadisler.FormatEntries(entries))
	return nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	entries, err := deps.Catalog.SearchEntries(deps.Ctx, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hadisler.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "No entries match %q.\n", c.Term)
		return nil
	}

	fmt.Fprintln(deps.Stdout, hadisler.FormatEntries(entries))
	return nil
}
