package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/hadisler"
	"github.com/fwojciec/hadisler/html"
)

// Validate requires one of --topic or --search.
func (c *ExportCmd) Validate() error {
	if strings.TrimSpace(c.Topic) == "" && strings.TrimSpace(c.Search) == "" {
		return hadisler.Errorf(hadisler.EINVALID, "one of --topic or --search is required")
	}
	return nil
}

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	entries, title, err := c.entries(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hadisler.ErrorMessage(err))
		return err
	}

	fragment, err := deps.Renderer.Render(entries, hadisler.RenderOptions{
		Term:     strings.TrimSpace(c.Search),
		DarkMode: c.Dark,
		FontSize: hadisler.ClampFontSize(c.FontSize),
	})
	if err != nil {
		return fmt.Errorf("failed to render entries: %w", err)
	}

	var out string
	switch c.Format {
	case "markdown":
		if out, err = deps.Converter.Convert(fragment); err != nil {
			return fmt.Errorf("failed to convert to markdown: %w", err)
		}
	case "text":
		if out, err = deps.Extractor.ExtractText(fragment); err != nil {
			return fmt.Errorf("failed to extract text: %w", err)
		}
	default:
		if out, err = html.Document(title, fragment, c.Dark); err != nil {
			return err
		}
	}

	if c.Output == "" {
		fmt.Fprintln(deps.Stdout, strings.TrimRight(out, "\n"))
		return nil
	}

	if err := os.WriteFile(c.Output, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", c.Output, err)
	}
	fmt.Fprintf(deps.Stdout, "Exported %d entries to %s\n", len(entries), c.Output)
	return nil
}

func (c *ExportCmd) entries(deps *Dependencies) ([]*hadisler.Entry, string, error) {
	if c.Search != "" {
		entries, err := deps.Catalog.SearchEntries(deps.Ctx, c.Search)
		if err != nil {
			return nil, "", err
		}
		if len(entries) == 0 {
			return nil, "", hadisler.Errorf(hadisler.ENOTFOUND, "no entries match %q", c.Search)
		}
		return entries, "Arama: " + c.Search, nil
	}

	entries, err := deps.Catalog.FindEntriesByTopic(deps.Ctx, c.Topic)
	if err != nil {
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", hadisler.Errorf(hadisler.ENOTFOUND, "topic %q not found", c.Topic)
	}
	return entries, c.Topic, nil
}
