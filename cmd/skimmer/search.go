package main

import "github.com/fwojciec/skimmer"

// Run executes the search command. Search failures and empty result sets
// are reported as a JSON error envelope, not as a process failure.
func (c *SearchCmd) Run(deps *Dependencies) error {
	combined, err := deps.Combiner.SearchAndScrape(deps.Ctx, c.Query)
	if err != nil {
		return writeJSON(deps.Stdout, errorPayload{Error: skimmer.ErrorMessage(err)})
	}
	return writeJSON(deps.Stdout, combined)
}
