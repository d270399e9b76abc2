package main

import (
	"bytes"

	"github.com/fwojciec/skimmer"
)

// Run executes the raw-search command, passing the aggregator's response
// body through unmodified.
func (c *RawSearchCmd) Run(deps *Dependencies) error {
	data, err := deps.Searcher.Search(deps.Ctx, c.Query)
	if err != nil {
		return writeJSON(deps.Stdout, errorPayload{Error: skimmer.ErrorMessage(err)})
	}

	body := append(bytes.TrimSpace(data.Raw), '\n')
	_, err = deps.Stdout.Write(body)
	return err
}
