// Package inline provides the non-interactive, scriptable search mode.
package inline

import (
	"context"
	"io"

	"github.com/samber/mo"
	"github.com/tunesearch-cli/tunesearch/itunes"
	"github.com/tunesearch-cli/tunesearch/media"
)

// Searcher fetches catalog records for one search.
type Searcher interface {
	Search(ctx context.Context, params itunes.Params) ([]media.Record, error)
}

type Options struct {
	Out        io.Writer
	Searcher   Searcher
	Params     itunes.Params
	Classifier media.Classifier

	Json bool
	// Filter keeps entities whose description fuzzy-matches it.
	Filter mo.Option[string]
	// Open launches the entity with this number after the output is written.
	Open   mo.Option[int]
	Opener func(url string) error

	Heading func(string) string
	Width   int
}
