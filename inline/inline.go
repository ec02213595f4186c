package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tunesearch-cli/tunesearch/icon"
	"github.com/tunesearch-cli/tunesearch/log"
	"github.com/tunesearch-cli/tunesearch/media"
	"github.com/tunesearch-cli/tunesearch/open"
	"github.com/tunesearch-cli/tunesearch/util"
)

// Run performs a single search and writes the listing, or its JSON form, to options.Out.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Opener == nil {
		options.Opener = open.Start
	}

	records, err := options.Searcher.Search(ctx, options.Params)
	if err != nil {
		return fmt.Errorf("search %q: %w", options.Params.Term, err)
	}

	results, err := options.Classifier.Classify(records)
	if err != nil {
		// bad records are already logged one by one
		log.Warn(err)
	}

	if filter, ok := options.Filter.Get(); ok && filter != "" {
		results = results.Filter(func(e media.Entity) bool {
			return fuzzy.MatchFold(filter, e.Info())
		})
	}

	if options.Json {
		err = writeJson(options.Out, results, options.Params.Term)
	} else {
		printer := media.Printer{Out: options.Out, Heading: options.Heading, Width: options.Width}
		err = printer.Print(results)
	}

	if err != nil {
		return err
	}

	n, ok := options.Open.Get()
	if !ok {
		return nil
	}

	index := media.NewIndex(results)
	url, ok := index.Lookup(n).Get()
	if !ok {
		return fmt.Errorf(
			"no entry numbered %d, the listing has %s",
			n,
			util.Quantify(index.Len(), "entry", "entries"),
		)
	}

	log.Infof("opening %s", url)
	if !options.Json {
		fmt.Fprintf(options.Out, "%s %s\n", icon.Get(icon.Link), url)
	}

	return options.Opener(url)
}
