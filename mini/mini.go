// Package mini implements the line-oriented interactive mode: search, browse the numbered
// listing, open an entry by its number.
package mini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/viper"
	"github.com/tunesearch-cli/tunesearch/icon"
	"github.com/tunesearch-cli/tunesearch/itunes"
	"github.com/tunesearch-cli/tunesearch/key"
	"github.com/tunesearch-cli/tunesearch/log"
	"github.com/tunesearch-cli/tunesearch/media"
	"github.com/tunesearch-cli/tunesearch/open"
	"github.com/tunesearch-cli/tunesearch/util"
)

// Searcher fetches catalog records for one search.
type Searcher interface {
	Search(ctx context.Context, params itunes.Params) ([]media.Record, error)
}

// Options configures Run. Zero fields fall back to the terminal and the configuration.
type Options struct {
	In  io.Reader
	Out io.Writer

	Searcher Searcher
	Open     func(url string) error

	// Heading decorates group names in the listing.
	Heading func(string) string
	// Width truncates listing lines when positive.
	Width int
}

type mini struct {
	out        io.Writer
	prompt     prompter
	searcher   Searcher
	open       func(string) error
	classifier media.Classifier
	printer    *media.Printer
	progress   bool

	session session
}

func newMini(options *Options) *mini {
	m := &mini{
		out:      options.Out,
		searcher: options.Searcher,
		open:     options.Open,
		classifier: media.Classifier{
			KeepUnrecognized: viper.GetBool(key.ClassifyKeepUnrecognized),
		},
	}

	if m.out == nil {
		m.out = os.Stdout
	}

	if options.In == nil && util.IsTerminal(os.Stdin) {
		m.prompt = &surveyPrompter{}
		m.progress = true
	} else {
		in := options.In
		if in == nil {
			in = os.Stdin
		}
		m.prompt = newLinePrompter(in, m.out)
	}

	if m.searcher == nil {
		m.searcher = itunes.NewFromConfig()
	}

	if m.open == nil {
		m.open = open.Browser(viper.GetString(key.BrowserApp))
	}

	m.printer = &media.Printer{Out: m.out, Heading: options.Heading, Width: options.Width}
	return m
}

// Run prompts until the user exits or input ends.
func Run(options *Options) error {
	return newMini(options).loop(context.Background())
}

func (m *mini) loop(ctx context.Context) error {
	for {
		input, err := m.prompt.ask(m.session.prompt())
		if errors.Is(err, io.EOF) || errors.Is(err, terminal.InterruptErr) {
			fmt.Fprintln(m.out, "Bye!")
			return nil
		}

		if err != nil {
			return err
		}

		switch d := m.session.decide(input); d.action {
		case actionExit:
			fmt.Fprintln(m.out, "Bye!")
			return nil
		case actionOpen:
			m.launch(d.url)
		case actionSearch:
			if err := m.search(ctx, d.term); err != nil {
				return err
			}
		}
	}
}

func (m *mini) launch(url string) {
	fmt.Fprintf(m.out, "\nLaunching\n%s\nin web browser...\n\n", url)

	if err := m.open(url); err != nil {
		log.Errorf("open %s: %v", url, err)
	}
}

// search replaces the session's index on success. A failed request keeps the previous one.
// Only output errors are returned.
func (m *mini) search(ctx context.Context, term string) error {
	erase := func() {}
	if m.progress {
		erase = util.PrintErasable(m.out, icon.Get(icon.Search)+" Searching..")
	}

	records, err := m.searcher.Search(ctx, itunes.ParamsFromConfig(term))
	erase()

	if err != nil {
		log.Error(err)
		fmt.Fprintf(m.out, "%s search failed: %v\n", icon.Get(icon.Fail), err)
		return nil
	}

	results, err := m.classifier.Classify(records)
	if err != nil {
		fmt.Fprintf(
			m.out,
			"%s skipped %s that could not be read\n",
			icon.Get(icon.Warn),
			util.Quantify(countErrors(err), "record", "records"),
		)
	}

	m.session.replace(media.NewIndex(results))
	return m.printer.Print(results)
}

func countErrors(err error) int {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}
