package mini

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/tunesearch-cli/tunesearch/media"
)

const (
	searchPrompt = "Enter a search term or exit: "
	selectPrompt = "Enter a number for more info, or another search term, or exit: "
)

var numberInput = regexp.MustCompile(`^\d+$`)

type action int

const (
	actionSearch action = iota
	actionOpen
	actionExit
)

type decision struct {
	action action
	url    string
	term   string
}

// session carries the index of the latest successful search between prompts.
type session struct {
	index mo.Option[*media.Index]
}

func (s *session) prompt() string {
	if s.index.IsPresent() {
		return selectPrompt
	}
	return searchPrompt
}

// replace discards the previous index entirely.
func (s *session) replace(index *media.Index) {
	s.index = mo.Some(index)
}

// decide maps raw input to an action. Anything that is neither a listed number nor
// "exit" is searched for literally, out of range numbers included.
func (s *session) decide(input string) decision {
	if url, ok := s.resolve(input).Get(); ok {
		return decision{action: actionOpen, url: url}
	}

	if strings.ToLower(strings.TrimSpace(input)) == "exit" {
		return decision{action: actionExit}
	}

	return decision{action: actionSearch, term: input}
}

func (s *session) resolve(input string) mo.Option[string] {
	index, ok := s.index.Get()
	if !ok || !numberInput.MatchString(input) {
		return mo.None[string]()
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return mo.None[string]()
	}

	return index.Lookup(n)
}
