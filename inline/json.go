package inline

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/tunesearch-cli/tunesearch/media"
)

// Entry is one numbered listing line in JSON form.
type Entry struct {
	Number int    `json:"number" jsonschema:"minimum=1"`
	Group  string `json:"group" jsonschema:"enum=songs,enum=movies,enum=other media"`
	Kind   string `json:"kind" jsonschema:"enum=song,enum=movie,enum=media"`
	Info   string `json:"info"`
	// Length is in seconds for songs and minutes for movies.
	Length int    `json:"length"`
	URL    string `json:"url"`

	Title       string `json:"title"`
	Author      string `json:"author"`
	ReleaseYear string `json:"releaseYear"`

	Album  string `json:"album,omitempty"`
	Genre  string `json:"genre,omitempty"`
	Rating string `json:"rating,omitempty"`
}

type Output struct {
	Query  string   `json:"query"`
	Result []*Entry `json:"result"`
}

func asJson(results *media.Results, query string) ([]byte, error) {
	result := make([]*Entry, 0, results.Len())

	n := 0
	for _, group := range media.Groups() {
		for _, e := range results.Get(group) {
			n++
			result = append(result, newEntry(n, group, e))
		}
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: result,
	})
}

func newEntry(n int, group media.Group, e media.Entity) *Entry {
	entry := &Entry{
		Number: n,
		Group:  string(group),
		Kind:   e.Kind().String(),
		Info:   e.Info(),
		Length: e.Length(),
		URL:    e.Link(),
	}

	var g media.Generic
	switch e := e.(type) {
	case *media.Song:
		g = e.Generic
		entry.Album = e.Album
		entry.Genre = e.Genre
	case *media.Movie:
		g = e.Generic
		entry.Rating = e.Rating
	case *media.Generic:
		g = *e
	}

	entry.Title = g.Title
	entry.Author = g.Author
	entry.ReleaseYear = g.ReleaseYear
	return entry
}

func writeJson(out io.Writer, results *media.Results, query string) error {
	data, err := asJson(results, query)
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
