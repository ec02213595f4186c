package media

import "fmt"

// Kind tags the entity variant.
type Kind int

const (
	KindGeneric Kind = iota
	KindSong
	KindMovie
)

func (k Kind) String() string {
	switch k {
	case KindSong:
		return "song"
	case KindMovie:
		return "movie"
	default:
		return "media"
	}
}

// Placeholders used by the explicit constructors for fields that were not given.
const (
	NoTitle       = "No Title"
	NoAuthor      = "No Author"
	NoReleaseYear = "No Release Year"
	NoURL         = "No URL"
	NoAlbum       = "No Album"
	NoGenre       = "No Genre"
	NoRating      = "No Rating"
)

// Entity is implemented by *Generic, *Song and *Movie only.
type Entity interface {
	fmt.Stringer

	// Info returns the one-line listing description.
	Info() string
	// Length returns the playing time in the variant's unit, 0 when unknown.
	Length() int
	// Link returns the catalog page of the entity.
	Link() string
	Kind() Kind

	isEntity()
}

// Generic is any catalog item that is neither a song nor a movie.
type Generic struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ReleaseYear string `json:"releaseYear"`
	URL         string `json:"url"`
}

// NewGeneric builds a Generic from options; unset fields keep their placeholders.
func NewGeneric(opts ...Option) *Generic {
	f := newFields(opts)
	return &f.Generic
}

// GenericFromRecord resolves the shared fields of any variant from a catalog record.
func GenericFromRecord(r Record) (*Generic, error) {
	var (
		g   Generic
		err error
	)

	if g.Title, err = r.firstStr(keyTrackName, keyCollectionName); err != nil {
		return nil, err
	}

	if g.Author, err = r.str(keyArtistName); err != nil {
		return nil, err
	}

	if g.ReleaseYear, err = r.year(keyReleaseDate); err != nil {
		return nil, err
	}

	if g.URL, err = r.firstStr(keyTrackViewURL, keyCollectionURL); err != nil {
		return nil, err
	}

	return &g, nil
}

func (g *Generic) Info() string {
	return fmt.Sprintf("%s by %s (%s)", g.Title, g.Author, g.ReleaseYear)
}

func (g *Generic) Length() int {
	return 0
}

func (g *Generic) Link() string {
	return g.URL
}

func (g *Generic) Kind() Kind {
	return KindGeneric
}

func (g *Generic) String() string {
	return g.Info()
}

func (*Generic) isEntity() {}
