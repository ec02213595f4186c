package media

// Option sets one field for the explicit constructors.
// Options naming a field the variant does not have are ignored.
type Option func(*fields)

type fields struct {
	Generic

	album       string
	genre       string
	rating      string
	trackLength int64
}

func newFields(opts []Option) *fields {
	f := &fields{
		Generic: Generic{
			Title:       NoTitle,
			Author:      NoAuthor,
			ReleaseYear: NoReleaseYear,
			URL:         NoURL,
		},
		album:  NoAlbum,
		genre:  NoGenre,
		rating: NoRating,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func WithTitle(title string) Option {
	return func(f *fields) { f.Title = title }
}

func WithAuthor(author string) Option {
	return func(f *fields) { f.Author = author }
}

func WithReleaseYear(year string) Option {
	return func(f *fields) { f.ReleaseYear = year }
}

func WithURL(url string) Option {
	return func(f *fields) { f.URL = url }
}

func WithAlbum(album string) Option {
	return func(f *fields) { f.album = album }
}

func WithGenre(genre string) Option {
	return func(f *fields) { f.genre = genre }
}

func WithRating(rating string) Option {
	return func(f *fields) { f.rating = rating }
}

// WithTrackLength sets the track length in milliseconds.
func WithTrackLength(ms int64) Option {
	return func(f *fields) { f.trackLength = ms }
}
