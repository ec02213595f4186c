package media

import "fmt"

// Movie is a feature film. TrackLength is in milliseconds.
type Movie struct {
	Generic

	Rating      string `json:"rating"`
	TrackLength int64  `json:"trackLength"`
}

// NewMovie builds a Movie from options; unset fields keep their placeholders.
func NewMovie(opts ...Option) *Movie {
	f := newFields(opts)
	return &Movie{
		Generic:     f.Generic,
		Rating:      f.rating,
		TrackLength: f.trackLength,
	}
}

// MovieFromRecord parses a movie record. Content rating and track time are required.
func MovieFromRecord(r Record) (*Movie, error) {
	g, err := GenericFromRecord(r)
	if err != nil {
		return nil, err
	}

	m := &Movie{Generic: *g}

	if m.Rating, err = r.str(keyRating); err != nil {
		return nil, err
	}

	if m.TrackLength, err = r.millis(keyTrackTime); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Movie) Info() string {
	return fmt.Sprintf("%s [%s]", m.Generic.Info(), m.Rating)
}

// Length returns whole minutes.
func (m *Movie) Length() int {
	return int(m.TrackLength / 60000)
}

func (m *Movie) Kind() Kind {
	return KindMovie
}

func (m *Movie) String() string {
	return m.Info()
}
