package media

import "fmt"

// Song is a music track. TrackLength is in milliseconds.
type Song struct {
	Generic

	Album       string `json:"album"`
	Genre       string `json:"genre"`
	TrackLength int64  `json:"trackLength"`
}

// NewSong builds a Song from options; unset fields keep their placeholders.
func NewSong(opts ...Option) *Song {
	f := newFields(opts)
	return &Song{
		Generic:     f.Generic,
		Album:       f.album,
		Genre:       f.genre,
		TrackLength: f.trackLength,
	}
}

// SongFromRecord parses a song record. Album, genre and track time are required.
func SongFromRecord(r Record) (*Song, error) {
	g, err := GenericFromRecord(r)
	if err != nil {
		return nil, err
	}

	s := &Song{Generic: *g}

	if s.Album, err = r.str(keyCollectionName); err != nil {
		return nil, err
	}

	if s.Genre, err = r.str(keyGenre); err != nil {
		return nil, err
	}

	if s.TrackLength, err = r.millis(keyTrackTime); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Song) Info() string {
	return fmt.Sprintf("%s [%s]", s.Generic.Info(), s.Genre)
}

// Length returns whole seconds.
func (s *Song) Length() int {
	return int(s.TrackLength / 1000)
}

func (s *Song) Kind() Kind {
	return KindSong
}

func (s *Song) String() string {
	return s.Info()
}
