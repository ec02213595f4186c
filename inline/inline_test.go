package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tunesearch-cli/tunesearch/itunes"
	"github.com/tunesearch-cli/tunesearch/media"
)

const (
	songURL  = "https://music.apple.com/us/album/1440833098?i=1"
	movieURL = "https://itunes.apple.com/us/movie/beethoven/id271024"
	otherURL = "https://itunes.apple.com/us/album/id99"
)

type stubSearcher struct {
	records []media.Record
	err     error
	params  []itunes.Params
}

func (s *stubSearcher) Search(_ context.Context, params itunes.Params) ([]media.Record, error) {
	s.params = append(s.params, params)
	return s.records, s.err
}

func beethovenRecords() []media.Record {
	return []media.Record{
		{
			"kind":             "song",
			"artistName":       "Ludwig van Beethoven",
			"collectionName":   "Beethoven: Symphonies",
			"trackName":        "Symphony No. 5",
			"trackViewUrl":     songURL,
			"releaseDate":      "1808-12-22T08:00:00Z",
			"trackTimeMillis":  float64(125000),
			"primaryGenreName": "Classical",
		},
		{
			"kind":                  "feature-movie",
			"artistName":            "Brian Levant",
			"trackName":             "Beethoven",
			"trackViewUrl":          movieURL,
			"releaseDate":           "1992-04-03T08:00:00Z",
			"trackTimeMillis":       float64(5430000),
			"contentAdvisoryRating": "PG",
		},
		{
			"artistName":        "Various Artists",
			"collectionName":    "Beethoven Lives Upstairs",
			"collectionViewUrl": otherURL,
			"releaseDate":       "1992",
		},
	}
}

func TestRun(t *testing.T) {
	Convey("Given a searcher returning one entity per group", t, func() {
		searcher := &stubSearcher{records: beethovenRecords()}
		var out bytes.Buffer
		var opened []string

		options := &Options{
			Out:      &out,
			Searcher: searcher,
			Params:   itunes.Params{Term: "Beethoven"},
			Opener: func(url string) error {
				opened = append(opened, url)
				return nil
			},
		}

		Convey("Text mode prints the numbered listing", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			So(searcher.params, ShouldHaveLength, 1)
			So(searcher.params[0].Term, ShouldEqual, "Beethoven")
			So(out.String(), ShouldEqual, "\n"+
				"SONGS\n1 Symphony No. 5 by Ludwig van Beethoven (1808) [Classical]\n\n"+
				"MOVIES\n2 Beethoven by Brian Levant (1992) [PG]\n\n"+
				"OTHER MEDIA\n3 Beethoven Lives Upstairs by Various Artists (1992)\n\n")
			So(opened, ShouldBeEmpty)
		})

		Convey("Json mode numbers entries like the listing", func() {
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "Beethoven")
			So(output.Result, ShouldHaveLength, 3)

			song, movie, other := output.Result[0], output.Result[1], output.Result[2]
			So(song.Number, ShouldEqual, 1)
			So(song.Group, ShouldEqual, "songs")
			So(song.Kind, ShouldEqual, "song")
			So(song.Length, ShouldEqual, 125)
			So(song.Album, ShouldEqual, "Beethoven: Symphonies")
			So(song.URL, ShouldEqual, songURL)

			So(movie.Number, ShouldEqual, 2)
			So(movie.Kind, ShouldEqual, "movie")
			So(movie.Length, ShouldEqual, 90)
			So(movie.Rating, ShouldEqual, "PG")
			So(movie.Album, ShouldBeEmpty)

			So(other.Number, ShouldEqual, 3)
			So(other.Group, ShouldEqual, "other media")
			So(other.Kind, ShouldEqual, "media")
			So(other.Title, ShouldEqual, "Beethoven Lives Upstairs")
			So(other.Length, ShouldEqual, 0)
		})

		Convey("A filter drops entities before numbering", func() {
			options.Json = true
			options.Filter = mo.Some("levant")
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Number, ShouldEqual, 1)
			So(output.Result[0].URL, ShouldEqual, movieURL)
		})

		Convey("Open launches the numbered entity", func() {
			options.Open = mo.Some(3)
			So(Run(context.Background(), options), ShouldBeNil)
			So(opened, ShouldResemble, []string{otherURL})
		})

		Convey("Open out of range fails after printing", func() {
			options.Open = mo.Some(4)
			err := Run(context.Background(), options)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no entry numbered 4")
			So(out.String(), ShouldContainSubstring, "1 Symphony No. 5")
			So(opened, ShouldBeEmpty)
		})

		Convey("A failing opener is reported", func() {
			options.Open = mo.Some(1)
			options.Opener = func(string) error { return errors.New("no browser") }
			So(Run(context.Background(), options), ShouldNotBeNil)
		})
	})

	Convey("Given a searcher that fails", t, func() {
		cause := errors.New("connection refused")
		var out bytes.Buffer
		options := &Options{
			Out:      &out,
			Searcher: &stubSearcher{err: cause},
			Params:   itunes.Params{Term: "x"},
		}

		Convey("The error is returned and nothing is printed", func() {
			err := Run(context.Background(), options)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(out.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given no records", t, func() {
		var out bytes.Buffer
		options := &Options{Out: &out, Searcher: &stubSearcher{}, Json: true}

		Convey("Json mode prints an empty result list", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, `"result":[]`)
		})
	})
}
