package mini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tunesearch-cli/tunesearch/itunes"
	"github.com/tunesearch-cli/tunesearch/media"
)

const (
	songURL  = "https://music.apple.com/us/album/1440833098?i=1"
	movieURL = "https://itunes.apple.com/us/movie/beethoven/id271024"
)

func songRecord() media.Record {
	return media.Record{
		"kind":             "song",
		"artistName":       "Ludwig van Beethoven",
		"collectionName":   "Beethoven: Symphonies",
		"trackName":        "Symphony No. 5",
		"trackViewUrl":     songURL,
		"releaseDate":      "1808-12-22T08:00:00Z",
		"trackTimeMillis":  float64(125000),
		"primaryGenreName": "Classical",
	}
}

func movieRecord() media.Record {
	return media.Record{
		"kind":                  "feature-movie",
		"artistName":            "Brian Levant",
		"trackName":             "Beethoven",
		"trackViewUrl":          movieURL,
		"releaseDate":           "1992-04-03T08:00:00Z",
		"trackTimeMillis":       float64(5430000),
		"contentAdvisoryRating": "PG",
	}
}

// catalog answers by term; terms it does not know return no records.
type catalog struct {
	records map[string][]media.Record
	fail    map[string]error
	terms   []string
}

func (c *catalog) Search(_ context.Context, params itunes.Params) ([]media.Record, error) {
	c.terms = append(c.terms, params.Term)
	if err, ok := c.fail[params.Term]; ok {
		return nil, err
	}
	return c.records[params.Term], nil
}

type harness struct {
	out    *bytes.Buffer
	opened []string
	cat    *catalog
}

func run(input string, cat *catalog) (*harness, error) {
	h := &harness{out: &bytes.Buffer{}, cat: cat}
	err := Run(&Options{
		In:       strings.NewReader(input),
		Out:      h.out,
		Searcher: cat,
		Open: func(url string) error {
			h.opened = append(h.opened, url)
			return nil
		},
	})
	return h, err
}

func beethoven() *catalog {
	return &catalog{
		records: map[string][]media.Record{
			"Beethoven": {songRecord(), movieRecord()},
		},
		fail: map[string]error{},
	}
}

func TestRun(t *testing.T) {
	Convey("Given a search followed by a selection", t, func() {
		h, err := run("Beethoven\n1\nexit\n", beethoven())
		So(err, ShouldBeNil)

		Convey("The listing groups and numbers the results", func() {
			So(h.out.String(), ShouldContainSubstring,
				"SONGS\n1 Symphony No. 5 by Ludwig van Beethoven (1808) [Classical]\n\n"+
					"MOVIES\n2 Beethoven by Brian Levant (1992) [PG]\n\n"+
					"OTHER MEDIA\n"+media.NoResults+"\n")
		})

		Convey("The number opens the matching link", func() {
			So(h.opened, ShouldResemble, []string{songURL})
			So(h.out.String(), ShouldContainSubstring, "\nLaunching\n"+songURL+"\nin web browser...\n\n")
		})

		Convey("The prompt changes once results exist", func() {
			So(strings.Count(h.out.String(), searchPrompt), ShouldEqual, 1)
			So(strings.Count(h.out.String(), selectPrompt), ShouldEqual, 2)
		})

		Convey("Exit says goodbye", func() {
			So(h.out.String(), ShouldEndWith, "Bye!\n")
		})
	})

	Convey("Given a number outside the listing", t, func() {
		h, err := run("Beethoven\n99\nexit\n", beethoven())
		So(err, ShouldBeNil)

		Convey("It is searched for as a term", func() {
			So(h.cat.terms, ShouldResemble, []string{"Beethoven", "99"})
			So(h.opened, ShouldBeEmpty)
		})

		Convey("The previous listing is replaced", func() {
			listing := h.out.String()[strings.LastIndex(h.out.String(), "SONGS"):]
			So(listing, ShouldNotContainSubstring, "Symphony")
		})
	})

	Convey("Given a number before any search", t, func() {
		h, err := run("1\nexit\n", beethoven())
		So(err, ShouldBeNil)
		So(h.cat.terms, ShouldResemble, []string{"1"})
		So(h.opened, ShouldBeEmpty)
	})

	Convey("Given a stale number after a new search", t, func() {
		cat := beethoven()
		cat.records["Mozart"] = []media.Record{movieRecord()}

		h, err := run("Beethoven\nMozart\n2\nexit\n", cat)
		So(err, ShouldBeNil)
		So(cat.terms, ShouldResemble, []string{"Beethoven", "Mozart", "2"})
		So(h.opened, ShouldBeEmpty)
	})

	Convey("Given a failed search after a successful one", t, func() {
		cat := beethoven()
		cat.fail["broken"] = errors.New("connection refused")

		h, err := run("Beethoven\nbroken\n2\nexit\n", cat)
		So(err, ShouldBeNil)

		Convey("The failure is reported", func() {
			So(h.out.String(), ShouldContainSubstring, "search failed: connection refused")
		})

		Convey("The previous listing stays selectable", func() {
			So(h.opened, ShouldResemble, []string{movieURL})
		})
	})

	Convey("Given records that cannot be read", t, func() {
		broken := songRecord()
		delete(broken, "primaryGenreName")
		cat := &catalog{records: map[string][]media.Record{"x": {broken, movieRecord()}}}

		h, err := run("x\n1\n", cat)
		So(err, ShouldBeNil)

		Convey("They are skipped and counted", func() {
			So(h.out.String(), ShouldContainSubstring, "skipped 1 record that could not be read")
			So(h.out.String(), ShouldContainSubstring, "1 Beethoven by Brian Levant")
			So(h.opened, ShouldResemble, []string{movieURL})
		})
	})

	for i, input := range []string{"exit\n", "EXIT\n", "  Exit \n", "exit", ""} {
		Convey(fmt.Sprintf("Given input #%d that ends the loop", i), t, func() {
			h, err := run(input, beethoven())
			So(err, ShouldBeNil)
			So(h.cat.terms, ShouldBeEmpty)
			So(h.out.String(), ShouldEqual, searchPrompt+"Bye!\n")
		})
	}
}

func TestSessionDecide(t *testing.T) {
	Convey("Given a session with two links", t, func() {
		grouped, err := media.Classify([]media.Record{songRecord(), movieRecord()})
		So(err, ShouldBeNil)

		var s session
		s.replace(media.NewIndex(grouped))

		Convey("Listed numbers open", func() {
			d := s.decide("2")
			So(d.action, ShouldEqual, actionOpen)
			So(d.url, ShouldEqual, movieURL)
		})

		Convey("Zero and padded numbers are search terms", func() {
			So(s.decide("0").action, ShouldEqual, actionSearch)
			So(s.decide(" 1").term, ShouldEqual, " 1")
			So(s.decide("-1").action, ShouldEqual, actionSearch)
		})

		Convey("Numbers too large to parse are search terms", func() {
			So(s.decide("99999999999999999999999").action, ShouldEqual, actionSearch)
		})

		Convey("The empty string is a search term", func() {
			d := s.decide("")
			So(d.action, ShouldEqual, actionSearch)
			So(d.term, ShouldEqual, "")
		})
	})
}

func TestAgainstCatalogServer(t *testing.T) {
	Convey("Given a catalog server answering Beethoven", t, func() {
		body := `{"resultCount":3,"results":[
			{"kind":"song","artistName":"Ludwig van Beethoven","collectionName":"Beethoven: Symphonies","trackName":"Symphony No. 5","trackViewUrl":"` + songURL + `","releaseDate":"1808-12-22T08:00:00Z","trackTimeMillis":125000,"primaryGenreName":"Classical"},
			{"kind":"feature-movie","artistName":"Brian Levant","trackName":"Beethoven","trackViewUrl":"` + movieURL + `","releaseDate":"1992-04-03T08:00:00Z","trackTimeMillis":5430000,"contentAdvisoryRating":"PG"},
			{"kind":"song","trackName":"dropped"}
		]}`

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("term") != "Beethoven" {
				fmt.Fprint(w, `{"resultCount":0,"results":[]}`)
				return
			}
			fmt.Fprint(w, body)
		}))
		defer srv.Close()

		cat := itunes.New(itunes.WithEndpoint(srv.URL))

		var out bytes.Buffer
		var opened []string
		err := Run(&Options{
			In:       strings.NewReader("Beethoven\n1\n99\nexit\n"),
			Out:      &out,
			Searcher: cat,
			Open: func(url string) error {
				opened = append(opened, url)
				return nil
			},
		})
		So(err, ShouldBeNil)

		Convey("Entity 1 is the song and opens its link", func() {
			So(out.String(), ShouldContainSubstring, "SONGS\n1 Symphony No. 5")
			So(out.String(), ShouldContainSubstring, "MOVIES\n2 Beethoven")
			So(opened, ShouldResemble, []string{songURL})
		})

		Convey("99 runs a search with no results", func() {
			So(strings.Count(out.String(), "OTHER MEDIA\n"+media.NoResults), ShouldEqual, 2)
			So(strings.Count(out.String(), "SONGS\n"+media.NoResults), ShouldEqual, 1)
		})
	})
}
