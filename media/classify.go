package media

import (
	"errors"
	"strings"

	"github.com/tunesearch-cli/tunesearch/log"
)

// Group names one of the fixed result sections.
type Group string

const (
	GroupSongs  Group = "songs"
	GroupMovies Group = "movies"
	GroupOther  Group = "other media"
)

// Groups returns every group in presentation order.
func Groups() []Group {
	return []Group{GroupSongs, GroupMovies, GroupOther}
}

// Results holds the entities of one search, split into the fixed groups.
// It is read-only once returned by a Classifier.
type Results struct {
	songs  []Entity
	movies []Entity
	other  []Entity
}

// NewResults returns an empty Results with all groups present.
func NewResults() *Results {
	return &Results{}
}

func (r *Results) bucket(g Group) *[]Entity {
	switch g {
	case GroupSongs:
		return &r.songs
	case GroupMovies:
		return &r.movies
	case GroupOther:
		return &r.other
	default:
		return nil
	}
}

// Get returns the entities of the group in list order; unknown groups yield nil.
func (r *Results) Get(g Group) []Entity {
	if b := r.bucket(g); b != nil {
		return *b
	}
	return nil
}

// Len returns the number of entities across all groups.
func (r *Results) Len() int {
	return len(r.songs) + len(r.movies) + len(r.other)
}

// All returns every entity in presentation order: groups in declared order, then list order.
func (r *Results) All() []Entity {
	all := make([]Entity, 0, r.Len())
	for _, g := range Groups() {
		all = append(all, r.Get(g)...)
	}
	return all
}

// Filter returns new Results keeping only the entities accepted by keep.
func (r *Results) Filter(keep func(Entity) bool) *Results {
	filtered := NewResults()
	for _, g := range Groups() {
		for _, e := range r.Get(g) {
			if keep(e) {
				filtered.add(g, e)
			}
		}
	}
	return filtered
}

func (r *Results) add(g Group, e Entity) {
	b := r.bucket(g)
	*b = append(*b, e)
}

// Classifier turns a batch of records into Results.
type Classifier struct {
	// KeepUnrecognized routes records whose kind matches no variant to GroupOther
	// instead of dropping them.
	KeepUnrecognized bool
}

// Classify uses the default Classifier.
func Classify(records []Record) (*Results, error) {
	return Classifier{}.Classify(records)
}

// Classify places every record in its group.
//
// A record that fails to parse is skipped; the returned Results still holds every
// other record and the error joins one *RecordError per skipped record.
func (c Classifier) Classify(records []Record) (*Results, error) {
	results := NewResults()
	var errs []error

	for i, record := range records {
		group, entity, err := c.classify(record)
		if err != nil {
			log.Warnf("skipping record %d: %v", i, err)
			errs = append(errs, &RecordError{Position: i, Err: err})
			continue
		}

		if entity == nil {
			continue
		}

		results.add(group, entity)
	}

	log.Infof(
		"classified %d records: %d songs, %d movies, %d other",
		len(records), len(results.songs), len(results.movies), len(results.other),
	)

	return results, errors.Join(errs...)
}

// classify returns a nil entity for records that are dropped.
func (c Classifier) classify(r Record) (Group, Entity, error) {
	kind, ok := r.Kind().Get()
	if !ok {
		g, err := GenericFromRecord(r)
		return GroupOther, orNil(g, err), err
	}

	kind = strings.ToLower(kind)
	switch {
	case strings.Contains(kind, "song"):
		s, err := SongFromRecord(r)
		return GroupSongs, orNil(s, err), err
	case strings.Contains(kind, "movie"):
		m, err := MovieFromRecord(r)
		return GroupMovies, orNil(m, err), err
	case c.KeepUnrecognized:
		g, err := GenericFromRecord(r)
		return GroupOther, orNil(g, err), err
	default:
		log.Debugf("dropping record %s with unrecognized kind %q", r.Ident(), kind)
		return "", nil, nil
	}
}

// orNil keeps a typed nil pointer from becoming a non-nil Entity.
func orNil[T Entity](e T, err error) Entity {
	if err != nil {
		return nil
	}
	return e
}
