// Package media defines the catalog entity model: parsing raw search records into typed
// entities, grouping them, numbering their links and printing them.
package media

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Catalog record keys.
const (
	keyKind           = "kind"
	keyTrackName      = "trackName"
	keyCollectionName = "collectionName"
	keyArtistName     = "artistName"
	keyReleaseDate    = "releaseDate"
	keyTrackViewURL   = "trackViewUrl"
	keyCollectionURL  = "collectionViewUrl"
	keyGenre          = "primaryGenreName"
	keyTrackTime      = "trackTimeMillis"
	keyRating         = "contentAdvisoryRating"
	keyTrackID        = "trackId"
	keyCollectionID   = "collectionId"
)

// Record is a single untyped object from the catalog "results" array.
type Record map[string]any

// Has reports whether the record carries the key at all, null values included.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Kind returns the record's discriminator if present.
// A discriminator of a non-string type is present but empty, so it matches no known kind.
func (r Record) Kind() mo.Option[string] {
	v, ok := r[keyKind]
	if !ok {
		return mo.None[string]()
	}

	if s, ok := v.(string); ok {
		return mo.Some(s)
	}

	return mo.Some("")
}

// Ident returns a short human readable identity used in error messages.
func (r Record) Ident() string {
	for _, k := range []string{keyTrackID, keyCollectionID} {
		switch v := r[k].(type) {
		case nil:
			continue
		case float64:
			return k + "=" + strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return fmt.Sprintf("%s=%v", k, v)
		}
	}

	for _, k := range []string{keyTrackName, keyCollectionName} {
		if s, ok := r[k].(string); ok {
			return fmt.Sprintf("%s=%q", k, s)
		}
	}

	return "<unidentified>"
}

func (r Record) str(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", missingField(r, key)
	}

	s, ok := v.(string)
	if !ok {
		return "", malformedField(r, key, fmt.Sprintf("expected string, got %T", v))
	}

	return s, nil
}

// firstStr resolves the first present key in order.
func (r Record) firstStr(keys ...string) (string, error) {
	for _, k := range keys {
		if r.Has(k) {
			return r.str(k)
		}
	}

	return "", missingField(r, strings.Join(keys, "|"))
}

func (r Record) year(key string) (string, error) {
	date, err := r.str(key)
	if err != nil {
		return "", err
	}

	if len(date) < 4 {
		return "", malformedField(r, key, fmt.Sprintf("date %q is shorter than a year", date))
	}

	return date[:4], nil
}

type number interface {
	Float64() (float64, error)
}

// millis reads a numeric duration, truncating any fractional part toward zero.
func (r Record) millis(key string) (int64, error) {
	v, ok := r[key]
	if !ok {
		return 0, missingField(r, key)
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, malformedField(r, key, err.Error())
		}
		f = parsed
	default:
		return 0, malformedField(r, key, fmt.Sprintf("expected number, got %T", v))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, malformedField(r, key, "not a finite number")
	}

	return int64(math.Trunc(f)), nil
}
