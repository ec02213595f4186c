package itunes

import (
	"net/url"
	"strconv"
)

// Params are the query parameters of one search. Zero values are left out of the request.
type Params struct {
	Term      string
	Country   string `validate:"omitempty,len=2,alpha"`
	Media     string `validate:"omitempty,oneof=movie podcast music musicVideo audiobook shortFilm tvShow software ebook all"`
	Entity    string `validate:"omitempty,alphanum"`
	Attribute string `validate:"omitempty,alphanum"`
	Limit     int    `validate:"omitempty,min=1,max=200"`
	Lang      string `validate:"omitempty,oneof=en_us ja_jp"`
	Explicit  string `validate:"omitempty,oneof=Yes No"`
}

// Values encodes the parameters. The term is always present, even when empty.
func (p Params) Values() url.Values {
	v := url.Values{}
	v.Set("term", p.Term)

	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}

	set("country", p.Country)
	set("media", p.Media)
	set("entity", p.Entity)
	set("attribute", p.Attribute)
	set("lang", p.Lang)
	set("explicit", p.Explicit)

	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}

	return v
}
