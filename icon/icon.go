// Package icon renders feedback symbols in the configured variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tunesearch-cli/tunesearch/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Warn
	Link
	Search
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Fail:    {emoji: "💀", nerd: "", plain: "✖", squares: "🟥"},
	Success: {emoji: "🎉", nerd: "", plain: "✔", squares: "🟩"},
	Warn:    {emoji: "⚠️", nerd: "", plain: "!", squares: "🟨"},
	Link:    {emoji: "🔗", nerd: "", plain: "→", squares: "🟦"},
	Search:  {emoji: "🔍", nerd: "", plain: "?", squares: "🟪"},
}

// Get returns the symbol for i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	if d, ok := icons[i]; ok {
		return d.get()
	}
	return ""
}
