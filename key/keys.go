// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 14

// Catalog Search - these keys select the endpoint and the default query parameters of every search.
const (
	ItunesEndpoint = "itunes.endpoint"
	ItunesCountry  = "itunes.country"
	ItunesMedia    = "itunes.media"
	ItunesEntity   = "itunes.entity"
	ItunesLimit    = "itunes.limit"
	ItunesLang     = "itunes.lang"
)

// Classification - these keys govern how catalog records are grouped.
const (
	ClassifyKeepUnrecognized = "classify.keep_unrecognized"
)

// Link Launching - these keys configure the application used to open catalog pages.
const (
	BrowserApp = "browser.app"
)

// Listing Output - these keys shape the printed result listing.
const (
	PrintTruncate = "print.truncate"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
