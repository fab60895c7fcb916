// Package features derives the lexical feature set the phishing
// classifier was trained on from a raw URL string. Extraction is a
// pure character-level scan: no URL parsing, no normalization.
package features

import (
	"strings"
	"unicode/utf8"
)

// Schema lists every feature name the extractor emits. The names,
// including the misspelled "n_hypens" and "n_hastag", are the training
// dataset column names and must stay byte-identical to them.
var Schema = []string{
	"url_length",
	"n_dots",
	"n_hypens",
	"n_underline",
	"n_slash",
	"n_questionmark",
	"n_equal",
	"n_at",
	"n_and",
	"n_exclamation",
	"n_space",
	"n_tilde",
	"n_comma",
	"n_plus",
	"n_asterisk",
	"n_hastag",
	"n_dollar",
	"n_percent",
	"n_redirection",
}

var symbolCounts = []struct {
	name   string
	symbol string
}{
	{"n_dots", "."},
	{"n_hypens", "-"},
	{"n_underline", "_"},
	{"n_slash", "/"},
	{"n_questionmark", "?"},
	{"n_equal", "="},
	{"n_at", "@"},
	{"n_and", "&"},
	{"n_exclamation", "!"},
	{"n_space", " "},
	{"n_tilde", "~"},
	{"n_comma", ","},
	{"n_plus", "+"},
	{"n_asterisk", "*"},
	{"n_hastag", "#"},
	{"n_dollar", "$"},
	{"n_percent", "%"},
}

// Extract computes the feature set over the full literal URL string.
// It is total: any string, including empty or malformed input, maps to
// a complete feature set, and the same string always maps to the same
// values.
func Extract(url string) map[string]float64 {
	feats := make(map[string]float64, len(symbolCounts)+2)

	feats["url_length"] = float64(utf8.RuneCountInString(url))

	for _, c := range symbolCounts {
		feats[c.name] = float64(strings.Count(url, c.symbol))
	}

	// One "//" is the normal scheme delimiter; only additional
	// occurrences count as redirection hops. strings.Count scans
	// sequentially without overlap, same as the training-time
	// extraction.
	redirections := strings.Count(url, "//") - 1
	if redirections < 0 {
		redirections = 0
	}
	feats["n_redirection"] = float64(redirections)

	return feats
}
