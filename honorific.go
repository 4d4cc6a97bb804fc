package kotodama

import (
	"bufio"
	"os"
	"strings"

	"github.com/adrg/xdg"
)

// defaultHonorifics is the closed set of honorific markers used to flag
// politeness-bearing tokens: polite copula forms, respectful and humble
// auxiliary verbs, and the 御 prefix. Matching is by substring over the
// surface and base forms, so conjugations resolve through the base form.
//
// The bare お/ご prefixes are intentionally absent: as substrings they occur
// inside ordinary vocabulary and would flag nearly every token.
var defaultHonorifics = []string{
	// polite copulas
	"です", "ます", "ございます", "でございます",
	// respectful
	"いらっしゃる", "おっしゃる", "なさる", "くださる", "召し上がる",
	// humble
	"いたす", "いただく", "伺う", "参る", "申し上げる", "拝見",
	// honorific prefix
	"御",
}

// honorificsConfigPath is the override file looked up under the user config
// directory, one marker per line, # for comments.
const honorificsConfigPath = "kotodama/honorifics.txt"

// DefaultHonorifics returns a copy of the built-in honorific marker set.
func DefaultHonorifics() []string {
	out := make([]string, len(defaultHonorifics))
	copy(out, defaultHonorifics)
	return out
}

// LoadHonorifics returns the user-configured marker set if an override file
// exists, otherwise the built-in set. A malformed or unreadable file falls
// back to the built-in set rather than failing the caller.
func LoadHonorifics() []string {
	path, err := xdg.SearchConfigFile(honorificsConfigPath)
	if err != nil {
		return DefaultHonorifics()
	}
	markers, err := readHonorificsFile(path)
	if err != nil || len(markers) == 0 {
		Logger.Warn().Err(err).Str("path", path).Msg("ignoring honorifics override file")
		return DefaultHonorifics()
	}
	Logger.Debug().Str("path", path).Int("markers", len(markers)).Msg("loaded honorifics override")
	return markers
}

func readHonorificsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var markers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		markers = append(markers, line)
	}
	return markers, scanner.Err()
}
