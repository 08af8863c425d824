package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegionURLs(t *testing.T) {
	urls := parseRegionURLs("eu=postgres://eu-host/db,uk=postgres://uk-host/db")

	assert.Equal(t, map[string]string{
		"eu": "postgres://eu-host/db",
		"uk": "postgres://uk-host/db",
	}, urls)
}

func TestParseRegionURLs_Empty(t *testing.T) {
	assert.Empty(t, parseRegionURLs(""))
}

func TestParseRegionURLs_SkipsMalformedPairs(t *testing.T) {
	urls := parseRegionURLs("eu=postgres://eu-host/db, garbage ,=postgres://no-key,uk=")

	assert.Equal(t, map[string]string{
		"eu": "postgres://eu-host/db",
	}, urls)
}

func TestParseRegionURLs_NormalizesKeyCase(t *testing.T) {
	urls := parseRegionURLs(" EU = postgres://eu-host/db ")

	assert.Equal(t, map[string]string{
		"eu": "postgres://eu-host/db",
	}, urls)
}
