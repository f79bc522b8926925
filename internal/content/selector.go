// Package content picks the daily verse and prayer pairing, deterministically
// keyed on the weakest assessment domains and the calendar day.
package content

import (
	"strings"

	"vitalis/internal/engine"
)

// Selection is the daily content pairing served to the presentation layer.
// Stable for the whole calendar day given unchanged answers.
type Selection struct {
	Theme   Theme  `json:"theme"`
	Bucket  Bucket `json:"bucket"`
	Verse   Verse  `json:"verse"`
	Message string `json:"message"`
}

// themeSets maps weak-domain membership to a verse theme, in priority order.
// First matching set wins; strength is the fallback when neither of the two
// weakest domains appears in any set.
var themeSets = []struct {
	theme   Theme
	domains map[string]bool
}{
	{ThemePeace, map[string]bool{"sleep": true, "breath": true, "resilience": true, "chatter": true}},
	{ThemeWisdom, map[string]bool{"focus": true, "overthink": true}},
	{ThemeGrace, map[string]bool{"connection": true, "turnToward": true, "intimacy": true}},
}

// bucketSets maps the single weakest domain to a prayer bucket; gratitude is
// the fallback.
var bucketSets = []struct {
	bucket  Bucket
	domains map[string]bool
}{
	{BucketRestore, map[string]bool{"sleep": true, "breath": true, "resilience": true, "internalHealth": true}},
	{BucketFocus, map[string]bool{"focus": true, "allIn": true, "grit": true}},
}

// themeFor returns the verse theme for the two weakest domains.
func themeFor(weakest []string) Theme {
	for _, set := range themeSets {
		for _, key := range weakest {
			if set.domains[key] {
				return set.theme
			}
		}
	}
	return ThemeStrength
}

// bucketFor returns the prayer bucket for the single weakest domain.
func bucketFor(weakest string) Bucket {
	for _, set := range bucketSets {
		if set.domains[weakest] {
			return set.bucket
		}
	}
	return BucketGratitude
}

// Select picks the verse and prayer for one calendar day. Pure: identical
// answers, name, and day string always yield the identical selection, and
// nothing else (wall clock, previous selections) feeds in. day is the local
// calendar day formatted as 2006-01-02.
func Select(answers engine.AssessmentAnswers, name, day string) Selection {
	weakest := answers.Weakest(2)
	theme := themeFor(weakest)
	bucket := bucketFor(weakest[0])

	verses := verseBanks[theme]
	verse := verses[bankIndex(day, string(theme), len(verses))]

	templates := messageBanks[bucket]
	message := templates[bankIndex(day, string(bucket), len(templates))]

	if name == "" {
		name = "friend"
	}
	message = strings.ReplaceAll(message, "{name}", name)

	return Selection{Theme: theme, Bucket: bucket, Verse: verse, Message: message}
}
