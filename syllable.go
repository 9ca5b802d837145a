package main

import (
	"strings"
	"unicode"
)

// vowels covers the Finnish vowel set; every other letter counts as a
// consonant for syllabification purposes.
const vowels = "aeiouyäö"

// diphthongs are vowel pairs that stay inside one syllable.
var diphthongs = map[string]bool{
	"ai": true, "ei": true, "oi": true, "ui": true, "yi": true,
	"äi": true, "öi": true, "au": true, "eu": true, "ou": true,
	"iu": true, "ey": true, "äy": true, "öy": true,
	"ie": true, "uo": true, "yö": true,
}

// clusters are consonant pairs that are not split between syllables.
var clusters = map[string]bool{
	"ch": true, "sh": true, "th": true, "kh": true,
	"ks": true, "st": true, "sk": true, "sp": true,
	"tr": true, "kr": true, "pr": true, "pl": true, "kl": true,
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, unicode.ToLower(r))
}

// Syllabify splits a word into syllable-like fragments using
// vowel/consonant heuristics. The concatenation of the fragments always
// equals the input; a word with no internal boundary comes back whole.
func Syllabify(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return []string{""}
	}

	var frags []string
	var cur []rune

	for i, r := range runes {
		cur = append(cur, r)
		if i == len(runes)-1 {
			break
		}
		if boundaryAfter(runes, i) {
			frags = append(frags, string(cur))
			cur = nil
		}
	}
	frags = append(frags, string(cur))
	return frags
}

// boundaryAfter reports whether a syllable boundary follows position i.
func boundaryAfter(runes []rune, i int) bool {
	cur := runes[i]
	next := runes[i+1]
	pair := string([]rune{unicode.ToLower(cur), unicode.ToLower(next)})

	switch {
	case isVowel(cur) && isVowel(next):
		return !diphthongs[pair]
	case isVowel(cur) && !isVowel(next):
		// Split only on the V|CV pattern, so the consonant opens
		// the next syllable.
		return i+2 < len(runes) && isVowel(runes[i+2])
	case !isVowel(cur) && !isVowel(next):
		return i > 0 && !clusters[pair]
	default:
		return false
	}
}
