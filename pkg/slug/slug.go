// Package slug builds URL-safe identifiers from Bulgarian or Latin names.
package slug

import (
	"regexp"
	"strings"

	gosimple "github.com/gosimple/slug"
)

// cyrillic holds the Bulgarian transliteration table. Upper-case letters map
// to the capitalised form; the result is lowercased afterwards anyway.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ж': "zh", 'з': "z",
	'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p",
	'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sht", 'ъ': "a", 'ь': "y", 'ю': "yu", 'я': "ya",

	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ж': "Zh", 'З': "Z",
	'И': "I", 'Й': "Y", 'К': "K", 'Л': "L", 'М': "M", 'Н': "N", 'О': "O", 'П': "P",
	'Р': "R", 'С': "S", 'Т': "T", 'У': "U", 'Ф': "F", 'Х': "H", 'Ц': "Ts", 'Ч': "Ch",
	'Ш': "Sh", 'Щ': "Sht", 'Ъ': "A", 'Ь': "Y", 'Ю': "Yu", 'Я': "Ya",
}

// whitespace lists every character treated as a word separator: ASCII
// \t \n \v \f \r and space plus the Unicode space separators, line and
// paragraph separators and the byte order mark. U+0085 is not a separator.
var whitespace = map[rune]string{
	'\t': " ", '\n': " ", '\v': " ", '\f': " ", '\r': " ",
	'\u00a0': " ", '\u1680': " ",
	'\u2000': " ", '\u2001': " ", '\u2002': " ", '\u2003': " ", '\u2004': " ", '\u2005': " ",
	'\u2006': " ", '\u2007': " ", '\u2008': " ", '\u2009': " ", '\u200a': " ",
	'\u2028': " ", '\u2029': " ", '\u202f': " ", '\u205f': " ", '\u3000': " ", '\ufeff': " ",
}

var (
	disallowed      = regexp.MustCompile(`[^a-z0-9 -]+`)
	whitespaceRuns  = regexp.MustCompile(` +`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Transliterate replaces Bulgarian Cyrillic letters with their Latin form and
// leaves every other character untouched.
func Transliterate(text string) string {
	return gosimple.SubstituteRune(text, cyrillic)
}

// Generate converts text into a lower-kebab ASCII slug.
//
// Example: "Продукти с подобни характеристики" -> "produkti-s-podobni-harakteristiki".
// Any input is accepted; the result may be empty.
func Generate(text string) string {
	s := strings.ToLower(Transliterate(text))
	s = gosimple.SubstituteRune(s, whitespace)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValid reports whether s is a non-empty slug already in the form Generate
// produces.
func IsValid(s string) bool {
	return s != "" && Generate(s) == s
}

// FromName returns explicit when it is set, otherwise a slug generated from
// name.
func FromName(explicit, name string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	return Generate(name)
}
