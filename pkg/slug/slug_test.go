package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bulgarian phrase", "Продукти с подобни характеристики", "produkti-s-podobni-harakteristiki"},
		{"latin with noise", "  Hello   World!!  ", "hello-world"},
		{"multi letter mappings", "Щастие Жълто", "shtastie-zhalto"},
		{"upper case cyrillic", "ЮЛИЯ", "yuliya"},
		{"digits kept", "Модел 2024", "model-2024"},
		{"hyphen runs collapse", "a -- b", "a-b"},
		{"punctuation stripped not replaced", "Hello,World", "helloworld"},
		{"leading and trailing hyphens", "--abc--", "abc"},
		{"unmapped non latin dropped", "café ёж", "caf-zh"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
		{"tabs and newlines", "a\tb\nc", "a-b-c"},
		{"non breaking space", "a\u00a0b", "a-b"},
		{"vertical tab", "a\vb", "a-b"},
		{"form feed and carriage return", "a\f\rb", "a-b"},
		{"byte order mark", "a\ufeffb", "a-b"},
		{"ideographic space", "a\u3000b", "a-b"},
		{"line separator", "a\u2028b", "a-b"},
		{"next line is not a separator", "a\u0085b", "ab"},
		{"zero width space is not a separator", "a\u200bb", "ab"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Generate(tc.in))
		})
	}
}

func TestGenerateCyrillicAlphabetIsClean(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)
	inputs := []string{
		"абвгдежзийклмнопрстуфхцчшщъьюя",
		"АБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЬЮЯ",
		" - Ябълка - ",
		"Щ-Щ  Ъ",
	}
	for _, in := range inputs {
		out := Generate(in)
		assert.Regexp(t, valid, out)
		if out != "" {
			assert.NotEqual(t, byte('-'), out[0])
			assert.NotEqual(t, byte('-'), out[len(out)-1])
		}
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	once := Generate("Блог  Категория / Нова")
	assert.Equal(t, once, Generate(once))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("hello-world"))
	assert.True(t, IsValid("model-2024"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Hello"))
	assert.False(t, IsValid("-hello"))
	assert.False(t, IsValid("a--b"))
	assert.False(t, IsValid("snake_case"))
}

func TestFromName(t *testing.T) {
	assert.Equal(t, "custom", FromName(" custom ", "Ignored Name"))
	assert.Equal(t, "marka", FromName("", "Марка"))
}
