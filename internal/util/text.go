package util

import "strings"

// ArticleFor returns "a" or "an" depending on whether s starts with a vowel
// sound (approximated by its first letter), optionally capitalized. Used by
// the driver when reporting "unexpected an id" style syntax errors.
func ArticleFor(s string, capitalize bool) string {
	article := "a"
	if s != "" && strings.ContainsRune("aeiouAEIOU", rune(s[0])) {
		article = "an"
	}
	if capitalize {
		return strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}
