package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("short string unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncate("hello", 140))
	})

	t.Run("exact length unchanged", func(t *testing.T) {
		s := strings.Repeat("a", 140)
		assert.Equal(t, s, truncate(s, 140))
	})

	t.Run("long string gets ellipsis", func(t *testing.T) {
		got := truncate(strings.Repeat("a", 200), 140)
		assert.Equal(t, 140, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("multibyte preview stays valid utf-8", func(t *testing.T) {
		s := strings.Repeat("日本語のメッセージ", 30)
		got := truncate(s, 140)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, 140, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.NotContains(t, got, string(utf8.RuneError))
	})
}
