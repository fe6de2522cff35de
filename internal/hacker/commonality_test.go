package hacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonality(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "aabb", "aabb", 4},
		{"disjoint", "abcd", "wxyz", 0},
		{"partial", "aabb", "aaaa", 2},
		{"alternating", "abab", "aaaa", 2},
		{"shorter first", "ab", "abcd", 2},
		{"shorter second", "abcd", "ab", 2},
		{"empty", "", "abc", 0},
		{"runes not bytes", "héllo", "hello", 4},
		{"multibyte match", "日本語", "日本人", 2},
		{"combining mark", "\u00e9", "e\u0301", 0},
		{"invalid bytes", "\xff", "\xfe", 0},
		{"same invalid byte", "a\xffb", "a\xffb", 2},
		{"replacement character", "\uFFFD", "\uFFFD", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Commonality(tc.a, tc.b))
			assert.Equal(t, tc.want, Commonality(tc.b, tc.a), "commonality should be symmetric")
		})
	}
}
