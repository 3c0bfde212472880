package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Level1":          "level1",
		"Level 1":         "level-1",
		"  Dark  Forest!": "dark-forest",
		"":                "scene",
		"###":             "scene",
		"Höhle":           "höhle",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, slug(in))
		})
	}
}
