package delegate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessmatter/onevents/dom"
)

func mustParse(t *testing.T, markup string) *dom.Node {
	t.Helper()
	doc, err := dom.ParseFragment(markup)
	require.NoError(t, err)
	return doc
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		preload []string
		want    []string
	}{
		{
			name:   "attributes across the subtree",
			markup: `<div on-click="a"><span on-mouseenter="b"><i on-keydown="c"></i></span></div>`,
			want:   []string{"click", "keydown", "mouseenter"},
		},
		{
			name:   "duplicate attributes collapse",
			markup: `<div on-click="a"><span on-click="b"></span></div>`,
			want:   []string{"click"},
		},
		{
			name:   "unsupported names dropped silently",
			markup: `<div on-tap="a" on-click="b" onclick="legacy" data-on-click="x"></div>`,
			want:   []string{"click"},
		},
		{
			name:    "preload unioned after validation",
			markup:  `<div on-click="a"></div>`,
			preload: []string{"keydown", "bogus", "click"},
			want:    []string{"click", "keydown"},
		},
		{
			name:    "preload alone",
			markup:  `<div></div>`,
			preload: []string{"input"},
			want:    []string{"input"},
		},
		{
			name:   "nothing in use",
			markup: `<div><span>text</span></div>`,
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used := Discover(mustParse(t, tt.markup), tt.preload)
			got := sortedNames(used)
			assert.Equal(t, tt.want, got)
		})
	}
}
