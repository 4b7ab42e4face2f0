package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtKeywords(t *testing.T) {
	testCases := []struct {
		name  string
		texts []string
		want  []string
	}{
		{
			name:  "drops creatures and filler",
			texts: []string{"This blade deals extra damage to dragon foes.", "a fire dragon guarding a volcano"},
			want:  []string{"blade", "fire", "guarding", "volcano"},
		},
		{
			name:  "dedupes across texts",
			texts: []string{"Frozen tides", "frozen TIDES and glacial winds"},
			want:  []string{"frozen", "tides", "glacial", "winds"},
		},
		{
			name:  "caps at five",
			texts: []string{"amber basalt cinder dusk ember flint"},
			want:  []string{"amber", "basalt", "cinder", "dusk", "ember"},
		},
		{
			name:  "nothing usable",
			texts: []string{"a wolf", ""},
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, artKeywords(tc.texts...))
		})
	}
}
