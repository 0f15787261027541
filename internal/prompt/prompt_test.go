package prompt

import (
	"strings"
	"testing"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

const sample = "Photosynthesis converts light into energy."

func TestBuilders_EmbedTextAndDemandJSON(t *testing.T) {
	builders := map[string]Prompt{
		"assessment": Assessment(sample, domain.DifficultyBasic),
		"comic":      Comic(sample),
		"worksheet":  Worksheet(sample),
		"podcast":    Podcast(sample),
	}

	for name, p := range builders {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, p.User, sample)
			assert.True(t, strings.HasSuffix(p.User, jsonOnly), "prompt should end with the JSON-only instruction")
			assert.Contains(t, p.System, "JSON")
			assert.NotContains(t, p.User, "%!", "no fmt verb errors")
		})
	}
}

func TestAssessment_DifficultyTiers(t *testing.T) {
	for _, d := range []domain.Difficulty{domain.DifficultyBasic, domain.DifficultyMedium, domain.DifficultyAdvanced} {
		p := Assessment(sample, d)
		assert.Contains(t, p.User, d.Label()+"程度")
		assert.Contains(t, p.User, `"difficulty": "`+d.Label()+`"`)
		assert.Contains(t, p.User, d.Description())
		assert.Contains(t, p.User, "剛好 10 題")
	}
}

func TestComicPanelImage(t *testing.T) {
	got := ComicPanelImage("a girl holding a leaf")
	assert.True(t, strings.HasPrefix(got, "Educational comic panel"))
	assert.True(t, strings.HasSuffix(got, ": a girl holding a leaf"))
}

func TestBuilders_AreDeterministic(t *testing.T) {
	assert.Equal(t, Podcast(sample), Podcast(sample))
	assert.Equal(t, Assessment(sample, domain.DifficultyMedium), Assessment(sample, domain.DifficultyMedium))
}
