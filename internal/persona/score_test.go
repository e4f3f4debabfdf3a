package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		expect int
	}{
		// 50 + 30 (exec) + 15 (strategy) + 5 (DM) = 100
		{"chief strategy officer caps at 100", "Chief Strategy Officer", 100},
		// 50 + 25 (vp) + 12 (cs) + 5 (DM) = 92
		{"vp customer success", "VP, Customer Success", 92},
		// 50 + 20 (director) + 12 (product) + 5 (DM) = 87
		{"product director", "Director of Product", 87},
		// 50 + 20 (director) + 0 (marketing) + 0 = 70
		{"marketing director", "Director of Marketing", 70},
		// 50 + 10 (manager) + 10 (engineering) = 70
		{"engineering manager", "Engineering Manager", 70},
		// 50 + 0 (ic) + 10 (engineering) = 60
		{"software engineer", "Software Engineer", 60},
		// 50 + 5 (senior) + 8 (design) = 63
		{"senior designer", "Senior Designer", 63},
		// floor: nothing recognized
		{"unknown title", "Wizard", 50},
		{"empty title", "", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Score(Classify(tt.title)))
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	titles := []string{
		"", "CEO", "Chief Product Officer", "VP Strategy", "Director of Customer Success",
		"Senior Software Engineer", "Analyst", "Wizard", "President of Product Strategy",
	}
	for _, title := range titles {
		score := Score(Classify(title))
		assert.GreaterOrEqual(t, score, 50, "title %q", title)
		assert.LessOrEqual(t, score, 100, "title %q", title)
	}
}

func TestScore_Deterministic(t *testing.T) {
	p := Classify("VP of Product")
	assert.Equal(t, Score(p), Score(p))
}
