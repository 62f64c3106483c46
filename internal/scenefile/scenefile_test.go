package scenefile

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peterbraden/rays/internal/ray"
	"github.com/peterbraden/rays/internal/vecmath"
)

const minimalScene = `{
	"width": 32,
	"height": 24,
	"camera": {
		"location": [0, 0, -5],
		"lookat": [0, 0, 0]
	},
	"lights": [
		{"location": [0, 5, -5]}
	],
	"objects": [
		{"type": "sphere", "location": [0, 0, 0], "radius": 1,
		 "material": "red"}
	],
	"materials": {
		"red": {"type": "lambertian", "albedo": [0.8, 0.1, 0.1]}
	}
}`

func TestLoadParsesAMinimalScene(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s, err := Load([]byte(minimalScene), rng, nil)
	assert.NoError(t, err)
	assert.Equal(t, 32, s.Image.Width)
	assert.Equal(t, 24, s.Image.Height)
	assert.Len(t, s.LightList, 1)
	assert.Equal(t, 2, s.Render.MaxDepth) // default
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Load([]byte("{not json"), rng, nil)
	assert.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadRejectsMissingCamera(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Load([]byte(`{"width": 10, "height": 10, "objects": []}`), rng, nil)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownMaterialType(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	doc := `{
		"width": 10, "height": 10,
		"camera": {"location": [0,0,-5], "lookat": [0,0,0]},
		"objects": [{"type": "sphere", "location": [0,0,0], "radius": 1, "material": "mystery"}],
		"materials": {"mystery": {"type": "not-a-real-type"}}
	}`
	_, err := Load([]byte(doc), rng, nil)
	assert.Error(t, err)
}

func TestLoadDefaultsToLambertianWhenNoMaterialGiven(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	doc := `{
		"width": 10, "height": 10,
		"camera": {"location": [0,0,-5], "lookat": [0,0,0]},
		"objects": [{"type": "sphere", "location": [0,0,0], "radius": 1}]
	}`
	s, err := Load([]byte(doc), rng, nil)
	assert.NoError(t, err)
	r := ray.New(vecmath.New(0, 0, -5), vecmath.New(0, 0, 1))
	_, _, ok := s.Objects.NearestIntersection(r, 1e30, 0)
	assert.True(t, ok)
}
