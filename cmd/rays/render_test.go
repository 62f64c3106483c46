package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tinyScene = `{
	"width": 8,
	"height": 8,
	"supersamples": 1,
	"samples_per_chunk": 1,
	"chunk_size": 8,
	"max_depth": 1,
	"camera": {"location": [0, 0, -5], "lookat": [0, 0, 0]},
	"lights": [{"location": [0, 5, -5]}],
	"objects": [
		{"type": "sphere", "location": [0, 0, 0], "radius": 1, "material": "red"}
	],
	"materials": {
		"red": {"type": "lambertian", "albedo": [0.8, 0.1, 0.1]}
	}
}`

func TestRunRenderWritesAPNGFile(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.json")
	assert.NoError(t, os.WriteFile(scenePath, []byte(tinyScene), 0o644))

	outPath = filepath.Join(dir, "out.png")
	profilePath = ""
	preview = false

	err := runRender(renderCmd, []string{scenePath})
	assert.NoError(t, err)

	info, err := os.Stat(outPath)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunRenderAppliesQualityProfile(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.json")
	assert.NoError(t, os.WriteFile(scenePath, []byte(tinyScene), 0o644))

	profileYAML := "supersamples: 2\nmax_depth: 2\n"
	profPath := filepath.Join(dir, "profile.yaml")
	assert.NoError(t, os.WriteFile(profPath, []byte(profileYAML), 0o644))

	outPath = filepath.Join(dir, "out.png")
	profilePath = profPath
	preview = false

	err := runRender(renderCmd, []string{scenePath})
	assert.NoError(t, err)

	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}

func TestRunRenderReturnsErrorForMissingSceneFile(t *testing.T) {
	outPath = filepath.Join(t.TempDir(), "out.png")
	profilePath = ""
	err := runRender(renderCmd, []string{filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

func TestLoadProfileParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("chunk_size: 16\n"), 0o644))

	p, err := loadProfile(path)
	assert.NoError(t, err)
	assert.NotNil(t, p.ChunkSize)
	assert.Equal(t, 16, *p.ChunkSize)
}
