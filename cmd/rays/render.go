package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/edaniels/golog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/peterbraden/rays/internal/integrator"
	renderpkg "github.com/peterbraden/rays/internal/render"
	"github.com/peterbraden/rays/internal/scenefile"
)

// profile is an optional YAML quality-preset overlay applied on top of a
// scene file's own render options, letting a single scene.json be
// re-rendered at draft/final quality without editing it. Not present in
// the original (scenefile.rs has no separate profile concept); grounded
// on spec.md §6's RenderOpts fields, exposed as an override layer the
// way gopkg.in/yaml.v3 config overlays are commonly structured.
type profile struct {
	Supersamples    *int `yaml:"supersamples"`
	MaxDepth        *int `yaml:"max_depth"`
	ChunkSize       *int `yaml:"chunk_size"`
	SamplesPerChunk *int `yaml:"samples_per_chunk"`
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

var (
	outPath     string
	preview     bool
	profilePath string
)

var renderCmd = &cobra.Command{
	Use:   "render <scene.json>",
	Short: "Render a JSON scene file to a PNG image",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&outPath, "output", "o", "out.png", "output PNG path")
	renderCmd.Flags().BoolVar(&preview, "preview", false, "print a terminal preview after rendering")
	renderCmd.Flags().StringVar(&profilePath, "profile", "", "YAML quality-profile overlay")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading scene file: %w", err)
	}

	logger := golog.NewLogger("rays")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s, err := scenefile.Load(data, rng, logger)
	if err != nil {
		return fmt.Errorf("parsing scene file: %w", err)
	}

	if profilePath != "" {
		p, err := loadProfile(profilePath)
		if err != nil {
			return fmt.Errorf("reading quality profile: %w", err)
		}
		if p.Supersamples != nil {
			s.Render.Supersamples = *p.Supersamples
		}
		if p.MaxDepth != nil {
			s.Render.MaxDepth = *p.MaxDepth
		}
		if p.ChunkSize != nil {
			s.Render.ChunkSize = *p.ChunkSize
		}
		if p.SamplesPerChunk != nil {
			s.Render.SamplesPerChunk = *p.SamplesPerChunk
		}
	}

	logger.Infow("starting render", "max_depth", s.Render.MaxDepth, "supersamples", s.Render.Supersamples)
	img := integrator.Render(s, func(completed, total int) {
		if completed == total || completed%8 == 0 {
			logger.Infow("render progress", "tiles_done", completed, "tiles_total", total)
		}
	})

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := renderpkg.WritePNG(out, img); err != nil {
		return err
	}
	logger.Infow("wrote output", "path", outPath)

	if preview {
		if err := renderpkg.Preview(os.Stdout, img, 120); err != nil {
			return err
		}
	}
	return nil
}
