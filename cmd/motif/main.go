package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/melographe/motif/pkg/markov"
	"github.com/melographe/motif/pkg/melody"
	"github.com/melographe/motif/pkg/midi"
	"github.com/melographe/motif/pkg/player"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	configPath := flag.String("config", "./motif.json", "path to the configuration file")
	melodyFlag := flag.String("melody", "", "source melody: 1/au_clair or 2/marseillaise (prompts when empty)")
	filePath := flag.String("file", "", "load the source melody from a JSON file instead")
	seed := flag.Uint64("seed", 0, "random seed for reproducible runs (0 picks one from the clock)")
	play := flag.Bool("play", false, "play the first generated melody through the speakers")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "motif: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.slogLevel()}))

	if err := run(cfg, logger, *melodyFlag, *filePath, *seed, *play); err != nil {
		logger.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *Config, logger *slog.Logger, melodyFlag, filePath string, seed uint64, play bool) error {
	src, err := chooseSource(melodyFlag, filePath, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	logger.Info("Starting generation",
		slog.String("version", Version),
		slog.String("melody", src.Name),
		slog.Int("source_notes", len(src.Notes)),
		slog.Uint64("seed", seed),
	)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// The source itself goes out first, as a listening reference.
	originalPath := filepath.Join(cfg.OutputDir, src.Name+"_original.mid")
	if err := midi.WriteFile(originalPath, src.Name, src.Tempo, melody.Zip(src.Notes, src.Beats)); err != nil {
		return fmt.Errorf("failed to write source midi: %w", err)
	}
	logger.Info("Wrote source melody", slog.String("file", originalPath))

	srcHist, err := markov.Histogram(src.Notes)
	if err != nil {
		return fmt.Errorf("source melody is unusable: %w", err)
	}
	fmt.Println("Note distribution in the source melody:")
	printHistogram(os.Stdout, srcHist)

	var preview []melody.Note
	for _, order := range cfg.Orders {
		fmt.Printf("\n=== Markov chain of order %d ===\n", order)

		model, err := markov.Build(src.Notes, order)
		if err != nil {
			return fmt.Errorf("failed to build order-%d model: %w", order, err)
		}
		stats := model.Stats()
		logger.Info("Model built",
			slog.Int("order", order),
			slog.Int("contexts", stats.Contexts),
			slog.Int("transitions", stats.Transitions),
			slog.Int("observations", stats.Observations),
		)
		printModelPreview(os.Stdout, model, 3, 3)

		if len(src.Notes) < order {
			logger.Warn("Source shorter than the order, skipping", slog.Int("order", order))
			continue
		}

		var hists []map[string]float64
		for i := 0; i < cfg.Count; i++ {
			generated, err := model.Generate(src.Notes[:order], cfg.Length, rng)
			if err != nil {
				if errors.Is(err, markov.ErrEmptyModel) {
					logger.Warn("Source too short for this order, skipping",
						slog.Int("order", order))
					break
				}
				return fmt.Errorf("generation at order %d failed: %w", order, err)
			}
			fmt.Printf("Melody %d: %s\n", i+1, strings.Join(generated, " "))

			hist, err := markov.Histogram(generated)
			if err != nil {
				return err
			}
			hists = append(hists, hist)

			// Rhythm is drawn independently of pitch, on purpose.
			notes := melody.Zip(generated, melody.RandomBeats(len(generated), rng))
			name := fmt.Sprintf("%s_order%d_ex%d.mid", src.Name, order, i+1)
			path := filepath.Join(cfg.OutputDir, name)
			if err := midi.WriteFile(path, src.Name, src.Tempo, notes); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
			logger.Info("Wrote generated melody", slog.String("file", path))

			if preview == nil {
				preview = notes
			}
		}

		if len(hists) > 0 {
			mean := meanHistogram(hists)
			fmt.Printf("Mean note distribution over %d generated melodies:\n", len(hists))
			printHistogram(os.Stdout, mean)
			fmt.Printf("Divergence from the source distribution: %.4f\n",
				markov.Divergence(srcHist, mean))
		}
	}

	if play && preview != nil {
		logger.Info("Playing preview", slog.Int("notes", len(preview)))
		if err := player.Play(preview, src.Tempo); err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
	}
	return nil
}

// chooseSource resolves the melody to analyze: an explicit JSON file, a
// named built-in, or an interactive prompt matching the original demo.
func chooseSource(melodyFlag, filePath string, in io.Reader, out io.Writer) (melody.Source, error) {
	if filePath != "" {
		return melody.Load(filePath)
	}

	switch strings.ToLower(melodyFlag) {
	case "1", "au_clair":
		return melody.AuClairDeLaLune(), nil
	case "2", "marseillaise":
		return melody.Marseillaise(), nil
	case "":
		// fall through to the prompt
	default:
		return melody.Source{}, fmt.Errorf("unknown melody %q", melodyFlag)
	}

	fmt.Fprintln(out, "Choose a source melody:")
	fmt.Fprintln(out, "  1. Au clair de la lune")
	fmt.Fprintln(out, "  2. La Marseillaise")
	fmt.Fprint(out, "Your choice (1 or 2, default 1): ")

	choice, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return melody.Source{}, fmt.Errorf("failed to read choice: %w", err)
	}
	if strings.TrimSpace(choice) == "2" {
		return melody.Marseillaise(), nil
	}
	return melody.AuClairDeLaLune(), nil
}
