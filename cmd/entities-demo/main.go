// Package main implements a small demonstration binary for the entities
// library. It builds a learning object hierarchy, mutates it, serializes
// it to JSON and reads it back, logging each step.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"

	"github.com/onslate/entities/domain"
	"github.com/onslate/entities/domain/taxonomy"
	"github.com/onslate/entities/internal/config"
	"github.com/onslate/entities/internal/platform/logger"
)

func main() {
	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := runDemo(cfg); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Configuration loaded",
		"log_level", cfg.Logging.Level,
		"taxonomy_file", cfg.Taxonomy.File)

	return cfg, nil
}

// runDemo builds a small object graph, round-trips it through JSON and
// logs the result.
func runDemo(cfg *config.Config) error {
	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	author, err := domain.NewUser("Ada Lovelace", "ada@example.edu")
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	object := domain.NewLearningObjectWithVocabulary(author, "Intro to Algorithms", vocab)
	if err := object.SetLength(domain.LengthModule); err != nil {
		return fmt.Errorf("failed to set length: %w", err)
	}
	object.AddGoal("understand asymptotic analysis")

	outcomeIndex := object.AddOutcome(nil)
	outcome := object.Outcomes()[outcomeIndex]
	if err := outcome.SetVerb("list"); err != nil {
		return fmt.Errorf("failed to set verb: %w", err)
	}
	if err := outcome.SetText("common sorting algorithms"); err != nil {
		return fmt.Errorf("failed to set outcome text: %w", err)
	}

	planIndex := outcome.AddAssessment()
	plan := outcome.Assessments()[planIndex]
	if err := plan.SetText("ten-question recall quiz"); err != nil {
		return fmt.Errorf("failed to set plan text: %w", err)
	}

	standard := domain.NewStandardOutcome()
	if err := standard.SetAuthor("CAE"); err != nil {
		return fmt.Errorf("failed to set standard author: %w", err)
	}
	if err := standard.SetName("CAE-CD"); err != nil {
		return fmt.Errorf("failed to set standard name: %w", err)
	}
	if err := standard.SetDate("2019"); err != nil {
		return fmt.Errorf("failed to set standard date: %w", err)
	}
	if err := standard.SetOutcome("analyze algorithm complexity"); err != nil {
		return fmt.Errorf("failed to set standard text: %w", err)
	}
	outcome.MapTo(standard)

	object.Publish()

	slog.Info("Object built",
		"name", object.Name(),
		"author", author.Name,
		"outcomes", len(object.Outcomes()),
		"published", object.Published())

	payload, err := json.MarshalIndent(object, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize object: %w", err)
	}
	fmt.Println(string(payload))

	restored := domain.NewLearningObjectWithVocabulary(author, "", vocab)
	if err := json.Unmarshal(payload, restored); err != nil {
		return fmt.Errorf("failed to deserialize object: %w", err)
	}

	slog.Info("Round trip complete",
		"name", restored.Name(),
		"outcomes", len(restored.Outcomes()),
		"status", restored.Status())

	return nil
}

// loadVocabulary returns the vocabulary named by the config, or the
// built-in defaults when no file is configured.
func loadVocabulary(cfg *config.Config) (taxonomy.Provider, error) {
	if cfg.Taxonomy.File == "" {
		return taxonomy.Default(), nil
	}
	vocab, err := taxonomy.LoadFile(cfg.Taxonomy.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy file: %w", err)
	}
	slog.Info("Loaded taxonomy vocabulary", "file", cfg.Taxonomy.File)
	return vocab, nil
}
