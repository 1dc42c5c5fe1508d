package server

import (
	"errors"
	"fmt"
	"log"

	"github.com/brookeadam/vms-helper/internal/classifier"
	"github.com/brookeadam/vms-helper/internal/config"
	"github.com/brookeadam/vms-helper/internal/llm"
	"github.com/brookeadam/vms-helper/internal/narrative"
	"github.com/brookeadam/vms-helper/internal/partner"
	"github.com/brookeadam/vms-helper/internal/reference"
)

// BuildDeps assembles the classification pipeline from configuration:
// reference table by engine, rule set, partner map, renderer mode and
// the suggestion provider. A provider without credentials is not an
// error; the suggester degrades to manual selection.
func BuildDeps(cfg *config.Config) (Deps, error) {
	tbl, err := loadTable(cfg)
	if err != nil {
		return Deps{}, err
	}

	rules := classifier.DefaultRules()
	mappings := partner.DefaultMappings()
	if cfg.Classifier.RulesPath != "" {
		rules, err = classifier.LoadRules(cfg.Classifier.RulesPath)
		if err != nil {
			return Deps{}, err
		}
		// The same YAML file may carry a partner map; absence keeps
		// the built-in one.
		if loaded, err := partner.LoadMappings(cfg.Classifier.RulesPath); err == nil {
			mappings = loaded
		}
	}

	policy := classifier.EmptyPolicyNone
	if cfg.Classifier.EmptyPolicy == "other" {
		policy = classifier.EmptyPolicyOther
	}

	mode := narrative.ModeRaw
	if cfg.Narrative.Mode == "conjugated" {
		mode = narrative.ModeConjugated
	}

	gen, err := llm.NewTextGenerator(providerConfig(cfg))
	if err != nil {
		if !errors.Is(err, llm.ErrNoCredentials) {
			return Deps{}, err
		}
		log.Printf("LLM provider %s has no credentials; AI suggestions disabled", cfg.LLM.Provider)
		gen = nil
	}

	return Deps{
		Table:      tbl,
		Classifier: classifier.New(rules, policy),
		Partners:   partner.NewResolver(mappings, cfg.Chapter.Abbreviation),
		Suggester:  llm.NewSuggester(gen, cfg.LLM.IncludeRules),
		Renderer:   &narrative.Renderer{Mode: mode},
	}, nil
}

func loadTable(cfg *config.Config) (*reference.Table, error) {
	switch cfg.Reference.Engine {
	case "csv", "":
		return reference.Load(cfg.Reference.Path)
	case "sqlite":
		return reference.LoadSQLite(cfg.Reference.Path)
	case "postgres":
		return reference.LoadPostgres(cfg.Reference.DSN)
	default:
		return nil, fmt.Errorf("unsupported reference engine: %q", cfg.Reference.Engine)
	}
}

func providerConfig(cfg *config.Config) llm.ProviderConfig {
	switch cfg.LLM.Provider {
	case "openai":
		return llm.ProviderConfig{Provider: "openai", APIKey: cfg.LLM.OpenAIAPIKey, Model: cfg.LLM.OpenAIModel}
	case "anthropic":
		return llm.ProviderConfig{Provider: "anthropic", APIKey: cfg.LLM.AnthropicAPIKey, Model: cfg.LLM.AnthropicModel}
	default:
		return llm.ProviderConfig{Provider: "ollama", BaseURL: cfg.LLM.OllamaURL, Model: cfg.LLM.OllamaModel}
	}
}
