// Command vms-helper classifies one volunteer activity and prints the
// VMS summary sentence. One shot, no server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brookeadam/vms-helper/internal/config"
	"github.com/brookeadam/vms-helper/internal/llm"
	"github.com/brookeadam/vms-helper/internal/narrative"
	"github.com/brookeadam/vms-helper/internal/server"
	"github.com/brookeadam/vms-helper/pkg/types"
)

func main() {
	task := flag.String("task", "", "What did you do? (required)")
	org := flag.String("org", "", "Organization you worked with")
	location := flag.String("location", "", "Where the activity took place")
	category := flag.String("category", "", "Override the category instead of classifying")
	subcategory := flag.String("subcategory", "", "Override the subcategory instead of classifying")
	suggest := flag.Bool("suggest", false, "Ask the configured AI provider instead of the rule table")
	output := flag.String("o", "", "Write the sentence to this file instead of stdout")
	flag.Parse()

	if *task == "" {
		fmt.Fprintln(os.Stderr, "usage: vms-helper -task \"what you did\" [-org ...] [-location ...] [-suggest] [-o out.txt]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	deps, err := server.BuildDeps(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	cat, sub := *category, *subcategory
	if cat == "" || sub == "" {
		cat, sub = classify(cfg, deps, *task, *org, *location, *suggest)
	}

	var rules, activityType string
	if row, ok := deps.Table.Row(cat, sub); ok {
		rules = row.Rules
		activityType = row.ActivityType
	}

	sentence := deps.Renderer.Render(narrative.Input{
		Category:     types.ParseCategory(cat),
		Subcategory:  sub,
		ActivityType: activityType,
		Activity: types.ActivityContext{
			TaskText:     *task,
			Organization: *org,
			Location:     *location,
		},
	})

	fmt.Printf("Category:    %s\n", cat)
	fmt.Printf("Subcategory: %s\n", sub)
	if rules != "" {
		fmt.Printf("Note:        %s\n", rules)
	}
	fmt.Println()
	fmt.Println(sentence)

	if *output != "" {
		if err := os.WriteFile(*output, []byte(sentence+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *output, err)
		}
		log.Printf("Wrote %s", *output)
	}
}

// classify picks the (category, subcategory) pair: AI when requested
// and available, otherwise the rule table plus partner qualification.
func classify(cfg *config.Config, deps server.Deps, task, org, location string, useAI bool) (string, string) {
	if useAI {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		result, err := deps.Suggester.Suggest(ctx, task, deps.Table)
		if err == nil {
			if result.Reasoning != "" {
				fmt.Printf("Reasoning:   %s\n", result.Reasoning)
			}
			return result.Category, result.Subcategory
		}

		var failure *llm.SuggestionFailure
		if errors.As(err, &failure) {
			fmt.Fprintln(os.Stderr, failure.Advisory())
		} else {
			fmt.Fprintf(os.Stderr, "AI suggestion failed: %v\n", err)
		}
		// Fall through to the rule table.
	}

	result := deps.Classifier.Classify(task)
	if result.IsEmpty() {
		return "Other", "Other – " + cfg.Chapter.Abbreviation
	}

	cat, sub, err := deps.Partners.Resolve(task, org, location, deps.Table)
	if err == nil && cat == result.Category {
		return cat, sub
	}
	return result.Category, result.Subcategory
}
