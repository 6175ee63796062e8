package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/skill-seeder/internal/config"
	"github.com/KirkDiggler/skill-seeder/internal/entities"
	"github.com/KirkDiggler/skill-seeder/internal/store"
)

func main() {
	asJSON := flag.Bool("json", false, "Print full records as JSON")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	handle, err := store.Connect(ctx, &cfg.Store)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer handle.Close()

	skills, err := handle.Skills().List(ctx)
	if err != nil {
		log.Printf("Failed to list skills: %v", err)
		return
	}

	if *asJSON {
		err = printJSON(os.Stdout, skills)
	} else {
		err = printTable(os.Stdout, cfg.Store.Collection, skills)
	}
	if err != nil {
		log.Printf("Failed to print skills: %v", err)
	}
}

func printJSON(out io.Writer, skills []*entities.Skill) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(skills)
}

func printTable(out io.Writer, collection string, skills []*entities.Skill) error {
	if _, err := fmt.Fprintf(out, "Found %d skills in %s:\n", len(skills), collection); err != nil {
		return err
	}

	for _, skill := range skills {
		classes := make([]string, len(skill.Classes))
		for i, class := range skill.Classes {
			classes[i] = string(class)
		}

		effect := "-"
		if skill.Effect != nil {
			effect = fmt.Sprintf("%s %g", skill.Effect.Type, skill.Effect.Value)
			if skill.Effect.IsTimed() {
				effect = fmt.Sprintf("%s %s %g for %d", skill.Effect.Type, skill.Effect.Stat, skill.Effect.Value, skill.Effect.Duration)
			}
		}

		if _, err := fmt.Fprintf(out, "  %-20s lvl %-2d cd %-2d %-14s %-28s [%s] %s\n",
			skill.Name, skill.RequiredLevel, skill.Cooldown, skill.Type, effect,
			strings.Join(classes, ","), skill.ID); err != nil {
			return err
		}
	}
	return nil
}
