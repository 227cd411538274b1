// Package main provides a CLI tool that builds a character at a given
// level and renders its ability sheet using catalog display names.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/calder-games/progression/internal/config"
	"github.com/calder-games/progression/internal/game/ability"
	"github.com/calder-games/progression/internal/game/character"
	"github.com/calder-games/progression/internal/game/progression"
	"github.com/calder-games/progression/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	name := flag.String("name", "", "character name (required)")
	level := flag.Int("level", 1, "character level")
	flag.Parse()

	if *name == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := ability.LoadCatalog(cfg.Progression.CatalogDir)
	if err != nil {
		log.Fatalf("loading ability catalog: %v", err)
	}

	leveler, err := progression.NewLeveler(
		cfg.Progression.BasePoints,
		cfg.Progression.PointsPerLevel,
		cfg.Progression.MaxLevel,
		observability.Named(logger, "progression"),
	)
	if err != nil {
		log.Fatalf("building leveler: %v", err)
	}

	c, err := character.Build(*name, *level, leveler, observability.Named(logger, "ability"))
	if err != nil {
		log.Fatalf("building character: %v", err)
	}

	printSheet(c, catalog)

	elapsed := time.Since(start)
	fmt.Fprintf(os.Stdout, "\nrendered sheet for %s (level %d) [%s]\n", c.Name, c.Level, elapsed)
}

func printSheet(c *character.Character, catalog *ability.Catalog) {
	p := c.Abilities
	fmt.Printf("%s (level %d)\n", c.Name, c.Level)
	fmt.Printf("points: %d active, %d allocated, %d pool ceiling\n",
		p.AbilityPoints(), p.AllocatedPoints(), p.MaxAbilityPoints())

	printCategory(catalog, p.Martial(), ability.MartialIDs())
	printCategory(catalog, p.Magical(), ability.MagicalIDs())
	printCategory(catalog, p.Crafting(), ability.CraftingIDs())
	printCategory(catalog, p.Survival(), ability.SurvivalIDs())
	printCategory(catalog, p.Stealth(), ability.StealthIDs())
}

func printCategory[K ability.IdentifierType](catalog *ability.Catalog, c *ability.Category[K], ids []K) {
	fmt.Printf("\n%s\n", strings.ToUpper(c.Kind().String()))
	for _, id := range ids {
		m, err := c.Ability(id)
		if err != nil {
			continue
		}
		marker := " "
		if m.Unlocked() {
			marker = "*"
		}
		fmt.Printf("  [%s] %-24s %d/%d (allocated %d)\n",
			marker, catalog.DisplayName(c.Kind(), id.String()), m.Point, m.MaxPoint, m.AllocatedPoint)
	}
}
