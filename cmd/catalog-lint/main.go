// Package main validates an ability catalog directory: every file must
// parse, every id must resolve to its category's enumeration, and coverage
// gaps are reported.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/calder-games/progression/internal/game/ability"
)

func main() {
	start := time.Now()

	dir := flag.String("dir", "catalog", "path to the ability catalog directory")
	strict := flag.Bool("strict", false, "fail when an ability has no catalog entry")
	flag.Parse()

	catalog, err := ability.LoadCatalog(*dir)
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}

	missing := 0
	for _, kind := range ability.Kinds() {
		roster := rosterIDs(kind)
		gaps := 0
		for _, id := range roster {
			if _, ok := catalog.Info(kind, id); !ok {
				fmt.Fprintf(os.Stderr, "missing entry: %s/%s\n", kind, id)
				gaps++
			}
		}
		missing += gaps
		fmt.Printf("%-10s %d/%d abilities documented\n", kind, len(roster)-gaps, len(roster))
	}

	elapsed := time.Since(start)
	fmt.Printf("checked %q [%s]\n", *dir, elapsed)
	if *strict && missing > 0 {
		os.Exit(1)
	}
}

// rosterIDs returns the catalog id strings of every ability in the kind's
// enumeration.
func rosterIDs(kind ability.Kind) []string {
	var out []string
	switch kind {
	case ability.KindMartial:
		for _, id := range ability.MartialIDs() {
			out = append(out, id.String())
		}
	case ability.KindMagical:
		for _, id := range ability.MagicalIDs() {
			out = append(out, id.String())
		}
	case ability.KindCrafting:
		for _, id := range ability.CraftingIDs() {
			out = append(out, id.String())
		}
	case ability.KindSurvival:
		for _, id := range ability.SurvivalIDs() {
			out = append(out, id.String())
		}
	case ability.KindStealth:
		for _, id := range ability.StealthIDs() {
			out = append(out, id.String())
		}
	}
	return out
}
