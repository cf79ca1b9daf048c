package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/2beens/gymplan/internal/config"
	"github.com/2beens/gymplan/internal/gymplan/periodization"
	"github.com/2beens/gymplan/internal/gymplan/program"

	log "github.com/sirupsen/logrus"
)

// plangen prints a generated program (or its dated schedule) as JSON,
// without the need for a running service.
func main() {
	periodizationType := flag.String("type", "", "periodization type (empty to recommend one from level and goal)")
	level := flag.String("level", string(periodization.LevelIntermediate), "training level")
	goal := flag.String("goal", string(periodization.GoalGeneralFitness), "training goal")
	weeks := flag.Int("weeks", 12, "program duration in weeks")
	frequency := flag.Int("frequency", 4, "sessions per week")
	schedule := flag.Bool("schedule", false, "print dated sessions instead of the program structure")
	start := flag.String("start", "", "schedule start date, YYYY-MM-DD (default today)")
	env := flag.String("env", "development", "environment used to read periodization overrides")
	configPath := flag.String("config", "", "optional TOML config with periodization overrides")
	flag.Parse()

	log.SetOutput(os.Stderr)

	catalog := periodization.DefaultCatalog()
	if *configPath != "" {
		cfg, err := config.Load(*env, *configPath)
		if err != nil {
			log.Fatalf("load config: %s", err)
		}
		catalog, err = catalog.WithOverrides(cfg.Periodization...)
		if err != nil {
			log.Fatalf("apply periodization overrides: %s", err)
		}
	}

	params := program.Params{
		Type:             periodization.Type(*periodizationType),
		Level:            periodization.Level(*level),
		Goal:             periodization.Goal(*goal),
		DurationWeeks:    *weeks,
		FrequencyPerWeek: *frequency,
	}
	if !params.Level.IsValid() {
		log.Fatalf("invalid level: %s", *level)
	}
	if !params.Goal.IsValid() {
		log.Fatalf("invalid goal: %s", *goal)
	}
	if params.Type == "" {
		params.Type = periodization.Recommend(params.Level, params.Goal)
		log.Infof("recommended periodization: %s", params.Type)
	}

	structure, err := program.NewGenerator(catalog).Generate(params)
	if err != nil {
		log.Fatalf("generate program: %s", err)
	}

	var out any = structure
	if *schedule {
		startDate := time.Now()
		if *start != "" {
			startDate, err = time.Parse(time.DateOnly, *start)
			if err != nil {
				log.Fatalf("parse start date: %s", err)
			}
		}
		out = structure.Schedule(startDate)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode output: %s", err)
	}
}
