// Command taskopt is a demonstration CLI for the route optimizer: it
// reads a competition task as JSON, runs the iteratively-refined DP
// route search, and prints the optimized distance alongside the
// centre-route baseline.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/aerotask/routeopt/geod"
	"github.com/aerotask/routeopt/route"
	"github.com/aerotask/routeopt/turnpoint"
)

type jsonTurnpoint struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	RadiusM float64 `json:"radius_m"`
	Type    string  `json:"type"`
	Name    string  `json:"name"`
}

type jsonTask struct {
	Turnpoints  []jsonTurnpoint `json:"turnpoints"`
	GoalType    string          `json:"goal_type"`
	LineLengthM float64         `json:"line_length_m"`
}

func roleFromType(t string) turnpoint.Role {
	switch t {
	case "TAKEOFF":
		return turnpoint.RoleTakeoff
	case "SSS":
		return turnpoint.RoleSSS
	case "ESS":
		return turnpoint.RoleESS
	default:
		return turnpoint.RoleNone
	}
}

func toTaskInput(task jsonTask) turnpoint.TaskInput {
	in := turnpoint.TaskInput{
		Turnpoints:  make([]turnpoint.Input, len(task.Turnpoints)),
		LineLengthM: task.LineLengthM,
	}
	if task.GoalType == "LINE" {
		in.GoalType = turnpoint.GoalLineType
	}
	for i, tp := range task.Turnpoints {
		in.Turnpoints[i] = turnpoint.Input{
			Lat:     geod.Degrees(tp.Lat),
			Lon:     geod.Degrees(tp.Lon),
			RadiusM: tp.RadiusM,
			Role:    roleFromType(tp.Type),
			Name:    tp.Name,
		}
	}
	return in
}

func main() {
	taskPath := flag.String("task", "", "path to a task JSON file")
	takeoffOverride := flag.String("takeoff", "", "optional \"lat,lon\" override for the takeoff centre, decimal or DMS (e.g. \"46.5N,7.5E\")")
	angleStep := flag.Int("angle-step", route.DefaultConfig().AngleStepDeg, "perimeter sampling angle step in degrees")
	beamWidth := flag.Int("beam-width", route.DefaultConfig().BeamWidth, "DP beam width")
	iterations := flag.Int("iterations", route.DefaultConfig().Iterations, "refinement pass cap")
	flag.Parse()

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync() //nolint:errcheck

	if *taskPath == "" {
		logger.Fatal("missing required -task flag")
	}

	data, err := os.ReadFile(*taskPath)
	if err != nil {
		logger.Fatalw("reading task file", "path", *taskPath, "error", err)
	}

	var task jsonTask
	if err := json.Unmarshal(data, &task); err != nil {
		logger.Fatalw("parsing task JSON", "error", err)
	}

	input := toTaskInput(task)
	if *takeoffOverride != "" && len(input.Turnpoints) > 0 {
		lat, lon, err := parseLatLon(*takeoffOverride)
		if err != nil {
			logger.Fatalw("parsing -takeoff override", "error", err)
		}
		input.Turnpoints[0].Lat = lat
		input.Turnpoints[0].Lon = lon
	}

	turnpoints, err := turnpoint.FromTask(input)
	if err != nil {
		logger.Fatalw("converting task to turnpoints", "error", err)
	}

	cfg := route.Config{AngleStepDeg: *angleStep, BeamWidth: *beamWidth, Iterations: *iterations}
	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	centre := route.CentreDistance(turnpoints)

	result, err := route.Optimize(context.Background(), turnpoints, cfg)
	if err != nil {
		logger.Fatalw("optimizing route", "error", err)
	}

	savingsM, savingsPct := route.Savings(centre, result.Distance)

	logger.Infow("route optimized",
		"turnpoints", len(turnpoints),
		"centre_km", centre.Metre()/1000,
		"optimized_km", result.Distance.Metre()/1000,
		"savings_km", savingsM/1000,
		"savings_percent", savingsPct,
	)

	for i, p := range result.Route {
		fmt.Printf("%2d  %s\n", i, geod.FormatDMS(p.Lat, geod.FormatDegMin, 2)+" "+geod.FormatDMS(p.Lon, geod.FormatDegMin, 2))
	}
}

func parseLatLon(s string) (geod.Degrees, geod.Degrees, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("taskopt: expected \"lat,lon\", got %q", s)
	}
	lat, err := geod.ParseDMS(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	lon, err := geod.ParseDMS(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}
