// Plan obstacle-clearing hulls for a route.
//
//	hullroute route.toml hulls.yaml
//	hullroute -o png -s 8 --preview drawing.svg hulls.png
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hullroute"
	"github.com/osuushi/hullroute/internal/dbg"
	"github.com/osuushi/hullroute/render"
	"github.com/osuushi/hullroute/serial"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

const pngFormat = "png"

var (
	inputPath  = kingpin.Arg("input", "Route to plan (toml, json, yaml or svg).").Required().ExistingFile()
	outputPath = kingpin.Arg("output", "Where to write the planned hulls.").Required().String()

	outputFormat = kingpin.Flag("output", "Output format.").Short('o').Envar("HULLROUTE_FORMAT").Default("toml").Enum("toml", "json", "yaml", "yml", pngFormat)
	inputFormat  = kingpin.Flag("input-format", "Input format. Guessed from the extension if not given.").Envar("HULLROUTE_INPUT_FORMAT").Enum("toml", "json", "yaml", "yml", "svg")
	scale        = kingpin.Flag("scale", "Pixels per grid unit in png output.").Short('s').Envar("HULLROUTE_SCALE").Default("1").Int()
	workers      = kingpin.Flag("workers", "Legs planned at once.").Envar("HULLROUTE_WORKERS").Default(strconv.Itoa(runtime.NumCPU())).Int()
	trace        = kingpin.Flag("trace", "Log every pass of every leg.").Bool()
	preview      = kingpin.Flag("preview", "Print the rendered plan to the terminal (iTerm only).").Bool()
	cpuProfile   = kingpin.Flag("cpuprofile", "Write a CPU profile to the working directory.").Bool()
	noColor      = kingpin.Flag("no-color", "Disable colored messages.").Bool()
)

var au aurora.Aurora

func main() {
	kingpin.Parse()
	log.SetFlags(0)
	au = aurora.NewAurora(!*noColor)

	if err := run(); err != nil {
		log.Print(au.Red(fmt.Sprintf("hullroute: %v", err)))
		os.Exit(1)
	}
}

func run() error {
	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	input, err := readInput()
	if err != nil {
		return err
	}

	waypoints := input.Waypoints()
	for i, polygon := range input.BlockedWaypoints() {
		log.Print(au.Yellow(fmt.Sprintf("warning: waypoint %d %v lies in polygon %d", i, waypoints[i], polygon)))
	}

	options := hullroute.Options{Workers: *workers}
	if *trace {
		options.Tracer = traceLeg
	}
	output, err := hullroute.Plan(input, options)
	if err != nil {
		return err
	}
	log.Printf("planned %d legs around %d polygons", len(output.Hulls), len(input.Polygons))

	if err := writeOutput(output); err != nil {
		return err
	}
	if *preview {
		return render.Preview(os.Stdout, output, render.Options{Scale: *scale})
	}
	return nil
}

func readInput() (hullroute.Input, error) {
	var format serial.Format
	var err error
	if *inputFormat != "" {
		format, err = serial.ParseFormat(*inputFormat)
	} else {
		format, err = serial.FormatForPath(*inputPath)
	}
	if err != nil {
		return hullroute.Input{}, err
	}

	file, err := os.Open(*inputPath)
	if err != nil {
		return hullroute.Input{}, err
	}
	defer file.Close()
	input, err := serial.DecodeInput(file, format)
	return input, errors.Wrap(err, *inputPath)
}

func writeOutput(output *hullroute.Output) (err error) {
	file, err := os.Create(*outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	if *outputFormat == pngFormat {
		return render.EncodePNG(file, output, render.Options{Scale: *scale})
	}
	format, err := serial.ParseFormat(*outputFormat)
	if err != nil {
		return err
	}
	return serial.EncodeOutput(file, output, format)
}

// Polygons are named rather than numbered, so that the same obstacle is easy
// to follow across legs in a long trace.
func traceLeg(pass hullroute.LegPass) {
	names := make([]string, 0, len(pass.Polygons))
	for _, i := range pass.Polygons {
		names = append(names, dbg.Name(fmt.Sprintf("polygon %d", i)))
	}
	state := au.Green("settled")
	if pass.Grew {
		state = au.Cyan("grew")
	}
	log.Printf(
		"leg %d pass %d: %s, hit %v, %d new vertices, %d candidates, %d edges",
		pass.Leg, pass.Pass, state, names, pass.Discovered.Len(), pass.Candidates, pass.HullSize,
	)
}
