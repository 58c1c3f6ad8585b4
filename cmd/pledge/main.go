// RadioKPledgeImageGeneration - pledge thermometer images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command pledge fills a thermometer template according to the progress of a
// donation drive.
//
// Usage:
//
//	pledge [flags] GOAL CURRENT [INPUT [OUTPUT [FILL [EDGE]]]]
//
// GOAL and CURRENT are whole amounts, optionally prefixed by "$".  INPUT is
// the template PNG and OUTPUT the file to write; the output name always gets
// a ".png" extension.  FILL and EDGE are colours in the form r,g,b or
// r,g,b,a.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	pledge "github.com/cheeem/RadioKPledgeImageGeneration"
)

// version is set via -ldflags at build time; defaults to "dev" for local builds.
var version = "dev"

var showVersion = flag.Bool("version", false, "Show version")

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("pledge: ")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] GOAL CURRENT [INPUT [OUTPUT [FILL [EDGE]]]]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Examples:\n  %[1]s 10000 4500\n  %[1]s 500 550\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("pledge version %s\n", version)
		return
	}

	out, err := run(flag.Args(), log.Default())
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
}

// config holds the validated command-line arguments.
type config struct {
	progress pledge.Progress
	input    string
	output   string
	fill     pledge.Filler
}

func parseArgs(args []string) (*config, error) {
	cfg := &config{
		input:  pledge.DefaultInput,
		output: pledge.DefaultOutput,
		fill:   *pledge.NewFiller(),
	}

	if len(args) < 1 {
		return nil, fmt.Errorf("%w: please provide the donation goal and the current donation amount", errUsage)
	}
	goal, err := pledge.ParseAmount(args[0])
	if err != nil {
		return nil, fmt.Errorf("donation goal: %w", err)
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: please provide the current donation amount", errUsage)
	}
	current, err := pledge.ParseAmount(args[1])
	if err != nil {
		return nil, fmt.Errorf("current donation amount: %w", err)
	}
	cfg.progress = pledge.Progress{Goal: goal, Current: current}
	if err := cfg.progress.Validate(); err != nil {
		return nil, err
	}

	if len(args) > 2 {
		cfg.input = args[2]
	}
	if len(args) > 3 {
		cfg.output = args[3]
	}
	if len(args) > 4 {
		if cfg.fill.FillColor, err = pledge.ParseColor(args[4]); err != nil {
			return nil, fmt.Errorf("fill colour: %w", err)
		}
	}
	if len(args) > 5 {
		if cfg.fill.EdgeColor, err = pledge.ParseColor(args[5]); err != nil {
			return nil, fmt.Errorf("edge colour: %w", err)
		}
	}
	if len(args) > 6 {
		return nil, fmt.Errorf("%w: too many arguments", errUsage)
	}

	return cfg, nil
}

// run fills the template named in args and returns the name of the file
// written.  Notices for the user are sent to logger.
func run(args []string, logger *log.Logger) (string, error) {
	cfg, err := parseArgs(args)
	if err != nil {
		return "", err
	}

	img, err := pledge.Load(cfg.input)
	if err != nil {
		return "", err
	}

	res := cfg.fill.Fill(img, cfg.progress)
	if res.Clamped {
		logger.Print("current donation amount is larger than the donation goal, filling 100% of the image")
	}
	if !res.Vertical.Found() {
		logger.Printf("warning: no thermometer outline in colour %s found in %s",
			pledge.FormatColor(cfg.fill.EdgeColor), cfg.input)
	}

	return pledge.Save(cfg.output, img)
}
