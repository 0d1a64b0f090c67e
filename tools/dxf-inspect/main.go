// seehuhn.de/go/dxf - a library for reading DXF files
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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/config"
	"seehuhn.de/go/dxf/tools/internal/buildinfo"
	"seehuhn.de/go/dxf/tools/internal/profile"
)

var (
	configFile = flag.String("config", "", "read options from the YAML `file`")
	expandEnv  = flag.Bool("config.expand-env", false, "expand ${var} in the configuration file")
	encoding   = flag.String("encoding", "", "override the character `encoding` of the file")
	headerOnly = flag.Bool("header-only", false, "do not locate the ENTITIES section")
	verbose    = flag.Bool("v", false, "show debug messages")
	tablesArg  = flag.String("tables", "", "comma-separated `list` of tables to show (default layers,ltypes,styles,dimstyles)")
	solidArg   = flag.String("solid", "", "dump the ACIS data for the entity with the given `handle`, or list all records for \"*\"")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

var defaultTables = []string{"layers", "ltypes", "styles", "dimstyles"}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "dxf-inspect - show the symbol tables of DXF files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("dxf-inspect"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect [options] <file.dxf>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.dxf   one or more DXF files (ASCII or binary)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables DXF_ENCODING, DXF_HEADER_ONLY, ... set reader options.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect drawing.dxf\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect -tables header,layers -encoding CP1251 plan.dxf\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect -solid 2A model.dxf\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	fs := afero.NewOsFs()

	cfg := &config.Config{}
	if *configFile != "" {
		var lookup func(string) (string, bool)
		if *expandEnv {
			lookup = os.LookupEnv
		}
		cfg, err = config.Load(fs, *configFile, lookup)
		if err != nil {
			return err
		}
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}
	logger := newLogger(logLevel)

	opt := dxf.DefaultOptions()
	opt.Logger = logger
	err = opt.SetFromEnv(os.LookupEnv)
	if err != nil {
		return err
	}
	err = cfg.Apply(opt)
	if err != nil {
		return err
	}
	if *encoding != "" {
		opt.Encoding = *encoding
	}
	if *headerOnly {
		opt.HeaderOnly = true
	}

	tables := cfg.Tables
	if *tablesArg != "" {
		tables = strings.Split(*tablesArg, ",")
	}
	if len(tables) == 0 {
		tables = defaultTables
	}

	for _, fname := range flag.Args() {
		err := inspect(fs, fname, opt, tables)
		if err != nil {
			return err
		}
	}
	return nil
}

func newLogger(name string) log.Logger {
	var allow level.Option
	switch strings.ToLower(name) {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	return level.NewFilter(logger, allow)
}

func inspect(fs afero.Fs, fname string, opt *dxf.Options, tables []string) error {
	d, err := dxf.OpenFS(fs, fname, opt)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	defer d.Close()

	out := os.Stdout
	printSummary(out, fname, d)
	for _, name := range tables {
		err := printTable(out, d, strings.TrimSpace(name))
		if err != nil {
			return err
		}
	}
	if *solidArg != "" {
		printSolid(out, d, *solidArg)
	}
	return nil
}
