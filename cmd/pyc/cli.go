package main

import (
	"flag"
	"fmt"
	"os"
)

// version is stamped at release time; "dev" covers local builds.
var version = "dev"

// CLIConfig holds the parsed command-line configuration (spec.md §6:
// "pyc [-c CMD | SCRIPT] [-C CONFIG] [-l LANG] [-s SHELL]").
type CLIConfig struct {
	Command     string
	ConfigFile  string
	Language    string
	Shell       string
	Script      string
	ShowVersion bool
}

// ParseCLI parses command-line arguments and returns the configuration.
func ParseCLI() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.Command, "c", "", "run CMD as a single command and exit (oneshot mode)")
	flag.StringVar(&cfg.ConfigFile, "C", "", "path to config file (default: $HOME/.config/pyc/pyc.yml)")
	flag.StringVar(&cfg.Language, "l", "", "override the configured source language")
	flag.StringVar(&cfg.Shell, "s", "", "override the configured shell executable")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "print version and exit")
	flag.Usage = printUsage
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		cfg.Script = args[0]
	}

	return cfg
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-c CMD | SCRIPT] [-C CONFIG] [-l LANG] [-s SHELL]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nWith no -c and no SCRIPT, pyc starts an interactive session.\n")
}
