package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sadopc/utmtag/internal/config"
	"github.com/sadopc/utmtag/internal/core/utm"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

func initCmd() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	variantFlag := fs.String("variant", "", "Tagging variant: open, fixed (default: prompt interactively)")
	outputFlag := fs.String("output", "", "Config file path (default: ~/.config/utmtag/config.yaml)")
	forceFlag := fs.Bool("force", false, "Overwrite an existing config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: utmtag init [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Write a config file with the default settings.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  utmtag init\n")
		fmt.Fprintf(os.Stderr, "  utmtag init --variant fixed\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	path := *outputFlag
	if path == "" {
		p, err := config.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !*forceFlag {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		os.Exit(1)
	}

	cfg, err := buildInitConfig(os.Stdin, os.Stdout, *variantFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.Save(cfg, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

// buildInitConfig returns the default config adjusted by the user's
// answers. Prompts are skipped for values given as flags.
func buildInitConfig(in io.Reader, w io.Writer, variant string) (config.Config, error) {
	cfg := config.DefaultConfig()
	reader := bufio.NewReader(in)

	if variant == "" {
		fmt.Fprintf(w, "Variant, open or fixed [%s]: ", cfg.Variant)
		variant = readLine(reader)
	}
	if variant != "" {
		v, err := utm.ParseVariant(variant)
		if err != nil {
			return cfg, err
		}
		cfg.Variant = string(v)
	}

	fmt.Fprintf(w, "Default utm_source [%s]: ", cfg.DefaultSource)
	if s := readLine(reader); s != "" {
		cfg.DefaultSource = s
	}

	if cfg.Variant == string(utm.VariantFixed) {
		fmt.Fprintf(w, "Fixed utm_medium [%s]: ", cfg.FixedMedium)
		if s := readLine(reader); s != "" {
			cfg.FixedMedium = s
		}
	} else {
		fmt.Fprintf(w, "Default utm_campaign [%s]: ", cfg.DefaultCampaign)
		if s := readLine(reader); s != "" {
			cfg.DefaultCampaign = s
		}
	}

	fmt.Fprintf(w, "Theme, one of %s or a custom theme name [%s]: ", strings.Join(theme.Names(), ", "), cfg.Theme)
	if s := readLine(reader); s != "" {
		cfg.Theme = s
	}
	return cfg, nil
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
