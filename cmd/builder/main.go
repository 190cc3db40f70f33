/*
Command builder generates the verse-per-page static site from raw per-book
scripture JSON.

	builder build                  # build the whole site
	builder build --book genesis   # build only one book
	builder clean                  # delete the output directory

Outputs, under the configured output directory:

	index.html                       — book list (home page)
	{book-slug}/index.html           — book hub (chapter list)
	{book-slug}/{ch}/index.html      — chapter hub (verse list)
	{book-slug}/{ch}/{v}/index.html  — one page per verse
	sitemap.xml, sitemap-*.xml.gz    — sitemap index and per-book sitemaps
*/
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

const version = "1.0.0"

// CLI defines the command-line interface for builder.
var CLI struct {
	Config  string `name:"config" short:"c" help:"Path to the site config YAML" default:"site.yaml" type:"path" env:"BUILDER_CONFIG"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Build   BuildCmd   `cmd:"" default:"withargs" help:"Build the static site"`
	Clean   CleanCmd   `cmd:"" help:"Delete the output directory"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// BuildCmd runs the full pipeline: assemble, flatten, render, sitemaps.
type BuildCmd struct {
	Book string `help:"Only build pages for this book slug"`
	Out  string `help:"Override the configured output directory" type:"path"`
}

func (b BuildCmd) Run() error { return runBuild(b) }

// CleanCmd removes the output directory.
type CleanCmd struct{}

func (CleanCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", cfg.OutputDir)
	return nil
}

// VersionCmd prints the builder version.
type VersionCmd struct{}

func (VersionCmd) Run() error {
	fmt.Println("builder", version)
	return nil
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("builder"),
		kong.Description("Static site builder: one page per scripture verse."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := ctx.Run(); err != nil {
		slog.Error("builder failed", "error", err)
		os.Exit(1)
	}
}
