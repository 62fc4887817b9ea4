package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mdbook-language-tabs/internal/check"
	"git.home.luguber.info/inful/mdbook-language-tabs/internal/mdbook"
	"git.home.luguber.info/inful/mdbook-language-tabs/internal/tabs"
	"git.home.luguber.info/inful/mdbook-language-tabs/internal/version"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Process struct{} `cmd:"" default:"1" help:"Run as an mdBook preprocessor: read [context, book] JSON from stdin, write the transformed book to stdout"`

	Supports struct {
		Renderer string `arg:"" help:"Renderer name to test"`
	} `cmd:"" help:"Exit 0 when the given renderer is supported, 1 otherwise"`

	Check struct {
		Path  string `arg:"" optional:"" default:"." help:"Book root (directory with book.toml) or markdown source directory"`
		Watch bool   `short:"w" help:"Keep running and re-check on markdown changes"`
	} `cmd:"" help:"Report tabs blocks the preprocessor would leave unchanged"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mdbook-language-tabs"),
		kong.Description("mdBook preprocessor that rewrites <Tabs> blocks into semantic HTML tab groups"))

	// stdout carries the protocol payload, so all logging goes to stderr.
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "process":
		if err := runProcess(os.Stdin, os.Stdout); err != nil {
			slog.Error("Preprocessing failed", "error", err)
			os.Exit(1)
		}

	case "supports <renderer>":
		var preprocessor tabs.Preprocessor
		if !preprocessor.Supports(CLI.Supports.Renderer) {
			os.Exit(1)
		}

	case "check", "check <path>":
		if err := runCheck(CLI.Check.Path, CLI.Check.Watch, os.Stdout); err != nil {
			slog.Error("Check failed", "error", err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("mdbook-language-tabs %s (built %s, commit %s)\n",
			version.Version, version.BuildTime, version.GitCommit)
	}
}

// runProcess implements one preprocessor invocation: decode, warn on a stale
// host version, rewrite every chapter, encode. Content the rewriter cannot
// parse passes through unchanged; only decode/encode failures are fatal.
func runProcess(stdin io.Reader, stdout io.Writer) error {
	preprocessorCtx, book, err := mdbook.ParseInput(stdin)
	if err != nil {
		return err
	}

	warning, err := mdbook.CheckVersion(preprocessorCtx.MdbookVersion)
	if err != nil {
		return err
	}
	if warning != "" {
		slog.Warn("mdBook version mismatch", "detail", warning)
	}

	var preprocessor tabs.Preprocessor
	preprocessor.Run(book)

	return mdbook.WriteBook(stdout, book)
}

// runCheck scans the book once, or keeps watching when watch is set. Reports
// go to report in both modes; logging stays on stderr.
func runCheck(path string, watch bool, report io.Writer) error {
	if watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher, err := check.NewWatcher(path, func(result *check.Result) {
			check.FormatText(report, result)
		})
		if err != nil {
			return err
		}
		return watcher.Run(ctx)
	}

	checker := &check.Checker{}
	result, err := checker.CheckBook(path)
	if err != nil {
		return err
	}

	check.FormatText(report, result)
	if result.HasIssues() {
		os.Exit(1)
	}
	return nil
}
