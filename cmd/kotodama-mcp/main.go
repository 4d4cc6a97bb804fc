package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"

	"github.com/hikaeme/kotodama"
	"github.com/hikaeme/kotodama/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("kotodama-mcp %s (%s)\n", Version, GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "analyze":
			os.Exit(runAnalyze(os.Args[2:]))
		}
	}

	setupLogging()

	srv := server.New(kotodama.NewEngine(
		kotodama.WithHonorifics(kotodama.LoadHonorifics()),
	))
	if err := srv.Run(context.Background()); err != nil {
		kotodama.Logger.Fatal().Err(err).Msg("server error")
	}
}

func printUsage() {
	fmt.Println("kotodama-mcp - Japanese text measurement and linguistic analysis")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  kotodama-mcp                 Serve the MCP protocol over stdin/stdout")
	fmt.Println("  kotodama-mcp analyze <text>  Print the linguistic report for <text>")
	fmt.Println()
	fmt.Println("Analyze flags:")
	fmt.Println("  --json     Print the report entries as pretty-printed JSON")
	fmt.Println("  --debug    Dump the token stream before the report")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  KOTODAMA_LOG_LEVEL=debug     Enable debug logging on stderr")
}

// setupLogging keeps stdout clean for the protocol and logs to stderr.
func setupLogging() {
	level := zerolog.InfoLevel
	if os.Getenv("KOTODAMA_LOG_LEVEL") == "debug" {
		level = zerolog.DebugLevel
	}
	kotodama.EnableConsoleLogging(level)
}

// runAnalyze is the one-shot terminal mode: analyze the given text and print
// the report directly, without the protocol framing.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "print report entries as JSON")
	debug := fs.Bool("debug", false, "dump the token stream")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		color.Redln("analyze: no text given")
		return 2
	}

	if *debug {
		kotodama.EnableConsoleLogging(zerolog.DebugLevel)
	}

	ctx := context.Background()
	engine := kotodama.NewEngine(
		kotodama.WithHonorifics(kotodama.LoadHonorifics()),
	)

	if *debug {
		tokens, err := kotodama.Tokenize(ctx, text)
		if err != nil {
			color.Redln("tokenization failed:", err)
			return 1
		}
		pp.Println(tokens)
	}

	report, err := engine.Analyze(ctx, text)
	if err != nil {
		color.Redln("analysis failed:", err)
		return 1
	}

	if *asJSON {
		b, err := json.Marshal(report.Entries())
		if err != nil {
			color.Redln("encoding failed:", err)
			return 1
		}
		os.Stdout.Write(pretty.Pretty(b))
		return 0
	}

	color.Bold.Println("Linguistic analysis report")
	for _, m := range report.Entries() {
		value := m.Value
		if value == "" {
			value = "(none)"
		}
		color.Cyan.Printf("%-32s", m.Name)
		fmt.Printf(" %s", value)
		color.Gray.Printf("  [%s]\n", m.Unit)
	}
	return 0
}
