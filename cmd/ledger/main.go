package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fintrack/internal/backend"
	"fintrack/internal/cli"
	"fintrack/internal/config"
	"fintrack/internal/console"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/report"
	"fintrack/internal/services"
	"fintrack/internal/sheets"
	"fintrack/internal/storage"
)

func main() {
	cli.LoadEnvFile()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "", "summary", "list", "export":
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	cfg, logger := cli.LoadAndValidateConfig((*config.Config).Validate)
	logger = logger.WithComponent(applog.ComponentApp)

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	publisher, closePublisher := cli.InitEventPublisher(logger, cfg)
	defer closePublisher()

	switch cmd {
	case "":
		runMenu(logger, cfg, repo, publisher)
	case "summary":
		runSummary(repo)
	case "list":
		runList(repo)
	case "export":
		runExport(logger, cfg, repo)
	}
}

func printUsage() {
	fmt.Println("Personal finance ledger")
	fmt.Println("\nUsage:")
	fmt.Println("  ledger [command] [options]")
	fmt.Println("\nWithout a command the interactive menu starts.")
	fmt.Println("\nCommands:")
	fmt.Println("  summary   Print totals and per category breakdowns")
	fmt.Println("  list      Print every transaction")
	fmt.Println("  export    Write a spreadsheet report")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'ledger <command> -h' for more information on a command.")
}

func newApp(repo *storage.SQLiteRepository, publisher services.EventPublisher, writer sheets.WorkbookWriter) *console.App {
	return console.NewApp(
		services.NewLedgerService(repo, publisher),
		services.NewSummaryService(repo),
		services.NewCategoryService(repo, publisher),
		writer,
		console.NewPrompter(os.Stdin, os.Stdout),
	)
}

// newWriter builds the export sink selected by EXPORT_BACKEND. A non-empty
// outDir replaces EXPORT_DIR.
func newWriter(ctx context.Context, logger *applog.Logger, cfg *config.Config, outDir string) sheets.WorkbookWriter {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		cli.Fatal(logger, "Invalid export backend", err)
	}
	if outDir != "" {
		bcfg.ExportDir = outDir
	}
	writer, err := backend.NewFactory(logger.WithComponent(applog.ComponentSheets)).CreateWriter(ctx, bcfg)
	if err != nil {
		cli.Fatal(logger, "Failed to initialize export backend", err)
	}
	return writer
}

// runMenu keeps the default SIGINT handling: Ctrl-C ends the process.
func runMenu(logger *applog.Logger, cfg *config.Config, repo *storage.SQLiteRepository, publisher services.EventPublisher) {
	ctx := context.Background()

	newApp(repo, publisher, newWriter(ctx, logger, cfg, "")).Run(ctx)
}

func runSummary(repo *storage.SQLiteRepository) {
	ctx, stop := cli.SignalContext()
	defer stop()

	newApp(repo, nil, nil).PrintSummary(ctx)
}

func runList(repo *storage.SQLiteRepository) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dateFormat := fs.String("date-format", "european", "american, european or raw")
	fs.Parse(os.Args[2:])

	f, err := core.ParseDateFormat(*dateFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := cli.SignalContext()
	defer stop()

	newApp(repo, nil, nil).PrintTransactions(ctx, f)
}

func runExport(logger *applog.Logger, cfg *config.Config, repo *storage.SQLiteRepository) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	layoutFlag := fs.String("layout", "general", "general, category or transactions")
	outDir := fs.String("out", "", "directory for .xlsx files (default EXPORT_DIR)")
	dateFormat := fs.String("date-format", "european", "date format for the transactions layout")
	fs.Parse(os.Args[2:])

	layout, err := report.ParseLayout(*layoutFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	f, err := core.ParseDateFormat(*dateFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := cli.SignalContext()
	defer stop()

	ref, err := newApp(repo, nil, newWriter(ctx, logger, cfg, *outDir)).Export(ctx, layout, f)
	if err != nil {
		cli.Fatal(logger, "Export failed", err)
	}
	fmt.Printf("Exported to %s\n", ref)
}
