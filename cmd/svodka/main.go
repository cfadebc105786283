package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"svodka/internal/amqp"
	"svodka/internal/cli"
	applog "svodka/internal/log"
	"svodka/internal/report"
)

const usage = `usage: svodka <command> [args]

commands:
  home <timestamp>              month-to-date report ("YYYY-MM-DD HH:MM:SS")
  category <name> [ref]         trailing-90-day report for one category
  cashback <year> <month>       cashback per category for one month
  history [kind]                recently archived reports
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)
	ctx := context.Background()

	archiveRepo := cli.InitArchive(logger, cfg.SQLiteDBPath)
	defer archiveRepo.Close()

	if os.Args[1] == "history" {
		kind := ""
		if len(os.Args) > 2 {
			kind = os.Args[2]
		}
		entries, err := archiveRepo.ListRecent(ctx, kind, 10)
		if err != nil {
			logger.Error("Failed to list archived reports", "error", err)
			os.Exit(1)
		}
		for _, e := range entries {
			fmt.Printf("%d\t%s\t%s\t%s\n", e.ID, e.GeneratedAt.Format("2006-01-02 15:04:05"), e.Kind, e.Ref)
		}
		return
	}

	ledgerSrc := cli.InitLedger(ctx, logger, cfg)
	quoteSrc := cli.InitMarket(cfg)
	settingsSrc := cli.NewSettingsSource(cfg.SettingsFile)

	var notifier report.Notifier
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Notifications are optional plumbing; a report still runs without them.
			logger.Warn("AMQP unavailable, continuing without notifications", "error", err)
		} else {
			defer client.Close()
			notifier = client
		}
	}

	svc := report.NewService(ledgerSrc, settingsSrc, quoteSrc, archiveRepo, notifier)

	switch os.Args[1] {
	case "home":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		out, err := svc.HomePage(ctx, os.Args[2])
		exitOnError(logger, "home report", err)
		printJSON(logger, out)
	case "category":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		ref := ""
		if len(os.Args) > 3 {
			ref = os.Args[3]
		}
		out, err := svc.SpendingByCategory(ctx, os.Args[2], ref)
		exitOnError(logger, "category report", err)
		printJSON(logger, out)
	case "cashback":
		if len(os.Args) < 4 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		year, errY := strconv.Atoi(os.Args[2])
		month, errM := strconv.Atoi(os.Args[3])
		if errY != nil || errM != nil {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		out, err := svc.CashbackByCategory(ctx, year, month)
		exitOnError(logger, "cashback analysis", err)
		printJSON(logger, out)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func exitOnError(logger *applog.Logger, what string, err error) {
	if err != nil {
		logger.Error("Report generation failed", "report", what, "error", err)
		os.Exit(1)
	}
}

func printJSON(logger *applog.Logger, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error("Failed to encode report", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
