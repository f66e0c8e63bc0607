// Package main is the entrypoint of ytwatch.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"ytwatch/internal/channellist"
	"ytwatch/internal/config"
	"ytwatch/internal/database"
	"ytwatch/internal/extractor"
	"ytwatch/internal/logging"
	"ytwatch/internal/monitor"
	"ytwatch/internal/notifier"
	"ytwatch/internal/repo"
	"ytwatch/internal/youtubeapi"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "ytwatch",
		Short: "Watches YouTube channels and republishes new videos to Telegram",
		RunE:  run,
	}
	root.Flags().StringVar(&configPath, "config", "", "path to an optional config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logging.Init(logging.Options{
		Level:  cfg.LogLevel,
		Dir:    cfg.LogDir,
		ToFile: cfg.LogToFile,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := os.MkdirAll(cfg.StoragePath, 0o755); err != nil {
		return fmt.Errorf("failed to create storage path %q: %w", cfg.StoragePath, err)
	}

	// The store is SQLite (schema fixed by spec, engine left open); the
	// db_host/db_port/db_schema/db_username/db_password fields exist
	// for parity with the documented environment configuration but are
	// unused by a file-based engine. db_name names the database file,
	// resolved under storage_path.
	dbPath := cfg.StoragePath + "/" + cfg.DBName + ".db"
	db, err := database.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	r := repo.New(db)

	list, err := channellist.Load(cfg.ChannelsListPath)
	if err != nil {
		return fmt.Errorf("failed to load channel list: %w", err)
	}
	logging.L().Info().Int("count", len(list.Channels)).Str("list", list.Name).Msg("loaded channel list")

	ex := extractor.New("")

	var auth *youtubeapi.Auth
	if cfg.YoutubeSecretJSON != "" {
		auth, err = youtubeapi.NewAuth(cfg.YoutubeSecretJSON, cfg.StoragePath+"/youtube_token.json")
		if err != nil {
			return fmt.Errorf("failed to initialize youtube auth: %w", err)
		}
	}

	mon := monitor.New(r, ex, auth, list.Channels, list.Name, cfg.RunTgBotShortsPublish, cfg.ShortsDownloadPath)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		mon.Run(ctx, monitor.WorkerSet{
			New:     cfg.MonitorNew,
			History: cfg.MonitorHistory,
			Formats: cfg.MonitorVideoFormats,
		})
	}()

	if cfg.RunTgBot {
		if err := runNotifier(ctx, &wg, cfg, mon); err != nil {
			if errors.Is(err, notifier.ErrBotStartupFailed) {
				return fmt.Errorf("notifier failed to start: %w", err)
			}
			logging.L().Error().Err(err).Msg("notifier failed to start")
		}
	}

	wg.Wait()
	return nil
}

func runNotifier(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config, mon *monitor.Monitor) error {
	client, err := notifier.NewClient(cfg.TgBotToken)
	if err != nil {
		return err
	}

	groupID, err := strconv.ParseInt(cfg.TgGroupID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tg_group_id %q: %w", cfg.TgGroupID, err)
	}

	admins := make([]int64, 0, len(cfg.AdminIDs()))
	for _, a := range cfg.AdminIDs() {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			logging.L().Warn().Str("admin_id", a).Msg("skipping malformed admin id")
			continue
		}
		admins = append(admins, id)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		notifier.RunNewsPublisher(ctx, client, groupID, cfg.TgNewVideoTemplate, mon.News)
	}()

	if cfg.RunTgBotShortsPublish {
		wg.Add(1)
		go func() {
			defer wg.Done()
			notifier.RunShortsPublisher(ctx, client, groupID, cfg.TgShortsTemplate, mon.Shorts)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		notifier.RunInteractiveHandler(ctx, client, admins)
		client.StopReceivingUpdates()
	}()

	return nil
}
