package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/obraunsdorf/playbook-creator/src/auth"
	"github.com/obraunsdorf/playbook-creator/src/directors"
	"github.com/obraunsdorf/playbook-creator/src/engine"
	"github.com/obraunsdorf/playbook-creator/src/helpers"
	"github.com/obraunsdorf/playbook-creator/src/server"
	"github.com/obraunsdorf/playbook-creator/src/settings"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("Playbook Creator - playbook document server")
	log.Println("\nUsage:")
	log.Println("  playbook-creator [options]")
	log.Println("\nOptions:")
	flag.PrintDefaults()

	log.Println("\nEnvironment:")
	log.Println("  PBC_HOST, PBC_PORT, PBC_LOG_DIR, PBC_AUTH, PBC_PLAYBOOK_NAME, PBC_PLAYER_NUMBER, PBC_RESPONSE_FORMAT, ...")

	log.Println("\nExamples:")
	log.Println("  playbook-creator --players=11 --name=\"Tigers\"")
	log.Println("  playbook-creator --port=1776 --logdir=./log_files --format=bson")
}

func main() {
	// Get the global settings instance
	args := settings.GetSettings()

	// Environment first, flags on top
	if err := settings.LoadEnv(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		os.Exit(1)
	}

	// Define command line flags that map to the Arguments struct
	flag.StringVar(&args.Host, "host", args.Host, "Host name or IP address to listen on")
	flag.IntVar(&args.Port, "port", args.Port, "Port for the TCP server")
	flag.StringVar(&args.LogDir, "logdir", args.LogDir, "Directory to store log files (default: stdout only)")
	flag.BoolVar(&args.Verbose, "verbose", args.Verbose, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", args.Debug, "Enable debug mode")
	flag.BoolVar(&args.PrintToScreen, "print", args.PrintToScreen, "Print Log Messages to screen")
	flag.BoolVar(&args.AuthEnabled, "auth", args.AuthEnabled, "Enable authentication")
	flag.StringVar(&args.PlaybookName, "name", args.PlaybookName, "Name of the playbook created at startup")
	flag.IntVar(&args.PlayerNumber, "players", args.PlayerNumber, "Players per side for the startup playbook")
	flag.StringVar(&args.ResponseFormat, "format", args.ResponseFormat, "Response format (json, bson)")
	flag.DurationVar(&args.IdleTimeout, "idle", args.IdleTimeout, "Close connections idle for this long (0 disables)")
	flag.StringVar(&args.Version, "version", args.Version, "Shows version")

	// Parse the command line
	flag.Parse()

	// Validate the arguments
	if err := settings.Validate(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, err := helpers.NewLogger(args)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if args.Verbose {
		logger.Infow("Playbook Creator starting",
			"host", args.Host,
			"port", args.Port,
			"logDir", args.LogDir,
			"playbook", args.PlaybookName,
			"playerNumber", args.PlayerNumber,
			"format", args.ResponseFormat,
			"auth", args.AuthEnabled)
	}

	engine.BuildVersion = args.Version
	playbook := engine.NewPlaybook(args.PlaybookName, args.PlayerNumber)
	session := directors.NewSessionManager(directors.NewControllerWithPlaybook(playbook, logger), logger)

	var users *directors.UserService
	if args.AuthEnabled {
		users = directors.NewUserService(auth.NewUserStore(auth.DefaultHashParams), auth.NewUserFactory(), logger)
		if err := users.AddUser(args.AdminUser, args.AdminPassword); err != nil {
			logger.Fatalw("Failed to add admin user", "error", err)
		}
	}

	// Create and start the server
	srv, err := server.InitServer(args, session, users, logger)
	if err != nil {
		logger.Fatalw("Failed to initialize server", "error", err)
	}

	if err := srv.Start(); err != nil {
		logger.Fatalw("Failed to start server", "error", err)
	}

	// Handle graceful shutdown
	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM)

	<-shutdownSignal
	logger.Info("Shutting down server...")

	if err := srv.Stop(); err != nil {
		logger.Warnw("Error stopping server", "error", err)
	}
}
