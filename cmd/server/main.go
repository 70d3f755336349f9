// main.go
//
// A personal-development tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of growthdb.
// growthdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// growthdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with growthdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/localnerve/growthdb/data"
	"github.com/localnerve/growthdb/internal/config"
	"github.com/localnerve/growthdb/internal/database"
	"github.com/localnerve/growthdb/internal/logging"
	"github.com/localnerve/growthdb/internal/server"
	"github.com/localnerve/growthdb/internal/services"
	"go.uber.org/zap"

	_ "github.com/localnerve/growthdb/docs/api" // Swagger docs
)

// @title GrowthDB API
// @version 1.0.0
// @description Personal-development tracking service: goals, habits, journaling, identity work and progress analytics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/growthdb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var cli struct {
	EnvFile string `help:"Load environment variables from this file first." type:"path" name:"env-file"`
	Port    string `help:"Listen port, overrides PORT." short:"p"`
	HelpEnv bool   `help:"List the environment variables and exit." name:"help-env"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("growthdb"),
		kong.Description("Personal-development tracking data service"),
		kong.UsageOnError(),
	)

	if cli.HelpEnv {
		text, err := config.Help()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(cli.EnvFile)
	if err != nil {
		return err
	}
	if cli.Port != "" {
		cfg.Port = cli.Port
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	quotes, err := services.LoadQuoteLibrary(data.WisdomQuotes)
	if err != nil {
		return err
	}

	app := server.New(server.Options{
		Config: cfg,
		DB:     db,
		Log:    log,
		Quotes: quotes,
	})

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		log.Info("gracefully shutting down")
		_ = app.Shutdown()
	}()

	log.Info("starting server", zap.String("port", cfg.Port), zap.String("db_type", cfg.DBType))
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
