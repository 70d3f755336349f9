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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/localnerve/growthdb/internal/config"
	"github.com/localnerve/growthdb/internal/database"
	"github.com/localnerve/growthdb/internal/logging"
	"github.com/localnerve/growthdb/internal/services"
	"github.com/localnerve/growthdb/internal/utils"
)

var cli struct {
	EnvFile string        `help:"Load environment variables from this file first." type:"path" name:"env-file"`
	Server  bool          `help:"Also check that the HTTP server answers on PORT."`
	Timeout time.Duration `help:"Overall check timeout." default:"5s"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("healthcheck"),
		kong.Description("Check growthdb database connectivity and print the result as JSON"),
		kong.UsageOnError(),
	)

	// Load configuration
	cfg, err := config.Load(cli.EnvFile)
	if err != nil {
		fail(err)
	}

	log, err := logging.New(logging.Options{Level: "warn"})
	if err != nil {
		fail(err)
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		fail(err)
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()

	// Perform health check
	result := services.HealthCheck(ctx, cfg, db, log)
	if cli.Server && result.Healthy() {
		if err := utils.PingServer(cfg.Port); err != nil {
			result.Status = "unhealthy"
			result.ErrorMessage = err.Error()
		}
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fail(fmt.Errorf("failed to marshal health check result: %w", err))
	}
	fmt.Println(string(output))

	// Exit with appropriate code
	if !result.Healthy() {
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
