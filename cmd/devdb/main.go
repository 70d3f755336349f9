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

// devdb starts a throwaway database container for local development and
// prints the environment that points growthdb at it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/localnerve/growthdb/internal/database"
	"github.com/localnerve/growthdb/internal/testhelpers"
)

var cli struct {
	DBType   string `help:"Database to run." enum:"postgres,mysql,mariadb" default:"postgres" name:"db-type"`
	Image    string `help:"Container image, defaults per database type."`
	HostPort string `help:"Bind the database to this host port." name:"host-port"`
	EnvOut   string `help:"Write the connection environment to this file." type:"path" name:"env-out"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("devdb"),
		kong.Description("Run a development database container until interrupted"),
		kong.UsageOnError(),
	)

	ctx := context.Background()
	dc, err := testhelpers.StartDatabase(ctx, nil, testhelpers.ContainerOptions{
		DBType:   cli.DBType,
		Image:    cli.Image,
		HostPort: cli.HostPort,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start database container: %v\n", err)
		os.Exit(1)
	}

	db, err := dc.Connect(ctx)
	if err != nil {
		dc.Terminate(nil)
		fmt.Fprintf(os.Stderr, "Failed to prepare database: %v\n", err)
		os.Exit(1)
	}
	_ = database.Close(db)

	cfg := dc.Config()
	env := map[string]string{
		"DB_TYPE":     cfg.DBType,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_DATABASE": cfg.DBDatabase,
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
	}
	text, err := godotenv.Marshal(env)
	if err != nil {
		dc.Terminate(nil)
		fmt.Fprintf(os.Stderr, "Failed to render environment: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(text)

	if cli.EnvOut != "" {
		if err := godotenv.Write(env, cli.EnvOut); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", cli.EnvOut, err)
		}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	fmt.Printf("\nReceived signal: %v, terminating database container...\n", sig)
	dc.Terminate(nil)
}
