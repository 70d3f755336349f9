// containers.go
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

package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	"github.com/localnerve/growthdb/internal/config"
	"github.com/localnerve/growthdb/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IntegrationEnv enables tests that start database containers.
const IntegrationEnv = "GROWTHDB_INTEGRATION"

const (
	containerDatabase = "growthdb"
	containerUser     = "growthdb"
	containerPassword = "growthdb-test"
	networkAlias      = "growthdb-db"
)

var defaultImages = map[string]string{
	"postgres": "postgres:17-alpine",
	"mysql":    "mysql:8.4",
	"mariadb":  "mariadb:11",
}

var containerPorts = map[string]string{
	"postgres": "5432",
	"mysql":    "3306",
	"mariadb":  "3306",
}

// ContainerOptions selects the database a DBContainer runs.
type ContainerOptions struct {
	DBType string // postgres, mysql or mariadb
	Image  string // defaults per DBType
	// HostPort pins the container port to this host port when set.
	HostPort string
}

// DBContainer is a running database container and its network.
type DBContainer struct {
	Network   *testcontainers.DockerNetwork
	Container testcontainers.Container
	DBType    string
	Host      string
	Port      string
}

// Config returns an application configuration pointing at the container.
func (dc *DBContainer) Config() *config.Config {
	cfg := SQLiteConfig()
	cfg.DBType = dc.DBType
	cfg.DBHost = dc.Host
	cfg.DBPort = dc.Port
	cfg.DBDatabase = containerDatabase
	cfg.DBUser = containerUser
	cfg.DBPassword = containerPassword
	cfg.DBConnectionLimit = 5
	return cfg
}

// Terminate stops the container and removes its network.
func (dc *DBContainer) Terminate(t *testing.T) {
	ctx := context.Background()
	if dc.Container != nil {
		if err := dc.Container.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate %s: %v", dc.DBType, err)
		}
	}
	if dc.Network != nil {
		if err := dc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// StartDatabase starts a database container and waits until it accepts connections.
func StartDatabase(ctx context.Context, t *testing.T, opts ContainerOptions) (*DBContainer, error) {
	containerPort, ok := containerPorts[opts.DBType]
	if !ok {
		return nil, fmt.Errorf("unsupported container database type: %s", opts.DBType)
	}
	imageName := opts.Image
	if imageName == "" {
		imageName = defaultImages[opts.DBType]
	}

	dc := &DBContainer{DBType: opts.DBType}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	dc.Network = nw

	tcpPort, err := nat.NewPort("tcp", containerPort)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	exists, err := imageExists(ctx, imageName)
	if err != nil {
		logMessage(t, "Could not inspect local images: %v", err)
	} else if !exists {
		logMessage(t, "Image %s does not exist, pulling...", imageName)
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if opts.HostPort != "" {
			hostConfig.PortBindings = nat.PortMap{
				tcpPort: []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: opts.HostPort},
				},
			}
		}
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:              imageName,
			ExposedPorts:       []string{string(tcpPort)},
			Env:                initEnv(opts.DBType),
			HostConfigModifier: hostConfigModifier,
			WaitingFor:         wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
			Networks:           []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {networkAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to start %s: %w", opts.DBType, err)
	}
	dc.Container = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := dbContainer.MappedPort(ctx, tcpPort)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}
	dc.Host = host
	dc.Port = port.Port()

	logMessage(t, "%s container listening at %s:%s", opts.DBType, dc.Host, dc.Port)
	return dc, nil
}

// Connect opens the container database, retrying while the server finishes
// starting up, and runs the migrations.
func (dc *DBContainer) Connect(ctx context.Context) (*gorm.DB, error) {
	cfg := dc.Config()

	var lastErr error
	for i := 0; i < 30; i++ {
		db, err := database.Connect(cfg, zap.NewNop())
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.PingContext(ctx); err == nil {
					if err := database.AutoMigrate(db); err != nil {
						_ = database.Close(db)
						return nil, fmt.Errorf("failed to migrate: %w", err)
					}
					return db, nil
				}
			} else {
				err = dbErr
			}
			_ = database.Close(db)
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return nil, fmt.Errorf("%s not ready after 30 seconds: %w", dc.DBType, lastErr)
}

// RequireIntegration skips t unless integration tests are enabled.
func RequireIntegration(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	if os.Getenv(IntegrationEnv) == "" {
		t.Skipf("skipping container test, set %s=1 to run", IntegrationEnv)
	}
}

func initEnv(dbType string) map[string]string {
	switch dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": containerPassword,
			"POSTGRES_USER":     containerUser,
			"POSTGRES_DB":       containerDatabase,
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": containerPassword,
			"MYSQL_DATABASE":      containerDatabase,
			"MYSQL_USER":          containerUser,
			"MYSQL_PASSWORD":      containerPassword,
		}
	}
	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}
	return false, nil
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
