// containers.go
//
// A personal workout tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of workout-tracker.
// workout-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// workout-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with workout-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package containers starts throwaway database containers for integration tests
// and local development. Settings come from the environment, usually a .env file.
package containers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SessionLabel tags every container started by one process
const SessionLabel = "workout-tracker.session"

// Options describes the database container to start
type Options struct {
	DBType       string
	Image        string
	Database     string
	User         string
	Password     string
	RootPassword string
	NetworkAlias string
}

// Database is a running database container
type Database struct {
	Network   *testcontainers.DockerNetwork
	Container testcontainers.Container
	Options   Options
	Host      string
	Port      nat.Port
	SessionID string
}

// OptionsFromEnv reads the container options from DB_* variables
func OptionsFromEnv() Options {
	return Options{
		DBType:       getEnv("DB_TYPE", "postgres"),
		Image:        os.Getenv("DB_IMAGE"),
		Database:     getEnv("DB_DATABASE", "workouts"),
		User:         getEnv("DB_USER", "tracker"),
		Password:     getEnv("DB_PASSWORD", "tracker"),
		RootPassword: getEnv("DB_ROOT_PASSWORD", "root"),
		NetworkAlias: getEnv("DB_HOST", "database"),
	}
}

// ContainerPort returns the port the database listens on inside the container
func ContainerPort(dbType string) (nat.Port, error) {
	switch dbType {
	case "postgres", "postgresql":
		return nat.NewPort("tcp", "5432")
	case "mysql", "mariadb":
		return nat.NewPort("tcp", "3306")
	}
	return "", fmt.Errorf("no container support for database type: %s", dbType)
}

// InitEnv returns the image environment that creates the database and its user
func InitEnv(opts Options) map[string]string {
	switch opts.DBType {
	case "postgres", "postgresql":
		return map[string]string{
			"POSTGRES_PASSWORD": opts.Password,
			"POSTGRES_USER":     opts.User,
			"POSTGRES_DB":       opts.Database,
		}
	case "mysql", "mariadb":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": opts.RootPassword,
			"MYSQL_DATABASE":      opts.Database,
			"MYSQL_USER":          opts.User,
			"MYSQL_PASSWORD":      opts.Password,
		}
	}
	return nil
}

// StartDatabase starts the container and waits until the database accepts a connection
func StartDatabase(ctx context.Context, opts Options) (*Database, error) {
	if opts.Image == "" {
		return nil, fmt.Errorf("no image given for %s", opts.DBType)
	}

	tcpPort, err := ContainerPort(opts.DBType)
	if err != nil {
		return nil, err
	}

	if ok, err := ImageAvailable(ctx, opts.Image); err != nil {
		logrus.Warnf("could not list local images: %v", err)
	} else if !ok {
		logrus.Infof("image %s not found locally, pulling", opts.Image)
	}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}

	db := &Database{
		Network:   nw,
		Options:   opts,
		SessionID: uuid.NewString(),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.Image,
			ExposedPorts: []string{string(tcpPort)},
			Env:          InitEnv(opts),
			Labels:       map[string]string{SessionLabel: db.SessionID},
			WaitingFor:   wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
			Networks:     []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {opts.NetworkAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		_ = db.Terminate(ctx)
		return nil, fmt.Errorf("failed to start %s: %w", opts.Image, err)
	}
	db.Container = container

	if db.Host, err = container.Host(ctx); err != nil {
		_ = db.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	if db.Port, err = container.MappedPort(ctx, tcpPort); err != nil {
		_ = db.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	if err := db.waitReady(ctx, 30); err != nil {
		_ = db.Terminate(ctx)
		return nil, err
	}

	logrus.Infof("%s container ready at %s:%s", opts.DBType, db.Host, db.Port.Port())
	return db, nil
}

// Config returns an application config pointing at the mapped container port
func (d *Database) Config() *config.Config {
	cfg := config.Defaults()
	cfg.DBType = d.Options.DBType
	cfg.DBHost = d.Host
	cfg.DBPort = d.Port.Port()
	cfg.DBDatabase = d.Options.Database
	cfg.DBUser = d.Options.User
	cfg.DBPassword = d.Options.Password
	cfg.DBLogLevel = "error"
	return cfg
}

// Terminate stops the container and removes its network
func (d *Database) Terminate(ctx context.Context) error {
	var firstErr error
	if d.Container != nil {
		if err := d.Container.Terminate(ctx); err != nil {
			logrus.Errorf("failed to terminate database container: %v", err)
			firstErr = err
		}
	}
	if d.Network != nil {
		if err := d.Network.Remove(ctx); err != nil {
			logrus.Errorf("failed to remove network: %v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// waitReady retries a ping because the port opens before MariaDB finishes init
func (d *Database) waitReady(ctx context.Context, attempts int) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = d.ping(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return fmt.Errorf("%s not ready after %d attempts: %w", d.Options.DBType, attempts, err)
}

func (d *Database) ping() error {
	db, err := database.Connect(d.Config())
	if err != nil {
		return err
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// ImageAvailable reports whether imageName is already in the local image store
func ImageAvailable(ctx context.Context, imageName string) (bool, error) {
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
