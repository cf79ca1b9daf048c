//go:build integration

package testinternals

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/gymplan/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
)

const (
	testDBName     = "gymplan"
	testDBUser     = "postgres"
	testDBPassword = "postgres"
)

// Postgres is a throwaway postgres container with the gymplan schema applied.
type Postgres struct {
	Pool *pgxpool.Pool

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func StartPostgres(ctx context.Context) (*Postgres, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("create dockertest pool: %w", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker: %w", err)
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}
	if err := resource.Expire(120); err != nil {
		log.Warnf("set postgres container expiry: %s", err)
	}

	pg := &Postgres{
		dockerPool: dockerPool,
		resource:   resource,
	}

	dockerPool.MaxWait = time.Minute
	err = dockerPool.Retry(func() error {
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     "localhost",
			DBPort:     resource.GetPort("5432/tcp"),
			DBName:     testDBName,
			DBUser:     testDBUser,
			DBPassword: testDBPassword,
		})
		if err != nil {
			return err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return err
		}
		pg.Pool = pool
		return nil
	})
	if err != nil {
		pg.Close()
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := store.EnsureSchema(ctx, pg.Pool); err != nil {
		pg.Close()
		return nil, err
	}

	return pg, nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if err := p.dockerPool.Purge(p.resource); err != nil {
		log.Errorf("purge postgres container: %s", err)
	}
}
