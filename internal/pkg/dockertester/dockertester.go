package dockertester

import (
	"fmt"
	"log"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	testDBUser     = "postgres"
	testDBPassword = "postgres"
	testDBName     = "summit_test"
)

type DockerTester struct {
	Pool     *dockertest.Pool
	Resource *dockertest.Resource
}

// InitPostgres spins up a throwaway Postgres container for integration tests.
func InitPostgres() *DockerTester {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct docker pool -> %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to Docker -> %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container -> %v", err)
	}

	return &DockerTester{
		Pool:     pool,
		Resource: resource,
	}
}

func (t *DockerTester) GetDSN() string {
	hostAndPort := t.Resource.GetHostPort("5432/tcp")

	return fmt.Sprintf("postgres://%v:%v@%v/%v?sslmode=disable",
		testDBUser, testDBPassword, hostAndPort, testDBName)
}

func (t *DockerTester) Purge() {
	if err := t.Pool.Purge(t.Resource); err != nil {
		log.Fatalf("could not purge docker resource -> %v", err)
	}
}
