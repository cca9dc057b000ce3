package containers

import (
	"context"
	"log"
	"path/filepath"
	"runtime"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const image = "postgres:16.3-alpine"

// DBContainer runs a throwaway Postgres with the user directory schema
// already applied. The connection string is resolved once at startup.
type DBContainer struct {
	container *postgres.PostgresContainer
	connStr   string
}

func NewDBContainer() *DBContainer {
	ctx := context.Background()

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase("admin_reports"),
		postgres.WithUsername("adminweb"),
		postgres.WithPassword("secret"),
		postgres.WithInitScripts(schemaFile()),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("error starting container: %v", err)
	}

	// The container is not configured for TLS, so disable sslmode.
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("error getting connection string: %v", err)
	}

	return &DBContainer{
		container: container,
		connStr:   connStr,
	}
}

func (c *DBContainer) Shutdown() {
	if err := c.container.Terminate(context.Background()); err != nil {
		log.Fatalf("error terminating container: %v", err)
	}
}

func (c *DBContainer) ConnectionString() string {
	return c.connStr
}

// schemaFile resolves the schema path relative to this source file, so the
// container can be started from any package's tests regardless of their
// working directory.
func schemaFile() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "schema", "schema.sql")
}
