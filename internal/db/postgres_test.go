package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	cfg, err := PoolConfig("postgres://clinic:secret@db:5433/clinic?sslmode=disable", 6)
	require.NoError(t, err)

	assert.EqualValues(t, 6, cfg.MaxConns)
	assert.EqualValues(t, 1, cfg.MinConns)
	assert.Equal(t, "db", cfg.ConnConfig.Host)
	assert.EqualValues(t, 5433, cfg.ConnConfig.Port)
	assert.Equal(t, "clinic-scheduling", cfg.ConnConfig.RuntimeParams["application_name"])

	cfg, err = PoolConfig("postgres://db/clinic", 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cfg.MaxConns)
}

func TestPoolConfig_BadDSN(t *testing.T) {
	_, err := PoolConfig("postgres://db:notaport/clinic", 4)
	assert.ErrorContains(t, err, "parse postgres dsn")
}

func TestConnectPostgres_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConnectPostgres(ctx, "postgres://clinic@127.0.0.1:1/clinic?connect_timeout=1", 2)
	assert.Error(t, err)
}
