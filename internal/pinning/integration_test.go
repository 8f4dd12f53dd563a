//go:build integration

package pinning

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/meigma/ipfsdeploy/core"
)

// startKubo starts an ipfs/kubo node and returns its RPC API URL.
func startKubo(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.Run(ctx,
		"ipfs/kubo:v0.32.1",
		testcontainers.WithExposedPorts("5001/tcp"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("Daemon is ready").WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5001")
	require.NoError(t, err)

	return "http://" + host + ":" + port.Port()
}

func TestInfura_Kubo(t *testing.T) {
	endpoint := startKubo(t)

	dir := writeSite(t)
	p := NewInfura(InfuraConfig{Endpoint: endpoint}, nil)

	first, err := p.Pin(context.Background(), dir, core.PinOptions{})
	require.NoError(t, err)
	assert.Regexp(t, `^Qm[1-9A-HJ-NP-Za-km-z]{44}$`, first)

	t.Run("same content same identifier", func(t *testing.T) {
		copyDir := filepath.Join(t.TempDir(), "dist")
		require.NoError(t, os.CopyFS(copyDir, os.DirFS(dir)))

		again, err := p.Pin(context.Background(), copyDir, core.PinOptions{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	})

	t.Run("changed content new identifier", func(t *testing.T) {
		changed := writeSite(t)
		require.NoError(t, os.WriteFile(filepath.Join(changed, "index.html"), []byte("<h1>changed</h1>"), 0o644))

		other, err := p.Pin(context.Background(), changed, core.PinOptions{})
		require.NoError(t, err)
		assert.NotEqual(t, first, other)
	})
}
