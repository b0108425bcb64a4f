package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainerWithoutExporters(t *testing.T) {
	ctx := context.Background()

	container, err := NewContainer(ctx, Config{
		ServiceName:    "cadastro-test",
		ServiceVersion: "test",
		Environment:    "test",
	}, nil)

	require.NoError(t, err)
	assert.Nil(t, container.MetricsServer)
	assert.NotNil(t, container.AppMetrics)
	assert.NotNil(t, container.NewTelemetryProbe(nil))

	families, err := container.PrometheusRegistry.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, family := range families {
		names[family.GetName()] = true
	}

	assert.True(t, names["go_goroutines"])

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	assert.NoError(t, container.Shutdown(shutdownCtx))
}
