package progrock_test

import (
	"context"
	"testing"

	"github.com/basidwild/clawdbox/internal/adapters/telemetry/progrock"
	"github.com/basidwild/clawdbox/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()
	defer recorder.Close() //nolint:errcheck // Best effort close

	ctx, vertex := recorder.Record(context.Background(), "build features=gdb")
	require.NotNil(t, vertex)

	carried, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, carried)

	_, err := vertex.Stdout().Write([]byte("   Compiling clawdbox\n"))
	require.NoError(t, err)
	vertex.Complete(nil)
}
