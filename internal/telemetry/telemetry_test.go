package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("game").Start(context.Background(), "game.turn")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid(), "spans are no-ops until Setup runs")
}

func TestNoopTracer(t *testing.T) {
	ctx, span := NoopTracer().Start(context.Background(), "placement.auto")
	defer span.End()

	assert.NotNil(t, ctx)
	assert.False(t, span.IsRecording())
}

func TestGetHostname(t *testing.T) {
	assert.NotEmpty(t, getHostname())
}

func TestNewResourceCarriesGameAttributes(t *testing.T) {
	res, err := newResource(context.Background(), GameAttributes(8, []int{3, 2, 1}, 42)...)
	require.NoError(t, err)

	set := res.Set()
	size, ok := set.Value(attribute.Key("game.board_size"))
	require.True(t, ok)
	assert.Equal(t, int64(8), size.AsInt64())

	ships, ok := set.Value(attribute.Key("game.ships"))
	require.True(t, ok)
	assert.Equal(t, int64(3), ships.AsInt64())

	name, ok := set.Value(attribute.Key("service.name"))
	require.True(t, ok)
	assert.Equal(t, serviceName, name.AsString())
}
