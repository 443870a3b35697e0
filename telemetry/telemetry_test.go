package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyEndpointIsNoop(t *testing.T) {
	p, err := New(context.Background(), Config{ServiceName: "dashboard"}, nil)
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "render")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNilProvider(t *testing.T) {
	var p *Provider

	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}
