package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducer_Publish_marshalError(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:9092"})
	defer p.Close()

	err := p.Publish(context.Background(), "booking-events", "b1", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal payload")
}
