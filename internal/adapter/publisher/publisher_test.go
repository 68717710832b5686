package publisher

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/pkg/messaging"
	"go.uber.org/zap"
)

const channel = "workhoops:events"

func TestRedisPublisher_Publish(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	client, err := messaging.NewRedisClient(ctx, messaging.RedisOptions{Address: srv.Addr()})
	require.NoError(t, err)
	defer client.Close()

	subscriber := redis.NewClient(&redis.Options{Addr: srv.Addr(), Protocol: 2})
	defer subscriber.Close()
	pubsub := subscriber.Subscribe(ctx, channel)
	defer pubsub.Close()
	_, err = pubsub.Receive(ctx)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	pub := NewRedisPublisher(client, channel, metrics, zap.NewNop())

	event := entity.NewEvent(entity.EventOpportunityCreated, map[string]string{"id": "opp-1"}, time.Now())
	require.NoError(t, pub.Publish(ctx, event))

	select {
	case msg := <-pubsub.Channel():
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &decoded))
		assert.Equal(t, "opportunity.created", decoded["type"])
		assert.Equal(t, event.ID, decoded["id"])
		assert.Equal(t, "opp-1", decoded["payload"].(map[string]interface{})["id"])
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.published.WithLabelValues("opportunity.created", resultPublished)))
}

func TestRedisPublisher_CountsFailures(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	client, err := messaging.NewRedisClient(ctx, messaging.RedisOptions{Address: srv.Addr()})
	require.NoError(t, err)
	defer client.Close()
	srv.Close()

	metrics := NewMetrics(prometheus.NewRegistry())
	pub := NewRedisPublisher(client, channel, metrics, zap.NewNop())

	err = pub.Publish(ctx, entity.NewEvent(entity.EventNewsletterSubscribed, nil, time.Now()))
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.published.WithLabelValues("newsletter.subscribed", resultFailed)))
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().Publish(context.Background(), entity.Event{Type: entity.EventOpportunityCreated}))
}
