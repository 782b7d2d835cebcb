package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"hnstories/internal/eventbus"
)

func TestActivityLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	bus := eventbus.New(nil)
	defer bus.Close()

	stop := subscribeActivityLog(bus, zap.New(core).Sugar())
	bus.Publish(eventbus.QueryChangedEvent{Query: "go"})
	bus.Publish(eventbus.FetchStartedEvent{Query: "go", Seq: 1})
	bus.Publish(eventbus.FetchDiscardedEvent{Query: "g", Seq: 0, Latest: 1})
	bus.Publish(eventbus.ConfigSavedEvent{Path: "config.toml"})

	require.Eventually(t, func() bool { return logs.Len() == 4 }, time.Second, 10*time.Millisecond)

	entries := logs.AllUntimed()
	assert.Equal(t, "query changed", entries[0].Message)
	assert.Equal(t, "search issued", entries[1].Message)
	assert.Equal(t, uint64(1), entries[1].ContextMap()["seq"])
	assert.Equal(t, "stale result discarded", entries[2].Message)
	assert.Equal(t, "default config written", entries[3].Message)

	stop()
	bus.Publish(eventbus.FetchStartedEvent{Query: "rust", Seq: 2})
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 4, logs.Len(), "unsubscribed log sees nothing")
}
