package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/event"
	"github.com/osse101/RuneStatus_Go/internal/itemdb"
	"github.com/osse101/RuneStatus_Go/internal/metrics"
	"github.com/osse101/RuneStatus_Go/internal/player"
	"github.com/osse101/RuneStatus_Go/internal/server"
	"github.com/osse101/RuneStatus_Go/internal/sse"
	"github.com/osse101/RuneStatus_Go/internal/status"
)

type MockBaselineLoader struct {
	mock.Mock
}

func (m *MockBaselineLoader) Load(ctx context.Context, username string) (*domain.Snapshot, error) {
	args := m.Called(ctx, username)
	snap, _ := args.Get(0).(*domain.Snapshot)
	return snap, args.Error(1)
}

func TestLoadBaseline(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		want := &domain.Snapshot{Username: domain.StringPtr("zezima"), Stats: &domain.StatUpdate{Username: "zezima", CombatLevel: 3}}
		loader := new(MockBaselineLoader)
		loader.On("Load", ctx, "zezima").Return(want, nil).Once()

		assert.Same(t, want, LoadBaseline(ctx, loader, "zezima"))
		loader.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		counter := metrics.BaselineFetchTotal.WithLabelValues(metrics.ResultNotFound)
		before := testutil.ToFloat64(counter)

		loader := new(MockBaselineLoader)
		loader.On("Load", ctx, "nobody").Return(nil, fmt.Errorf("lookup: %w", domain.ErrPlayerNotFound)).Once()

		assert.Nil(t, LoadBaseline(ctx, loader, "nobody"))
		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("other failure", func(t *testing.T) {
		counter := metrics.BaselineFetchTotal.WithLabelValues(metrics.ResultError)
		before := testutil.ToFloat64(counter)

		loader := new(MockBaselineLoader)
		loader.On("Load", ctx, "zezima").Return(nil, domain.ErrHiscoresFailed).Once()

		assert.Nil(t, LoadBaseline(ctx, loader, "zezima"))
		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}

func TestLoadItemDB(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "items-complete.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"995":{"name":"Coins"},"4151":{"name":"Abyssal whip"}}`), 0644))

	table := LoadItemDB(ctx, path)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.ItemDBItemsLoaded))

	table = LoadItemDB(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ItemDBItemsLoaded))
}

func TestLoadItemDB_LogsOnce(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "items-complete.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"995":{"name":"Coins"}}`), 0644))

	LoadItemDB(ctx, path)
	assert.Equal(t, 1, strings.Count(logs.String(), itemdb.LogMsgLoaded))

	logs.Reset()
	LoadItemDB(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.Zero(t, strings.Count(logs.String(), itemdb.LogMsgLoaded))
	assert.Equal(t, 1, strings.Count(logs.String(), itemdb.LogMsgLoadFailed))
}

func TestAnnounceBaseline(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()

	var got []event.Event
	bus.Subscribe(event.PlayerBaselineLoaded, func(_ context.Context, evt event.Event) error {
		got = append(got, evt)
		return nil
	})

	AnnounceBaseline(ctx, bus, nil)
	AnnounceBaseline(ctx, bus, &domain.Snapshot{Username: domain.StringPtr("zezima")})
	require.Empty(t, got)

	AnnounceBaseline(ctx, bus, &domain.Snapshot{
		Username: domain.StringPtr("zezima"),
		Stats: &domain.StatUpdate{
			Username:    "zezima",
			CombatLevel: 126,
			StatChanges: []domain.StatChange{{Skill: domain.SkillAttack, Level: 99}, {Skill: domain.SkillMagic, Level: 99}},
		},
	})

	require.Len(t, got, 1)
	payload, err := event.DecodePayload[event.PlayerBaselineLoadedPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "zezima", payload.Username)
	assert.Equal(t, 2, payload.Skills)
	assert.Equal(t, 126, payload.CombatLevel)
}

func TestRegisterEventHandlers_BridgesToHub(t *testing.T) {
	bus := InitializeEventSystem()
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	agg := player.NewAggregator(nil, nil, bus)
	svc := status.NewService(agg, nil, status.CacheConfig{})

	RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, Hub: hub, Views: svc})

	client := hub.Register([]string{sse.EventTypePlayerUpdated})
	require.NotNil(t, client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	before := testutil.ToFloat64(metrics.PlayerEventsApplied.WithLabelValues(string(domain.EventKindSkull)))
	svc.Apply(context.Background(), domain.SkullUpdate{Username: "zezima", Skull: 1})

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, sse.EventTypePlayerUpdated, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("no live push event")
	}
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PlayerEventsApplied.WithLabelValues(string(domain.EventKindSkull))))
}

func TestRegisterEventHandlers_WithoutHub(t *testing.T) {
	bus := event.NewMemoryBus()
	RegisterEventHandlers(EventHandlerDependencies{EventBus: bus})

	assert.NoError(t, bus.Publish(context.Background(), event.NewPlayerUpdatedEvent("login", "zezima", 1)))
}

func TestGracefulShutdown(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()

	svc := status.NewService(player.NewAggregator(nil, nil, nil), nil, status.CacheConfig{})
	srv := server.NewServer(server.Options{Addr: "127.0.0.1:0"}, svc, hub)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	GracefulShutdown(ctx, ShutdownComponents{Server: srv, Service: svc})

	assert.Nil(t, hub.Register(nil), "hub should be stopped")
	assert.False(t, errors.Is(ctx.Err(), context.DeadlineExceeded))
}
