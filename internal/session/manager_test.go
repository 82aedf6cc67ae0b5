package session

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestGetOrCreate_MintsAndResolves(t *testing.T) {
	m := NewManager(30*time.Minute, zap.NewNop())

	sess := m.GetOrCreate("")
	if sess.ID == "" {
		t.Fatal("expected a minted session id")
	}
	if sess.Cart == nil || sess.UI == nil {
		t.Fatal("session must carry a cart and a coordinator")
	}

	again := m.GetOrCreate(sess.ID)
	if again.ID != sess.ID {
		t.Fatalf("expected same session, got %s vs %s", again.ID, sess.ID)
	}

	fresh := m.GetOrCreate("unknown-id")
	if fresh.ID == "unknown-id" {
		t.Fatal("unknown ids must not be adopted")
	}
}

func TestSweep_EvictsIdleSessions(t *testing.T) {
	m := NewManager(30*time.Minute, zap.NewNop())
	now := time.Now()
	m.nowFunc = func() time.Time { return now }

	idle := m.Create()
	m.Create()

	// advance past the TTL, then mint one fresh session
	now = now.Add(31 * time.Minute)
	fresh := m.Create()

	if evicted := m.Sweep(); evicted != 2 {
		t.Fatalf("expected 2 evictions, got %d", evicted)
	}
	if _, ok := m.Get(idle.ID); ok {
		t.Fatal("idle session should be gone")
	}
	if _, ok := m.Get(fresh.ID); !ok {
		t.Fatal("fresh session should survive the sweep")
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 live session, got %d", m.Len())
	}
}

func TestGet_RefreshesIdleTimer(t *testing.T) {
	m := NewManager(30*time.Minute, zap.NewNop())
	now := time.Now()
	m.nowFunc = func() time.Time { return now }

	sess := m.Create()

	now = now.Add(20 * time.Minute)
	if _, ok := m.Get(sess.ID); !ok {
		t.Fatal("session should still be live")
	}

	// 20 more minutes: 40 since creation but only 20 since last touch
	now = now.Add(20 * time.Minute)
	if evicted := m.Sweep(); evicted != 0 {
		t.Fatalf("expected no eviction, got %d", evicted)
	}
}
