package session

import (
	"context"
	"os"
	"testing"
	"time"

	"skincare-advisor/internal/infrastructure/config"
	"skincare-advisor/internal/pkg/common"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func memoryStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(&config.SessionConfig{TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	return store
}

func TestGetDefaultsToCollecting(t *testing.T) {
	store := memoryStore(t)

	state, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if state.Step != StepCollecting || state.ProfileID != "" {
		t.Fatalf("initial state = %+v, want collecting with no profile", state)
	}
}

func TestConfirmRevealsPlan(t *testing.T) {
	store := memoryStore(t)
	ctx := context.Background()

	if _, err := store.Select(ctx, "s1", "油性肌"); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}

	state, err := store.Confirm(ctx, "s1")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if state.Step != StepRevealed {
		t.Fatalf("step = %q, want %q", state.Step, StepRevealed)
	}
}

func TestConfirmWithoutProfileFails(t *testing.T) {
	store := memoryStore(t)

	state, err := store.Confirm(context.Background(), "s1")
	if err == nil {
		t.Fatal("confirming without a selected profile must fail")
	}
	if state.Step != StepCollecting {
		t.Fatalf("step = %q, want %q", state.Step, StepCollecting)
	}
}

func TestProfileChangeResetsStep(t *testing.T) {
	store := memoryStore(t)
	ctx := context.Background()

	store.Select(ctx, "s1", "油性肌")
	store.Confirm(ctx, "s1")

	// 換類型必須重置回鑑定中
	state, err := store.Select(ctx, "s1", "干性肌")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if state.Step != StepCollecting || state.ProfileID != "干性肌" {
		t.Fatalf("state after profile change = %+v", state)
	}
}

func TestReselectSameProfileKeepsStep(t *testing.T) {
	store := memoryStore(t)
	ctx := context.Background()

	store.Select(ctx, "s1", "油性肌")
	store.Confirm(ctx, "s1")

	state, err := store.Select(ctx, "s1", "油性肌")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if state.Step != StepRevealed {
		t.Fatalf("re-selecting the same profile must keep the step, got %q", state.Step)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := memoryStore(t)
	ctx := context.Background()

	store.Select(ctx, "s1", "油性肌")

	state, err := store.Get(ctx, "s2")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if state.ProfileID != "" {
		t.Fatalf("sessions must not share state, got %+v", state)
	}
}
