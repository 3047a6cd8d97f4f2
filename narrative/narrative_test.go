package narrative

import (
	"context"
	"testing"

	"github.com/nathoo/thornhold/config"
	"github.com/nathoo/thornhold/types"
)

func disabledNarrator(t *testing.T) *Narrator {
	t.Helper()
	n, err := New(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return n
}

func collect(t *testing.T, ch <-chan Event) []Event {
	t.Helper()
	var events []Event
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func TestNarrate_DisabledSendsFallback(t *testing.T) {
	n := disabledNarrator(t)
	if n.Enabled() {
		t.Fatal("narrator should be disabled without an API key")
	}

	nctx := &types.NarrationContext{
		LocationName: "The Courtyard",
		Action:       types.Action{Kind: types.ActionRoomEntered, Text: "entered The Courtyard"},
	}
	events := collect(t, n.Narrate(context.Background(), nctx, "calm"))
	if len(events) != 1 || events[0].Kind != EventFallback {
		t.Errorf("events = %+v, want single Fallback", events)
	}
}

func TestNarrate_NilContextSendsFallback(t *testing.T) {
	n := disabledNarrator(t)
	events := collect(t, n.Narrate(context.Background(), nil, "calm"))
	if len(events) != 1 || events[0].Kind != EventFallback {
		t.Errorf("events = %+v, want single Fallback", events)
	}
}

func TestNarrateDialogue_DisabledSendsFallback(t *testing.T) {
	n := disabledNarrator(t)
	npc := &types.Npc{ID: "merchant", Name: "Merchant", PersonalitySeed: "formal"}
	events := collect(t, n.NarrateDialogue(context.Background(), npc, "Hello", nil))
	if len(events) != 1 || events[0].Kind != EventFallback {
		t.Errorf("events = %+v, want single Fallback", events)
	}
}

func TestNew_EnabledNeedsKey(t *testing.T) {
	cfg := config.Default()
	cfg.NarrationEnabled = true
	// No API key: stays disabled rather than erroring.
	n, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if n.Enabled() {
		t.Error("narrator should stay disabled without an API key")
	}
}
