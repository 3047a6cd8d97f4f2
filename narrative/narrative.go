// Package narrative streams LLM prose for completed actions and NPC
// dialogue. It is fire-and-forget: the engine hands over an immutable
// snapshot, and the stream either produces tokens or falls back to the
// pre-authored text already shown. Nothing here mutates the world.
package narrative

import (
	"context"
	"errors"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/nathoo/thornhold/config"
	"github.com/nathoo/thornhold/types"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// EventKind tags one narration stream event.
type EventKind string

const (
	EventToken    EventKind = "token"
	EventComplete EventKind = "complete"
	EventFallback EventKind = "fallback"
)

// Event is one item on a narration stream. A stream is a sequence of
// Token events ending in Complete, or a single Fallback telling the
// caller to keep the pre-authored text.
type Event struct {
	Kind EventKind
	Text string
}

const (
	// channelBuffer bounds the stream so a stalled consumer cannot pile
	// up unbounded tokens.
	channelBuffer = 64
	// streamTimeout caps one narration end to end.
	streamTimeout = 10 * time.Second
)

// Narrator owns the model client. A disabled narrator is valid and
// emits Fallback for every request, which keeps the engine fully
// testable offline.
type Narrator struct {
	client    *genai.Client
	modelName string
	verbosity string
	enabled   bool
}

// New builds a narrator from the configuration. Narration stays
// disabled without an API key.
func New(ctx context.Context, cfg config.Config) (*Narrator, error) {
	n := &Narrator{modelName: cfg.Model, verbosity: cfg.Verbosity}
	if !cfg.NarrationEnabled || cfg.APIKey == "" {
		return n, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	n.client = client
	n.enabled = true
	return n, nil
}

// Enabled reports whether requests will reach the model.
func (n *Narrator) Enabled() bool { return n.enabled }

// Close releases the underlying client.
func (n *Narrator) Close() {
	if n.client != nil {
		n.client.Close()
	}
}

// Narrate streams prose for one completed action. The returned channel
// is closed when the stream ends.
func (n *Narrator) Narrate(ctx context.Context, nctx *types.NarrationContext, tone string) <-chan Event {
	out := make(chan Event, channelBuffer)
	go func() {
		defer close(out)
		if !n.enabled || nctx == nil {
			out <- Event{Kind: EventFallback}
			return
		}
		system, user := buildNarrationPrompt(nctx, tone, n.verbosity)
		n.stream(ctx, system, nil, user, out)
	}()
	return out
}

// NarrateDialogue streams an in-character reply for one conversation
// turn, replaying recent history for continuity.
func (n *Narrator) NarrateDialogue(ctx context.Context, npc *types.Npc, input string, history []types.DialogueTurn) <-chan Event {
	out := make(chan Event, channelBuffer)
	go func() {
		defer close(out)
		if !n.enabled || npc == nil {
			out <- Event{Kind: EventFallback}
			return
		}
		n.stream(ctx, dialogueSystemPrompt(npc), dialogueHistory(history), input, out)
	}()
	return out
}

// stream runs one bounded model call, forwarding text parts as Token
// events. Any error, empty response, or timeout degrades to Fallback.
func (n *Narrator) stream(ctx context.Context, system string, history []*genai.Content, user string, out chan<- Event) {
	ctx, cancel := context.WithTimeout(ctx, streamTimeout)
	defer cancel()

	model := n.client.GenerativeModel(n.modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	session := model.StartChat()
	session.History = history

	iter := session.SendMessageStream(ctx, genai.Text(user))
	gotAny := false
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			out <- Event{Kind: EventFallback}
			return
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok && text != "" {
					gotAny = true
					out <- Event{Kind: EventToken, Text: string(text)}
				}
			}
		}
	}

	if gotAny {
		out <- Event{Kind: EventComplete}
	} else {
		out <- Event{Kind: EventFallback}
	}
}
