package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Gateway runs one chat call per suggestion and never returns an error.
// Failures are reported through the Response fields instead.
type Gateway struct {
	client      ChatClient
	temperature float32
	timeout     time.Duration
}

// NewGateway creates a gateway. A nil client puts it in placeholder mode.
func NewGateway(client ChatClient, temperature float32) *Gateway {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &Gateway{
		client:      client,
		temperature: temperature,
		timeout:     RequestTimeout,
	}
}

// Enabled reports whether a model is configured.
func (g *Gateway) Enabled() bool {
	return g != nil && g.client != nil
}

// Suggest answers a free-text request against the inventory, given as
// "name (category)" lines.
func (g *Gateway) Suggest(ctx context.Context, inventory []string, request string) Response {
	return g.call(ctx, KindCocktail, cocktailPrompt(inventory, request),
		func() Payload { return placeholderCocktail() },
		parseCocktail)
}

// Omakase picks a drink for a mood and the weather.
func (g *Gateway) Omakase(ctx context.Context, inventory []string, mood, weather string) Response {
	return g.call(ctx, KindOmakase, omakasePrompt(inventory, mood, weather),
		func() Payload { return placeholderOmakase() },
		parseOmakase)
}

// Recommend picks one drink from the candidates.
func (g *Gateway) Recommend(ctx context.Context, candidates []Candidate, request string) Response {
	return g.call(ctx, KindRecommendation, recommendationPrompt(candidates, request),
		func() Payload { return placeholderRecommendation(candidates) },
		parseRecommendation)
}

// Narrate writes a recap from a statistics digest.
func (g *Gateway) Narrate(ctx context.Context, digest string) Response {
	return g.call(ctx, KindNarrative, narrativePrompt(digest),
		func() Payload { return placeholderNarrative(digest) },
		parseNarrative)
}

func (g *Gateway) call(ctx context.Context, kind Kind, prompt string, placeholder func() Payload, parse func(string) (Payload, bool)) Response {
	resp := Response{Kind: kind, Prompt: prompt}
	if !g.Enabled() {
		resp.Payload = placeholder()
		resp.Fallback = true
		return resp
	}

	resp.Provider = g.client.ProviderID()
	resp.Model = g.client.Model()
	logger := providerLogger(ctx, resp.Provider, resp.Model).WithField("kind", kind)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	reply, err := g.client.Complete(callCtx, []Message{
		{Role: RoleSystem, Content: systemPersona},
		{Role: RoleUser, Content: prompt},
	}, g.temperature)
	resp.Duration = time.Since(started)

	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("suggestion timed out after %s: %w", g.timeout, err)
		}
		logger.WithError(err).WithField("duration_ms", resp.Duration.Milliseconds()).Warn("suggestion_transport_failed")
		resp.Error = err.Error()
		return resp
	}

	resp.Raw = reply
	payload, ok := parse(reply)
	resp.Payload = payload
	resp.Degraded = !ok

	fields := logrus.Fields{
		"duration_ms": resp.Duration.Milliseconds(),
		"reply_len":   len(reply),
	}
	if !ok {
		fields["reply_preview"] = logSnippet(reply)
		logger.WithFields(fields).Warn("suggestion_parse_failed")
		return resp
	}
	logger.WithFields(fields).Info("suggestion_completed")
	return resp
}
