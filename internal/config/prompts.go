// Package config provides configuration loading utilities, including the
// system prompts sent to chat-completion providers.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompts holds the fixed system instructions for the two provider calls.
type Prompts struct {
	Answer    string `yaml:"answer"`
	Sentiment string `yaml:"sentiment"`
}

// DefaultPrompts returns the built-in system prompts.
func DefaultPrompts() Prompts {
	return Prompts{
		Answer: "You are a helpful customer service AI. Respond directly and concisely in plain text only. " +
			"Do not include any thinking process, reasoning steps, or internal monologue. " +
			"Do not use any markdown formatting, bold text, italic text, links, code blocks, or special characters. " +
			"Give direct, helpful answers to customer questions. Do not mention that you are an AI unless specifically asked.",
		Sentiment: "Analyze the sentiment of this message and respond with only: positive, negative, or neutral.",
	}
}

// LoadPrompts returns the built-in prompts, optionally overridden from a YAML
// file. An empty path means defaults; a missing or malformed file is an error
// so a misconfigured deployment fails loudly at startup.
func LoadPrompts(path string) (Prompts, error) {
	p := DefaultPrompts()
	if path == "" {
		return p, nil
	}
	// #nosec G304 -- the path comes from deployment configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return Prompts{}, fmt.Errorf("op=config.LoadPrompts: %w", err)
	}
	var override Prompts
	if err := yaml.Unmarshal(content, &override); err != nil {
		return Prompts{}, fmt.Errorf("op=config.LoadPrompts: parse %s: %w", path, err)
	}
	if s := strings.TrimSpace(override.Answer); s != "" {
		p.Answer = s
	}
	if s := strings.TrimSpace(override.Sentiment); s != "" {
		p.Sentiment = s
	}
	return p, nil
}
