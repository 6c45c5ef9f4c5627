// Package ai provides response cleaning utilities for raw LLM output.
package ai

import (
	"regexp"
	"strings"
)

// FallbackReply is returned when cleaning leaves nothing displayable.
const FallbackReply = "我理解您的问题，请您详细说明一下。"

var (
	thinkTagRe    = regexp.MustCompile(`(?is)<think>.*?</think>`)
	thinkingTagRe = regexp.MustCompile(`(?is)<thinking>.*?</thinking>`)

	// Reasoning-marker sentences, removed up to their terminating punctuation
	// or line end. Bilingual (English/Chinese) to match the supported locales.
	reasoningMarkerRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)思考[^\n]*?(?:。|\n|$)`),
		regexp.MustCompile(`(?i)Let me think[^\n]*?(?:\.|\n|$)`),
		regexp.MustCompile(`(?i)I'm thinking[^\n]*?(?:\.|\n|$)`),
		regexp.MustCompile(`(?i)First,[^\n]*?(?:\.|\n|$)`),
		regexp.MustCompile(`(?i)Step \d+:[^\n]*?(?:\.|\n|$)`),
		regexp.MustCompile(`(?i)分析一下[^\n]*?(?:。|\n|$)`),
		regexp.MustCompile(`(?i)让我考虑[^\n]*?(?:。|\n|$)`),
		regexp.MustCompile(`(?i)从[^\n]*?开始[^\n]*?(?:。|\n|$)`),
		regexp.MustCompile(`(?i)需要[^\n]*?(?:。|\n|$)`),
		regexp.MustCompile(`(?i)应该[^\n]*?(?:。|\n|$)`),
		regexp.MustCompile(`(?i)可以[^\n]*?(?:。|\n|$)`),
		regexp.MustCompile(`(?i)最好[^\n]*?(?:。|\n|$)`),
	}

	// Any line containing one of these substrings (case-insensitive) is
	// dropped wholesale. Deliberately over-aggressive: broad words like "so"
	// or "because" also delete legitimate sentences. Kept as-is because the
	// stored history depends on this exact behavior.
	reasoningKeywords = []string{
		"思考", "think", "分析", "考虑", "首先", "第一", "然后", "接下来",
		"最后", "总结", "结论", "所以", "因此", "因为", "由于",
	}

	markdownLinkRe   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	markdownBoldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	markdownItalicRe = regexp.MustCompile(`\*([^*]+)\*`)
	codeFenceRe      = regexp.MustCompile("(?s)```[^\n]*\n(.*?)\n```")
	inlineCodeRe     = regexp.MustCompile("`([^`]+)`")
	multiNewlineRe   = regexp.MustCompile(`\n+`)
)

// ResponseCleaner strips chain-of-thought artifacts and markdown decoration
// from model output so only display-safe plain text reaches the customer.
type ResponseCleaner struct{}

// NewResponseCleaner creates a new response cleaner.
func NewResponseCleaner() *ResponseCleaner {
	return &ResponseCleaner{}
}

// Clean runs the ordered sanitization pipeline. Later steps operate on the
// output of earlier ones, so the order is part of the contract. The result is
// never empty: a whitespace-only outcome is replaced with FallbackReply.
func (rc *ResponseCleaner) Clean(response string) string {
	response = rc.stripThinkBlocks(response)
	response = rc.stripReasoningSentences(response)
	response = rc.dropReasoningLines(response)
	response = rc.stripMarkdown(response)

	response = multiNewlineRe.ReplaceAllString(response, "\n")
	response = strings.TrimSpace(response)

	if response == "" {
		return FallbackReply
	}
	return response
}

// stripThinkBlocks removes <think>...</think> and <thinking>...</thinking>
// blocks, tags included, across multiple lines.
func (rc *ResponseCleaner) stripThinkBlocks(response string) string {
	response = thinkTagRe.ReplaceAllString(response, "")
	response = thinkingTagRe.ReplaceAllString(response, "")
	return response
}

// stripReasoningSentences removes sentences opening with a known reasoning
// marker, up to their terminating punctuation or line end.
func (rc *ResponseCleaner) stripReasoningSentences(response string) string {
	for _, re := range reasoningMarkerRes {
		response = re.ReplaceAllString(response, "")
	}
	return response
}

// dropReasoningLines splits into lines and discards any line containing a
// reasoning keyword as a substring, then rejoins the survivors.
func (rc *ResponseCleaner) dropReasoningLines(response string) string {
	lines := strings.Split(response, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		drop := false
		for _, kw := range reasoningKeywords {
			if strings.Contains(lower, kw) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// stripMarkdown flattens links, emphasis, and code formatting, keeping the
// inner text.
func (rc *ResponseCleaner) stripMarkdown(response string) string {
	response = markdownLinkRe.ReplaceAllString(response, "$1")
	response = markdownBoldRe.ReplaceAllString(response, "$1")
	response = markdownItalicRe.ReplaceAllString(response, "$1")
	response = codeFenceRe.ReplaceAllString(response, "$1")
	response = inlineCodeRe.ReplaceAllString(response, "$1")
	return response
}
