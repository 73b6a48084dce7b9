package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// moderationSystemPrompt primes the classifier tier of the gate.
const moderationSystemPrompt = "Tu es un système de modération de contenu pour une plateforme destinée aux enfants."

const moderationPromptTemplate = `Analyse le texte suivant et détermine s'il est approprié pour des enfants de 7 à 12 ans:
"%s"

Réponds uniquement par "APPROPRIATE" ou "INAPPROPRIATE".

Un contenu est inapproprié s'il contient:
- Des références sexuelles
- De la violence graphique
- Des insultes ou langage grossier
- Des thèmes adultes (drogue, alcool, etc.)
- Des contenus effrayants ou traumatisants
- Des incitations à des comportements dangereux`

// blockedKeywords is the local deny-list used when the classifier is
// unavailable or inconclusive. Case-insensitive substring match.
var blockedKeywords = []string{
	// French
	"sexe", "violence", "drogue", "alcool", "cigarette", "mort", "tuer",
	"arme", "fusil", "pistolet", "couteau", "sang", "horreur", "peur",
	"insulte", "gros mot", "juron",
	// English
	"sex", "weapon", "gun", "knife", "blood", "kill", "death", "drug",
	"horror", "scary",
}

// Moderator decides whether user-supplied text may proceed into a prompt
// or a stored conversation. Two tiers: a remote classifier, then a local
// keyword scan when the classifier fails or answers ambiguously. The gate
// never returns an error; an unreachable classifier degrades silently.
type Moderator struct {
	completer ChatCompleter
}

// NewModerator creates a moderation gate. A nil completer disables the
// classifier tier; only the keyword scan runs.
func NewModerator(completer ChatCompleter) *Moderator {
	return &Moderator{completer: completer}
}

// IsAppropriate reports whether the text is acceptable for the 7-12
// audience.
func (m *Moderator) IsAppropriate(ctx context.Context, text string) bool {
	if m.completer != nil {
		if verdict, ok := m.classify(ctx, text); ok {
			return verdict
		}
	}
	return !containsBlockedKeyword(text)
}

// classify runs the remote classifier tier. The second return value is
// false when the answer is unusable and the caller must fall through to
// the keyword scan.
func (m *Moderator) classify(ctx context.Context, text string) (bool, bool) {
	response, err := m.completer.Complete(ctx, []Message{
		{Role: RoleSystem, Content: moderationSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf(moderationPromptTemplate, text)},
	}, CompletionOptions{MaxTokens: 50, Temperature: 0.1})
	if err != nil {
		slog.Warn("moderation classifier unavailable, falling back to keyword scan", "error", err)
		return false, false
	}

	answer := strings.ToUpper(strings.TrimSpace(response))
	if strings.Contains(answer, "INAPPROPRIATE") {
		return false, true
	}
	if strings.Contains(answer, "APPROPRIATE") {
		return true, true
	}

	slog.Warn("moderation classifier gave inconclusive answer, falling back to keyword scan")
	return false, false
}

func containsBlockedKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range blockedKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
