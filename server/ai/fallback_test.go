package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackChatReply(t *testing.T) {
	t.Run("GreetingBranch", func(t *testing.T) {
		reply := FallbackChatReply("bonjour")
		assert.Contains(t, reply, "Bonjour !")
		assert.Contains(t, reply, "Nahilou")
	})

	t.Run("GreetingBranchCaseInsensitive", func(t *testing.T) {
		assert.Equal(t, FallbackChatReply("bonjour"), FallbackChatReply("BONJOUR Nahilou"))
	})

	t.Run("StoryBranch", func(t *testing.T) {
		assert.Contains(t, FallbackChatReply("raconte-moi une histoire"), "histoires")
	})

	t.Run("GenericBranch", func(t *testing.T) {
		reply := FallbackChatReply("pourquoi le ciel est bleu ?")
		assert.Contains(t, reply, "super question")
		assert.NotEqual(t, FallbackChatReply("bonjour"), reply)
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, FallbackChatReply("un dessin"), FallbackChatReply("un dessin"))
	})
}

func TestFallbackStory(t *testing.T) {
	story := FallbackStory("pirates", "Emma", "l'océan")

	assert.Equal(t, "L'aventure de Emma dans l'océan", story.Title)
	assert.Equal(t, []string{"pirates", "l'océan"}, story.Tags)
	assert.Contains(t, story.Preview, "pirates")
	assert.Contains(t, story.Content, "Emma")

	require.Len(t, story.Choices, 2)
	for _, choice := range story.Choices {
		assert.Contains(t, choice.Text, "Emma")
		assert.Contains(t, story.Segments, choice.NextSegment)
	}
	for _, segment := range story.Segments {
		assert.NotEmpty(t, segment.Content)
		assert.Len(t, segment.Choices, 2)
	}

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, story, FallbackStory("pirates", "Emma", "l'océan"))
	})
}

func TestFallbackQuiz(t *testing.T) {
	t.Run("ExactQuestionCount", func(t *testing.T) {
		for _, count := range []int{1, 3, 10} {
			quiz := FallbackQuiz("Nature", "facile", count)
			assert.Len(t, quiz.Questions, count)
		}
	})

	t.Run("TitleFromCategory", func(t *testing.T) {
		quiz := FallbackQuiz("Sciences", "moyen", 3)
		assert.Equal(t, "Quiz sur Sciences", quiz.Title)
		assert.Equal(t, "Sciences", quiz.Category)
		assert.Equal(t, "moyen", quiz.Difficulty)
	})

	t.Run("QuestionShape", func(t *testing.T) {
		quiz := FallbackQuiz("Nature", "difficile", 10)
		for _, question := range quiz.Questions {
			assert.Len(t, question.Options, 4)
			assert.GreaterOrEqual(t, question.CorrectAnswer, 0)
			assert.LessOrEqual(t, question.CorrectAnswer, 3)
			assert.True(t, strings.Contains(question.Question, "Nature"))
			assert.True(t, strings.Contains(question.Question, "difficile"))
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, FallbackQuiz("Nature", "facile", 5), FallbackQuiz("Nature", "facile", 5))
	})
}

func TestFallbackDrawingStory(t *testing.T) {
	t.Run("WithDescription", func(t *testing.T) {
		story := FallbackDrawingStory("un dragon vert")
		assert.Equal(t, "L'histoire de un dragon vert", story.Title)
		assert.Contains(t, story.Content, "un dragon vert")
	})

	t.Run("WithoutDescription", func(t *testing.T) {
		story := FallbackDrawingStory("")
		assert.Equal(t, "L'aventure du dessin magique", story.Title)
		assert.NotEmpty(t, story.Content)
	})
}
