package services

import (
	"fmt"
	"strings"

	"quizai/internal/models/request_models"
)

const (
	questionsPrompt = `
Generate 10 quiz questions about %s.
Each question should have a correct answer.
Format the response as a JSON array of objects, each with 'question' and 'correct_answer' keys.
`

	feedbackPrompt = `
Based on the following quiz results, provide feedback:
%s

Format the response as a JSON object with the following structure:
{
    "strengths": ["strength1", "strength2", ...],
    "weaknesses": ["weakness1", "weakness2", ...],
    "recommendations": ["recommendation1", "recommendation2", ...],
    "performanceByTopic": [
        {"subtopic": "subtopic1", "score": score1},
        {"subtopic": "subtopic2", "score": score2},
        ...
    ],
    "overallScore": overall_score
}
Ensure all scores are between 0 and 100.
`

	predictionPrompt = `
Based on the following quiz performance, predict the user's future performance:
%s

Provide a prediction as a percentage (0-100) of how well the user is likely to perform in future quizzes on this topic.
Return only the numeric value.
`
)

type transcriptEntry struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
}

// pairAnswers zips questions with both answer lists, stopping at the shortest.
// Mismatched lengths are not reported.
func pairAnswers(result request_models.QuizResult) []transcriptEntry {
	n := min(len(result.Questions), len(result.UserAnswers), len(result.CorrectAnswers))
	entries := make([]transcriptEntry, n)
	for i := 0; i < n; i++ {
		entries[i] = transcriptEntry{
			Question:      result.Questions[i],
			UserAnswer:    result.UserAnswers[i],
			CorrectAnswer: result.CorrectAnswers[i],
		}
	}
	return entries
}

func formatTranscript(result request_models.QuizResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Topic: %s\nQuestions and Answers:\n", result.Topic)
	for _, e := range pairAnswers(result) {
		fmt.Fprintf(&sb, "\nQ: %s\nUser's Answer: %s\nCorrect Answer: %s\n", e.Question, e.UserAnswer, e.CorrectAnswer)
	}
	return sb.String()
}

func buildQuestionsPrompt(topic string) string {
	return fmt.Sprintf(questionsPrompt, topic)
}

func buildFeedbackPrompt(result request_models.QuizResult) string {
	return fmt.Sprintf(feedbackPrompt, formatTranscript(result))
}

func buildPredictionPrompt(result request_models.QuizResult) string {
	return fmt.Sprintf(predictionPrompt, formatTranscript(result))
}
