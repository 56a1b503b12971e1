package request_models

import (
	"encoding/json"
	"errors"
	"fmt"
)

type QuizTopicRequest struct {
	Topic string `json:"topic"`
}

// QuizContentRequest carries quiz results as a JSON-encoded string, not a nested object.
type QuizContentRequest struct {
	QuizContent string `json:"quiz_content"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

// QuizResult is the decoded form of quiz_content shared by feedback and prediction.
type QuizResult struct {
	Topic          string
	Questions      []string
	UserAnswers    []string
	CorrectAnswers []string
}

// feedbackQuizContent is the quiz_content layout posted to /generate_feedback.
type feedbackQuizContent struct {
	Topic          string   `json:"topic"`
	Questions      []string `json:"questions"`
	UserAnswers    []string `json:"user_answers"`
	CorrectAnswers []string `json:"correct_answers"`
}

// predictionQuizContent is the quiz_content layout posted to /predict.
type predictionQuizContent struct {
	Topic          string   `json:"topic"`
	Questions      []string `json:"questions"`
	UserAnswers    []string `json:"userAnswers"`
	CorrectAnswers []string `json:"correctAnswers"`
}

type QuizContentLayout int

const (
	FeedbackLayout QuizContentLayout = iota
	PredictionLayout
)

// DecodeQuizContent unwraps the inner JSON document of quiz_content.
func DecodeQuizContent(raw string, layout QuizContentLayout) (QuizResult, error) {
	var result QuizResult
	switch layout {
	case FeedbackLayout:
		var c feedbackQuizContent
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return QuizResult{}, fmt.Errorf("quiz_content is not valid JSON: %w", err)
		}
		result = QuizResult(c)
	case PredictionLayout:
		var c predictionQuizContent
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return QuizResult{}, fmt.Errorf("quiz_content is not valid JSON: %w", err)
		}
		result = QuizResult(c)
	default:
		return QuizResult{}, fmt.Errorf("unknown quiz_content layout %d", layout)
	}

	switch {
	case result.Topic == "":
		return QuizResult{}, errors.New("quiz_content is missing topic")
	case result.Questions == nil:
		return QuizResult{}, errors.New("quiz_content is missing questions")
	case result.UserAnswers == nil:
		return QuizResult{}, errors.New("quiz_content is missing user answers")
	case result.CorrectAnswers == nil:
		return QuizResult{}, errors.New("quiz_content is missing correct answers")
	}
	return result, nil
}
