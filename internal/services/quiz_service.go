package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizai/internal/models/request_models"
	"quizai/internal/models/response_models"
	"quizai/pkg/logger"
	"quizai/pkg/utils"
)

type QuizServiceInterface interface {
	GenerateQuestions(ctx context.Context, req request_models.QuizTopicRequest) ([]response_models.QuestionAnswerPair, error)
	GenerateFeedback(ctx context.Context, req request_models.QuizContentRequest) (*response_models.Feedback, error)
	PredictPerformance(ctx context.Context, req request_models.QuizContentRequest) (float64, error)
	Chat(ctx context.Context, req request_models.ChatRequest) (string, error)
}

type QuizService struct {
	generator utils.TextGeneratorInterface
	timeout   time.Duration
	log       *logger.Logger
}

func NewQuizService(generator utils.TextGeneratorInterface, timeout time.Duration, log *logger.Logger) QuizServiceInterface {
	return &QuizService{
		generator: generator,
		timeout:   timeout,
		log:       log,
	}
}

func (s *QuizService) GenerateQuestions(ctx context.Context, req request_models.QuizTopicRequest) ([]response_models.QuestionAnswerPair, error) {
	if req.Topic == "" {
		return nil, utils.NewServiceError(utils.ErrMissingInput, errors.New("topic is required"))
	}

	raw, err := s.generate(ctx, "questions", buildQuestionsPrompt(req.Topic))
	if err != nil {
		return nil, err
	}

	var pairs []response_models.QuestionAnswerPair
	if err := json.Unmarshal([]byte(utils.StripCodeFences(raw)), &pairs); err != nil {
		s.log.Error("model reply is not a JSON array", "endpoint", "questions", "error", err)
		return nil, utils.NewServiceError(utils.ErrInvalidModelFormat, err)
	}
	return pairs, nil
}

func (s *QuizService) GenerateFeedback(ctx context.Context, req request_models.QuizContentRequest) (*response_models.Feedback, error) {
	if req.QuizContent == "" {
		return nil, utils.NewServiceError(utils.ErrMissingInput, errors.New("quiz_content is required"))
	}

	result, err := request_models.DecodeQuizContent(req.QuizContent, request_models.FeedbackLayout)
	if err != nil {
		s.log.Warn("rejected quiz content", "endpoint", "feedback", "error", err)
		return nil, utils.NewServiceError(utils.ErrInvalidQuizContent, err)
	}

	raw, err := s.generate(ctx, "feedback", buildFeedbackPrompt(result))
	if err != nil {
		return nil, err
	}

	var feedback response_models.Feedback
	if err := json.Unmarshal([]byte(utils.StripCodeFences(raw)), &feedback); err != nil {
		s.log.Error("model reply is not a JSON object", "endpoint", "feedback", "error", err)
		return nil, utils.NewServiceError(utils.ErrInvalidModelFormat, err)
	}
	return &feedback, nil
}

func (s *QuizService) PredictPerformance(ctx context.Context, req request_models.QuizContentRequest) (float64, error) {
	if req.QuizContent == "" {
		return 0, utils.NewServiceError(utils.ErrMissingInput, errors.New("quiz_content is required"))
	}

	result, err := request_models.DecodeQuizContent(req.QuizContent, request_models.PredictionLayout)
	if err != nil {
		s.log.Warn("rejected quiz content", "endpoint", "prediction", "error", err)
		return 0, utils.NewServiceError(utils.ErrInvalidQuizContent, err)
	}

	raw, err := s.generate(ctx, "prediction", buildPredictionPrompt(result))
	if err != nil {
		return 0, err
	}

	// The number is read from the unsanitized reply.
	prediction, ok := utils.ExtractNumber(raw)
	if !ok {
		s.log.Error("model reply has no numeric value", "endpoint", "prediction")
		return 0, utils.NewServiceError(utils.ErrInvalidModelFormat, errors.New("no numeric value in model reply"))
	}
	return prediction, nil
}

func (s *QuizService) Chat(ctx context.Context, req request_models.ChatRequest) (string, error) {
	if req.Message == "" {
		return "", utils.NewServiceError(utils.ErrMissingInput, errors.New("message is required"))
	}
	return s.generate(ctx, "chat", req.Message)
}

// generate performs the single outbound call for a request. Any failure is
// reported as ErrGenerationFailed carrying the client's error text.
func (s *QuizService) generate(ctx context.Context, endpoint, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("model call failed", "endpoint", endpoint, "error", err, "duration_ms", time.Since(start).Milliseconds())
		return "", utils.NewServiceError(utils.ErrGenerationFailed, err)
	}
	s.log.Debug("model response", "endpoint", endpoint, "response", text, "duration_ms", time.Since(start).Milliseconds())
	return text, nil
}
