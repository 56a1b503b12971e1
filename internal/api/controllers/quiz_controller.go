package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"quizai/internal/models/request_models"
	"quizai/internal/models/response_models"
	"quizai/internal/services"
	"quizai/pkg/utils"
)

var (
	questionsErrors = utils.ErrorMessages{
		MissingInput:  "No topic provided",
		InvalidFormat: "The response from the AI was not in JSON format",
		Failed:        "Failed to generate questions",
	}
	feedbackErrors = utils.ErrorMessages{
		MissingInput:  "No quiz content provided",
		InvalidFormat: "The response from the AI was not in valid JSON format",
		Failed:        "Failed to generate feedback",
		IncludeDetail: true,
	}
	predictionErrors = utils.ErrorMessages{
		MissingInput:  "No quiz content provided",
		InvalidFormat: "Failed to generate a numeric prediction",
		Failed:        "Failed to generate prediction",
		IncludeDetail: true,
	}
	chatErrors = utils.ErrorMessages{
		MissingInput:  "No message provided",
		Failed:        "Failed to generate response",
		IncludeDetail: true,
	}
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// POST /generate_questions
func (q *QuizController) GenerateQuestionsHandler(c *gin.Context) {
	var req request_models.QuizTopicRequest
	if !bindBody(c, &req) {
		return
	}

	pairs, err := q.quizService.GenerateQuestions(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, questionsErrors)
		return
	}
	utils.RespondSuccess(c, response_models.QuestionsResponse{QuestionsAndAnswers: pairs})
}

// POST /generate_feedback
func (q *QuizController) GenerateFeedbackHandler(c *gin.Context) {
	var req request_models.QuizContentRequest
	if !bindBody(c, &req) {
		return
	}

	feedback, err := q.quizService.GenerateFeedback(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, feedbackErrors)
		return
	}
	utils.RespondSuccess(c, response_models.FeedbackResponse{Feedback: *feedback})
}

// POST /predict
func (q *QuizController) PredictHandler(c *gin.Context) {
	var req request_models.QuizContentRequest
	if !bindBody(c, &req) {
		return
	}

	prediction, err := q.quizService.PredictPerformance(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, predictionErrors)
		return
	}
	utils.RespondSuccess(c, response_models.PredictionResult{Prediction: prediction})
}

// POST /chat
func (q *QuizController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if !bindBody(c, &req) {
		return
	}

	reply, err := q.quizService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, chatErrors)
		return
	}
	utils.RespondSuccess(c, response_models.ChatResponse{Response: reply})
}

// OPTIONS /chat
func (q *QuizController) ChatPreflightHandler(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// bindBody decodes the JSON body into req. An empty body leaves req zeroed so
// the service reports the missing field.
func bindBody(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}
