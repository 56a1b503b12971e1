package response_models

type QuestionAnswerPair struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

type QuestionsResponse struct {
	QuestionsAndAnswers []QuestionAnswerPair `json:"questions_and_answers"`
}

type SubtopicScore struct {
	Subtopic string  `json:"subtopic"`
	Score    float64 `json:"score"`
}

type Feedback struct {
	Strengths          []string        `json:"strengths"`
	Weaknesses         []string        `json:"weaknesses"`
	Recommendations    []string        `json:"recommendations"`
	PerformanceByTopic []SubtopicScore `json:"performanceByTopic"`
	OverallScore       float64         `json:"overallScore"`
}

type FeedbackResponse struct {
	Feedback Feedback `json:"feedback"`
}

type PredictionResult struct {
	Prediction float64 `json:"prediction"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
