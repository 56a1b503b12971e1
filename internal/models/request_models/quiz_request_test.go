package request_models

import (
	"reflect"
	"testing"
)

func TestDecodeQuizContentFeedbackLayout(t *testing.T) {
	raw := `{"topic":"Go","questions":["q1","q2"],"user_answers":["a1"],"correct_answers":["c1","c2"]}`

	got, err := DecodeQuizContent(raw, FeedbackLayout)
	if err != nil {
		t.Fatalf("DecodeQuizContent: %v", err)
	}
	want := QuizResult{
		Topic:          "Go",
		Questions:      []string{"q1", "q2"},
		UserAnswers:    []string{"a1"},
		CorrectAnswers: []string{"c1", "c2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result: got=%+v want=%+v", got, want)
	}
}

func TestDecodeQuizContentPredictionLayout(t *testing.T) {
	raw := `{"topic":"Go","questions":["q1"],"userAnswers":["a1"],"correctAnswers":["c1"]}`

	got, err := DecodeQuizContent(raw, PredictionLayout)
	if err != nil {
		t.Fatalf("DecodeQuizContent: %v", err)
	}
	if got.UserAnswers[0] != "a1" || got.CorrectAnswers[0] != "c1" {
		t.Fatalf("camelCase keys not decoded: %+v", got)
	}
}

func TestDecodeQuizContentRejectsMalformed(t *testing.T) {
	cases := map[string]struct {
		raw    string
		layout QuizContentLayout
	}{
		"not json":          {raw: "Q: what? A: this", layout: FeedbackLayout},
		"array":             {raw: `["topic"]`, layout: FeedbackLayout},
		"missing topic":     {raw: `{"questions":[],"user_answers":[],"correct_answers":[]}`, layout: FeedbackLayout},
		"wrong answer keys": {raw: `{"topic":"Go","questions":["q"],"user_answers":["a"],"correct_answers":["c"]}`, layout: PredictionLayout},
		"missing questions": {raw: `{"topic":"Go","userAnswers":[],"correctAnswers":[]}`, layout: PredictionLayout},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeQuizContent(tc.raw, tc.layout); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
