package page

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonesrussell/mars-explorer/internal/render"
)

// Question is one multiple-choice quiz question.
type Question struct {
	Prompt  string
	Choices []string
	// Answer is the index of the correct choice.
	Answer int
}

// DefaultQuestions is the built-in quiz.
var DefaultQuestions = []Question{
	{
		Prompt:  "How many moons does Mars have?",
		Choices: []string{"None", "Two", "Four"},
		Answer:  1,
	},
	{
		Prompt:  "What is the tallest volcano on Mars?",
		Choices: []string{"Olympus Mons", "Mauna Kea", "Arsia Mons"},
		Answer:  0,
	},
	{
		Prompt:  "How long is a year on Mars?",
		Choices: []string{"365 Earth days", "520 Earth days", "687 Earth days"},
		Answer:  2,
	},
	{
		Prompt:  "Which rover is exploring Jezero Crater?",
		Choices: []string{"Curiosity", "Perseverance", "Spirit"},
		Answer:  1,
	},
	{
		Prompt:  "What gas makes up most of the Martian atmosphere?",
		Choices: []string{"Carbon dioxide", "Nitrogen", "Oxygen"},
		Answer:  0,
	},
}

// QuizPage is a stateless multiple-choice quiz. Answers arrive as q0..qN
// holding the chosen index.
type QuizPage struct {
	questions []Question
}

// NewQuizPage creates the quiz. Empty questions means DefaultQuestions.
func NewQuizPage(questions []Question) *QuizPage {
	if len(questions) == 0 {
		questions = DefaultQuestions
	}
	return &QuizPage{questions: questions}
}

// Score is the result of grading submitted answers.
type Score struct {
	Correct  int
	Total    int
	Answered int
	// Results holds, per question, whether it was answered correctly.
	Results []bool
}

// Grade scores the answers in query. Missing or invalid answers count as
// wrong but not answered.
func (p *QuizPage) Grade(query map[string][]string) Score {
	score := Score{Total: len(p.questions), Results: make([]bool, len(p.questions))}
	for i, q := range p.questions {
		choice, ok := chosen(query, i, len(q.Choices))
		if !ok {
			continue
		}
		score.Answered++
		if choice == q.Answer {
			score.Correct++
			score.Results[i] = true
		}
	}
	return score
}

// Render shows the quiz form, plus the score once any answer is submitted.
func (p *QuizPage) Render(_ context.Context, s render.Surface, req Request) error {
	s.Header("🎮 Mars Quiz")
	s.Text("Test what you know about the red planet.")

	fields := []render.Field{{Type: render.FieldHidden, Name: "page", Value: string(Quiz)}}
	for i, q := range p.questions {
		choice, answered := chosen(req.Query, i, len(q.Choices))
		options := make([]render.Option, len(q.Choices))
		for j, c := range q.Choices {
			options[j] = render.Option{
				Value:    strconv.Itoa(j),
				Label:    c,
				Selected: answered && choice == j,
			}
		}
		fields = append(fields, render.Field{
			Type:    render.FieldRadio,
			Name:    answerKey(i),
			Label:   fmt.Sprintf("%d. %s", i+1, q.Prompt),
			Options: options,
		})
	}
	s.Form(render.Form{Action: "/", Fields: fields, Submit: "Check answers"})

	score := p.Grade(req.Query)
	if score.Answered == 0 {
		return nil
	}

	s.Subheading(fmt.Sprintf("Score: %d / %d", score.Correct, score.Total))
	results := make([]string, len(p.questions))
	for i, q := range p.questions {
		if score.Results[i] {
			results[i] = fmt.Sprintf("✅ %d. Correct", i+1)
		} else {
			results[i] = fmt.Sprintf("❌ %d. The answer is %s", i+1, q.Choices[q.Answer])
		}
	}
	s.Bullets(results...)
	return nil
}

func answerKey(i int) string {
	return "q" + strconv.Itoa(i)
}

func chosen(query map[string][]string, i, choices int) (int, bool) {
	vals := query[answerKey(i)]
	if len(vals) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(vals[0])
	if err != nil || n < 0 || n >= choices {
		return 0, false
	}
	return n, true
}
