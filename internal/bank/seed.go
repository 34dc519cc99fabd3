package bank

import "github.com/abhisek/quizline/internal/quiz"

// defaultBank is the built-in bank, validated once at init.
var defaultBank = MustNew("Science & Algebra", seedQuestions())

// Default returns the built-in question bank.
func Default() *Bank {
	return defaultBank
}

func seedQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:     1,
			Kind:   quiz.KindMultipleChoice,
			Prompt: "What role does sunlight play in photosynthesis?",
			Points: 10,
			Options: []string{
				"It provides energy to make food",
				"It helps plants absorb water",
				"It turns leaves green",
			},
			CorrectOption: "It provides energy to make food",
			Explanation:   "Plants capture light energy and use it to turn water and carbon dioxide into sugar.",
		},
		{
			ID:     2,
			Kind:   quiz.KindMatching,
			Prompt: "Match the algebraic terms with their definitions",
			Points: 20,
			Items: []quiz.Item{
				{ID: "variable", Content: "Variable"},
				{ID: "constant", Content: "Constant"},
				{ID: "coefficient", Content: "Coefficient"},
				{ID: "expression", Content: "Expression"},
			},
			Targets: []quiz.Item{
				{ID: "variable-def", Content: "A symbol that can represent different values"},
				{ID: "constant-def", Content: "A value that doesn't change"},
				{ID: "coefficient-def", Content: "A number that multiplies a variable"},
				{ID: "expression-def", Content: "A combination of numbers and variables"},
			},
			Pairing: map[string]string{
				"variable":    "variable-def",
				"constant":    "constant-def",
				"coefficient": "coefficient-def",
				"expression":  "expression-def",
			},
		},
	}
}
