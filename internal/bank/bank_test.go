package bank

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizline/internal/quiz"
)

func TestDefault_SeedBankIsValid(t *testing.T) {
	b := Default()

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if b.TotalPoints() != 30 {
		t.Errorf("TotalPoints = %d, want 30", b.TotalPoints())
	}
	q := b.At(0)
	if q.Kind != quiz.KindMultipleChoice || q.CorrectOption != "It provides energy to make food" {
		t.Errorf("unexpected first question: %+v", q)
	}
	if b.At(1).Kind != quiz.KindMatching {
		t.Errorf("second question kind = %q, want matching", b.At(1).Kind)
	}
}

func TestNew_OrdersByID(t *testing.T) {
	b, err := New("t", []quiz.Question{
		mc(3), mc(1), mc(2),
	})
	require.NoError(t, err)

	var ids []int
	for _, q := range b.Questions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, 1, b.IndexOf(2))
	assert.Equal(t, -1, b.IndexOf(99))
}

func TestQuestions_ReturnsCopies(t *testing.T) {
	b := Default()
	qs := b.Questions()
	qs[0].Options[0] = "tampered"
	qs[1].Pairing["variable"] = "constant-def"

	q, ok := b.Get(1)
	require.True(t, ok)
	assert.Equal(t, "It provides energy to make food", q.Options[0])
	q2, _ := b.Get(2)
	assert.Equal(t, "variable-def", q2.Pairing["variable"])
}

func TestNew_InputNotAliased(t *testing.T) {
	qs := []quiz.Question{mc(1)}
	b, err := New("t", qs)
	require.NoError(t, err)

	qs[0].Options[0] = "changed"
	assert.Equal(t, "a", b.At(0).Options[0])
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		questions []quiz.Question
		wantMsg   string
	}{
		{"empty bank", nil, "no questions"},
		{"duplicate id", []quiz.Question{mc(1), mc(1)}, "duplicate question ID"},
		{"non-positive id", []quiz.Question{mc(0)}, "ID must be > 0"},
		{"zero points", []quiz.Question{withPoints(mc(1), 0)}, "points must be > 0"},
		{"unknown kind", []quiz.Question{{ID: 1, Kind: "essay", Points: 1}}, "unknown kind"},
		{"correct not an option", []quiz.Question{func() quiz.Question {
			q := mc(1)
			q.CorrectOption = "z"
			return q
		}()}, "not one of the options"},
		{"duplicate option", []quiz.Question{func() quiz.Question {
			q := mc(1)
			q.Options = []string{"a", "a"}
			return q
		}()}, "duplicate option"},
		{"zero items", []quiz.Question{{ID: 1, Kind: quiz.KindMatching, Points: 20}}, "no items"},
		{"missing pairing", []quiz.Question{func() quiz.Question {
			q := matching(1)
			delete(q.Pairing, "x")
			return q
		}()}, "no entry in the pairing table"},
		{"pairing to unknown target", []quiz.Question{func() quiz.Question {
			q := matching(1)
			q.Pairing["x"] = "nowhere"
			return q
		}()}, "nonexistent target"},
		{"pairing from unknown item", []quiz.Question{func() quiz.Question {
			q := matching(1)
			q.Pairing["ghost"] = "y-def"
			return q
		}()}, "nonexistent item"},
		{"two items share a target", []quiz.Question{func() quiz.Question {
			q := matching(1)
			q.Pairing["y"] = "x-def"
			return q
		}()}, "paired with both"},
		{"duplicate item id", []quiz.Question{func() quiz.Question {
			q := matching(1)
			q.Items = append(q.Items, quiz.Item{ID: "x"})
			return q
		}()}, "duplicate item ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("t", tt.questions)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, quiz.ErrInvalidQuestion) {
				t.Errorf("error should wrap ErrInvalidQuestion, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should mention %q, got: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	_, err := New("t", []quiz.Question{withPoints(mc(1), 0), mc(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points must be > 0")
	assert.Contains(t, err.Error(), "duplicate question ID")
}

func TestLoad_YAML(t *testing.T) {
	b, err := Load(filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Science & Algebra", b.Title())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 45, b.TotalPoints())

	q, ok := b.Get(3)
	require.True(t, ok)
	assert.Equal(t, quiz.KindMatching, q.Kind)
	assert.Equal(t, "largest", q.Pairing["jupiter"])
	assert.Equal(t, "Closest to the sun", q.TargetContent("closest"))
}

func TestLoad_JSON(t *testing.T) {
	b, err := Load(filepath.Join("testdata", "valid.json"))
	require.NoError(t, err)

	q := b.At(0)
	assert.Equal(t, 7, q.ID)
	assert.Equal(t, "4", q.CorrectOption)
}

func TestLoad_ZeroItemMatchingRejected(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "zero_items.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestion)
	assert.Contains(t, err.Error(), "no items")
}

func TestLoad_SchemaRejectsUnknownKind(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_shape.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestion)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParse_SyntaxErrorIsNotInvalidQuestion(t *testing.T) {
	_, err := Parse([]byte("{not json"), FormatJSON)
	require.Error(t, err)
	assert.False(t, errors.Is(err, quiz.ErrInvalidQuestion))
}

func TestParse_SchemaRequiresKindFields(t *testing.T) {
	doc := `
questions:
  - id: 1
    kind: multiple_choice
    prompt: Missing options
    points: 5
`
	_, err := Parse([]byte(doc), FormatYAML)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestion)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"bank.yaml", FormatYAML, false},
		{"bank.YML", FormatYAML, false},
		{"bank.json", FormatJSON, false},
		{"bank.toml", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got)
	}
}

func mc(id int) quiz.Question {
	return quiz.Question{
		ID:            id,
		Kind:          quiz.KindMultipleChoice,
		Prompt:        "pick",
		Points:        10,
		Options:       []string{"a", "b"},
		CorrectOption: "a",
	}
}

func matching(id int) quiz.Question {
	return quiz.Question{
		ID:      id,
		Kind:    quiz.KindMatching,
		Prompt:  "match",
		Points:  20,
		Items:   []quiz.Item{{ID: "x"}, {ID: "y"}},
		Targets: []quiz.Item{{ID: "x-def"}, {ID: "y-def"}},
		Pairing: map[string]string{"x": "x-def", "y": "y-def"},
	}
}

func withPoints(q quiz.Question, p int) quiz.Question {
	q.Points = p
	return q
}
