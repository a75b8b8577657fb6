package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type reportPayload struct {
	GameID  uint   `validate:"required"`
	Round   int    `validate:"min=1,max=5"`
	Winner  uint   `validate:"required"`
	Loser   uint   `validate:"required,nefield=Winner"`
	Outcome string `validate:"omitempty,oneof=win loss"`
}

func TestParseError(t *testing.T) {
	v := validator.New()
	err := v.Struct(reportPayload{Round: 7, Winner: 3, Loser: 3, Outcome: "draw"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	got := ParseError(err)
	want := map[string]string{
		"gameid":  "The GameID field is required.",
		"round":   "The Round field must not exceed 5.",
		"loser":   "The Loser field must differ from Winner.",
		"outcome": "The Outcome field must be one of the following: win, loss.",
	}
	if len(got) != len(want) {
		t.Fatalf("ParseError() = %v", got)
	}
	for k, msg := range want {
		if got[k] != msg {
			t.Errorf("%s: got %q, want %q", k, got[k], msg)
		}
	}
}

func TestParseErrorPlain(t *testing.T) {
	got := ParseError(errors.New("unexpected EOF"))
	if got["error"] != "unexpected EOF" {
		t.Errorf("ParseError() = %v", got)
	}
	if len(ParseError(nil)) != 0 {
		t.Errorf("ParseError(nil) should be empty")
	}
}
