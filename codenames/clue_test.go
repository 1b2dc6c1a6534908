package codenames

import (
	"errors"
	"testing"
)

func TestValidateClueWord(t *testing.T) {
	boardWords := []string{"lion", "bookcase", "firehouse", "table"}

	tests := []struct {
		desc    string
		word    string
		wantErr bool
	}{
		{
			desc: "unrelated word is legal",
			word: "ocean",
		},
		{
			desc:    "empty word",
			word:    "",
			wantErr: true,
		},
		{
			desc:    "multi-token word",
			word:    "new york",
			wantErr: true,
		},
		{
			desc:    "tokens split by a newline",
			word:    "sea\nhorse",
			wantErr: true,
		},
		{
			desc:    "tokens split by a non-breaking space",
			word:    "sea horse",
			wantErr: true,
		},
		{
			desc:    "equals a board word",
			word:    "lion",
			wantErr: true,
		},
		{
			desc:    "substring of a board word",
			word:    "book",
			wantErr: true,
		},
		{
			desc:    "superstring of a board word",
			word:    "turntables",
			wantErr: true,
		},
		{
			desc:    "contains a board word in the middle",
			word:    "firehouses",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			err := ValidateClueWord(test.word, boardWords)
			if test.wantErr {
				var lerr *ClueLegalityError
				if !errors.As(err, &lerr) {
					t.Fatalf("ValidateClueWord(%q) = %v, want ClueLegalityError", test.word, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateClueWord(%q): %v", test.word, err)
			}
		})
	}
}

func TestValidateClue(t *testing.T) {
	b := &Board{Cards: []Card{
		{Codename: "lion", Agent: RedAgent},
		{Codename: "table", Agent: BlueAgent},
	}}

	if err := ValidateClue(&Clue{Word: "ocean", Count: 2}, b); err != nil {
		t.Errorf("ValidateClue(ocean 2): %v", err)
	}
	if err := ValidateClue(&Clue{Word: "ocean", Count: 0}, b); err != nil {
		t.Errorf("ValidateClue(ocean 0): %v", err)
	}

	var lerr *ClueLegalityError
	if err := ValidateClue(&Clue{Word: "ocean", Count: -1}, b); !errors.As(err, &lerr) {
		t.Errorf("ValidateClue with negative count = %v, want ClueLegalityError", err)
	}
	if err := ValidateClue(&Clue{Word: "lion", Count: 1}, b); !errors.As(err, &lerr) {
		t.Errorf("ValidateClue with board word = %v, want ClueLegalityError", err)
	}
}
