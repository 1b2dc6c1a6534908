// Package w2v adapts a pre-trained word2vec model to the association index
// interface the decision engines use, so the AI seats can score against
// real embeddings instead of the bundled table.
package w2v

import (
	"fmt"
	"log"
	"os"

	"code.sajari.com/word2vec"

	"github.com/liusenjun/Codenames-AI-game/codenames"
	"github.com/liusenjun/Codenames-AI-game/wordassoc"
)

// relatedN is how many neighbors to pull from the model per query before
// filtering by strength.
const relatedN = 50

// Index wraps a word2vec model. Like the table index, it's read-only after
// load and safe to share across matches.
type Index struct {
	model *word2vec.Model
}

// New reads a binary-formatted word2vec model file.
func New(file string) (*Index, error) {
	log.Println("Opening w2v model...")
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file %q: %v", file, err)
	}
	defer f.Close()

	log.Println("Reading w2v model...")
	model, err := word2vec.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model file %q: %v", file, err)
	}

	log.Println("Read w2v model")
	return &Index{model: model}, nil
}

// StrengthBetween returns the cosine similarity of the two words, or 0 if
// either word is unknown to the model. Cosine similarity is symmetric,
// matching the table index's contract.
func (ix *Index) StrengthBetween(a, b string) float64 {
	s, err := ix.model.Cos(exp(a), exp(b))
	if err != nil {
		// Unknown words have no computable association.
		return 0
	}
	return float64(s)
}

// RelatedWords returns the model's nearest neighbors at or above
// minStrength. Unknown words yield an empty result.
func (ix *Index) RelatedWords(word string, minStrength float64) []wordassoc.Relation {
	word = codenames.NormalizeWord(word)
	matches, err := ix.model.CosN(exp(word), relatedN)
	if err != nil {
		return nil
	}

	var out []wordassoc.Relation
	for _, m := range matches {
		w := codenames.NormalizeWord(m.Word)
		if w == word || float64(m.Score) < minStrength {
			continue
		}
		out = append(out, wordassoc.Relation{Word: w, Strength: float64(m.Score)})
	}
	return out
}

func exp(w string) word2vec.Expr {
	expr := word2vec.Expr{}
	expr.Add(1, codenames.NormalizeWord(w))
	return expr
}
