// Binary assoc-topn prints the strongest associations for a list of
// words, which is handy for eyeballing the quality of an association
// source before handing it to the AI players.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/liusenjun/Codenames-AI-game/ai"
	"github.com/liusenjun/Codenames-AI-game/codenames"
	"github.com/liusenjun/Codenames-AI-game/w2v"
	"github.com/liusenjun/Codenames-AI-game/wordassoc"
)

func main() {
	var (
		assocFile = flag.String("assoc_file", "", "A CSV file of word associations. If empty, a small built-in set is used.")
		modelFile = flag.String("model_file", "", "A binary-formatted word2vec pre-trained model file. Takes precedence over -assoc_file.")

		wordList = flag.String("words", "", "Comma-separated list of words. Use -word_file to pass a file of words instead.")
		wordFile = flag.String("word_file", "", "File with a list of words, one per line. Use -words to pass a list in manually instead.")

		topN        = flag.Int("top_n", 5, "The number of closest words to output per input word.")
		minStrength = flag.Float64("min_strength", 0.1, "The minimum association strength to output.")
	)
	flag.Parse()

	words, err := loadWords(*wordList, *wordFile)
	if err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}

	ix, err := loadIndex(*modelFile, *assocFile)
	if err != nil {
		log.Fatalf("Failed to load word associations: %v", err)
	}

	for _, w := range words {
		rels := ix.RelatedWords(w, *minStrength)
		if len(rels) > *topN {
			rels = rels[:*topN]
		}

		var sb strings.Builder
		sb.WriteString(w)
		sb.WriteString(" ->")
		for _, rel := range rels {
			fmt.Fprintf(&sb, " %s (%.3f)", rel.Word, rel.Strength)
		}
		fmt.Println(sb.String())
	}
}

func loadWords(wordList, wordFile string) ([]string, error) {
	var raw []string
	switch {
	case wordList != "":
		raw = strings.Split(wordList, ",")
	case wordFile != "":
		content, err := os.ReadFile(wordFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", wordFile, err)
		}
		raw = strings.Split(string(content), "\n")
	default:
		raw = codenames.DefaultWords
	}

	var words []string
	for _, w := range raw {
		if w := codenames.NormalizeWord(w); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

func loadIndex(modelFile, assocFile string) (ai.Index, error) {
	switch {
	case modelFile != "":
		return w2v.New(modelFile)
	case assocFile != "":
		return wordassoc.Load(assocFile)
	default:
		return wordassoc.Default(), nil
	}
}
