// Binary boardgen-cli prints a freshly generated board as comma-separated
// word:agent pairs, handy for seeding test scenarios.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/liusenjun/Codenames-AI-game/boardgen"
	"github.com/liusenjun/Codenames-AI-game/codenames"
)

var agentNames = map[codenames.Agent]string{
	codenames.RedAgent:  "red",
	codenames.BlueAgent: "blue",
	codenames.Bystander: "bystander",
	codenames.Assassin:  "assassin",
}

func main() {
	var (
		starter = flag.String("starter", "red", "Which team goes first, 'red' or 'blue'.")
		seed    = flag.Int64("seed", 0, "Board seed, 0 means time-based.")
	)
	flag.Parse()

	team := codenames.RedTeam
	if *starter == "blue" {
		team = codenames.BlueTeam
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	bd, err := boardgen.New(codenames.DefaultWords, team, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("Failed to generate board: %v", err)
	}

	var buf bytes.Buffer
	for i, card := range bd.Cards {
		buf.WriteString(fmt.Sprintf("%s:%s", card.Codename, agentNames[card.Agent]))
		if i != len(bd.Cards)-1 {
			buf.WriteString(",")
		}
	}

	fmt.Println(buf.String())
}
