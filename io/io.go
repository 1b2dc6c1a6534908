// Package io implements terminal-backed seats: humans at a terminal
// filling the Spymaster and Operative interfaces, with the board rendered
// as a colored table.
package io

import (
	"bufio"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

// Spymaster prompts the user on the terminal for a clue.
type Spymaster struct {
	// In is a reader where the user's clue is read from.
	In io.Reader
	// Out is where the board and prompts are written to.
	Out io.Writer
}

func (s *Spymaster) GiveClue(view []codenames.SecretCell, team codenames.Team) (*codenames.Clue, error) {
	PrintSecretBoard(s.Out, view)
	sc := bufio.NewScanner(s.In)
	for {
		fmt.Fprintf(s.Out, "%s Spymaster, enter a clue [ex. 'muffins 3']: ", team)
		if !sc.Scan() {
			return nil, fmt.Errorf("scanner error: %v", sc.Err())
		}
		clue, err := codenames.ParseClue(sc.Text())
		if err != nil {
			fmt.Fprintf(s.Out, "%v\n", err)
			continue
		}
		clue.Team = team
		return clue, nil
	}
}

// Operative prompts the user on the terminal for a guess. Unknown and
// already-revealed words are re-prompted here; rule violations are left to
// the engine.
type Operative struct {
	In  io.Reader
	Out io.Writer
	// Team is which team this operative is on.
	Team codenames.Team
}

func (o *Operative) Guess(view []codenames.PublicCell, clue *codenames.Clue) (codenames.Guess, error) {
	PrintPublicBoard(o.Out, view)
	sc := bufio.NewScanner(o.In)
	for {
		fmt.Fprintf(o.Out, "%s Operative, enter a guess for clue '%s' (or 'pass'): ", o.Team, clue)
		if !sc.Scan() {
			return codenames.Guess{}, fmt.Errorf("scanner error: %v", sc.Err())
		}
		word := codenames.NormalizeWord(sc.Text())
		if word == "pass" || word == "" {
			return codenames.Guess{Pass: true}, nil
		}

		found := false
		for _, cell := range view {
			if cell.Codename != word {
				continue
			}
			if cell.Revealed {
				fmt.Fprintf(o.Out, "%q has already been revealed.\n", word)
			} else {
				return codenames.Guess{Position: cell.Position}, nil
			}
			found = true
			break
		}
		if !found {
			fmt.Fprintf(o.Out, "%q isn't on the board.\n", word)
		}
	}
}

// PrintSecretBoard renders the spymaster view: every card colored by its
// affiliation, revealed cards underlined.
func PrintSecretBoard(out io.Writer, view []codenames.SecretCell) {
	table := tablewriter.NewWriter(out)
	for i := 0; i < codenames.Rows; i++ {
		var row []string
		var colors []tablewriter.Colors
		for j := 0; j < codenames.Columns; j++ {
			cell := view[i*codenames.Columns+j]
			c := agentColors(cell.Agent)
			if cell.Revealed {
				c = append(c, tablewriter.UnderlineSingle)
			}
			colors = append(colors, c)
			row = append(row, cell.Codename)
		}
		table.Rich(row, colors)
	}
	table.Render()
}

// PrintPublicBoard renders the operative view: only revealed cards show
// their affiliation.
func PrintPublicBoard(out io.Writer, view []codenames.PublicCell) {
	table := tablewriter.NewWriter(out)
	for i := 0; i < codenames.Rows; i++ {
		var row []string
		var colors []tablewriter.Colors
		for j := 0; j < codenames.Columns; j++ {
			cell := view[i*codenames.Columns+j]
			var c tablewriter.Colors
			if cell.Revealed {
				c = append(agentColors(cell.Agent), tablewriter.UnderlineSingle)
			}
			colors = append(colors, c)
			row = append(row, cell.Codename)
		}
		table.Rich(row, colors)
	}
	table.Render()
}

func agentColors(a codenames.Agent) tablewriter.Colors {
	switch a {
	case codenames.BlueAgent:
		return tablewriter.Colors{tablewriter.FgBlueColor}
	case codenames.RedAgent:
		return tablewriter.Colors{tablewriter.FgHiRedColor}
	case codenames.Assassin:
		return tablewriter.Colors{tablewriter.BgHiRedColor}
	}
	return tablewriter.Colors{}
}
