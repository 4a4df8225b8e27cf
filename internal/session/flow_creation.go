package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/halcyar/go-saga/internal"
	"github.com/halcyar/go-saga/internal/game"
	"github.com/halcyar/go-saga/internal/narrate"
	"github.com/halcyar/go-saga/internal/storage"
)

// creationFlow walks a fresh connection to a playable save document:
// a name, then either the existing save under that name or a new
// character built from background, attributes, and starting kit.
type creationFlow struct {
	saves        storage.Storer[*game.GameState]
	startChapter string
	startScene   string
}

// Run returns the save document, its store id, and whether the
// character is newly created.
func (f *creationFlow) Run(p *internal.Prompter, w io.Writer) (*game.GameState, string, bool, error) {
	w.Write([]byte("The lanterns are lit. A tale is waiting.\n\n"))

	for {
		name, err := p.Prompt("By what name will the tale know you? ", internal.WithValidator(
			func(str string) (bool, string) {
				if !storage.ValidIdentifier(str) {
					return false, "Names may use letters, digits, hyphens, and underscores.\n"
				}
				return true, ""
			},
		))
		if err != nil {
			return nil, "", false, err
		}

		saveID := strings.ToLower(name)

		if existing := f.saves.Get(saveID); existing != nil {
			if existing.Player.HP > 0 {
				ok, err := p.PromptYN(fmt.Sprintf("A saved tale belongs to %s. Take it up again (Y/N)? ", existing.Player.Name))
				if err != nil {
					return nil, "", false, err
				}
				if ok {
					return existing, saveID, false, nil
				}
				continue
			}

			// The save under this name ended in defeat; only a fresh
			// character can use it.
			ok, err := p.PromptYN(fmt.Sprintf("The tale of %s has already ended. Begin anew (Y/N)? ", existing.Player.Name))
			if err != nil {
				return nil, "", false, err
			}
			if !ok {
				continue
			}
		} else {
			ok, err := p.PromptYN(fmt.Sprintf("Did I get that right, %s (Y/N)? ", name))
			if err != nil {
				return nil, "", false, err
			}
			if !ok {
				continue
			}
		}

		state, err := f.newCharacter(p, w, name)
		if err != nil {
			return nil, "", false, err
		}

		if err := f.saves.Save(saveID, state); err != nil {
			return nil, "", false, fmt.Errorf("saving new character: %w", err)
		}

		return state, saveID, true, nil
	}
}

func (f *creationFlow) newCharacter(p *internal.Prompter, w io.Writer, name string) (*game.GameState, error) {
	background, err := f.chooseBackground(p, w)
	if err != nil {
		return nil, err
	}

	attrs, err := f.allocateAttributes(p, w)
	if err != nil {
		return nil, err
	}

	player, err := game.NewPlayer(name, background, attrs)
	if err != nil {
		return nil, fmt.Errorf("building character: %w", err)
	}

	state := game.NewGameState(player)
	state.Chapter = f.startChapter
	state.Scene = f.startScene

	fmt.Fprintf(w, "\nWelcome, %s the %s.\n", player.Name, narrate.Capitalize(player.Background))

	return state, nil
}

func (f *creationFlow) chooseBackground(p *internal.Prompter, w io.Writer) (game.Background, error) {
	backgrounds := game.Backgrounds()

	w.Write([]byte("\nChoose your background:\n"))
	for i, b := range backgrounds {
		fmt.Fprintf(w, " %d) %s\n", i+1, b.Description())
	}

	sel, err := p.Prompt("Make your selection: ", internal.WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil || i < 1 || i > len(backgrounds) {
				return false, "Invalid selection!\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return "", err
	}

	i, err := strconv.Atoi(sel)
	if err != nil {
		return "", err
	}

	return backgrounds[i-1], nil
}

// allocateAttributes returns nil when the player keeps the default
// spread.
func (f *creationFlow) allocateAttributes(p *internal.Prompter, w io.Writer) (*game.Attributes, error) {
	custom, err := p.PromptYN("Shape your attributes yourself (Y/N)? ")
	if err != nil {
		return nil, err
	}
	if !custom {
		return nil, nil
	}

	fmt.Fprintf(w, "\nSpend %d points across strength, dexterity, intelligence, and perception (1-5 each).\n", game.AllocatablePoints)

	for {
		var vals [4]int
		for i, attr := range []string{"strength", "dexterity", "intelligence", "perception"} {
			v, err := f.promptAttribute(p, attr)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}

		alloc := game.Attributes{
			Strength:     vals[0],
			Dexterity:    vals[1],
			Intelligence: vals[2],
			Perception:   vals[3],
		}

		if err := game.ValidateAllocation(alloc); err != nil {
			fmt.Fprintf(w, "%s.\n", narrate.Capitalize(err.Error()))
			continue
		}

		return &alloc, nil
	}
}

func (f *creationFlow) promptAttribute(p *internal.Prompter, name string) (int, error) {
	sel, err := p.Prompt(fmt.Sprintf("  %s (1-5): ", name), internal.WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil || i < 1 || i > 5 {
				return false, "Enter a number from 1 to 5.\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(sel)
}
