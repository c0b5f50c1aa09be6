package main

import (
	"errors"

	"github.com/manifoldco/promptui"
)

const (
	promptDone = "Done"
	promptAll  = "Add all"
)

// chooseSkills lets the user pick skills to add to the profile. Tests replace it.
var chooseSkills = promptSkills

func promptSkills(candidates []string) ([]string, error) {
	remaining := append([]string{}, candidates...)
	chosen := []string{}

	for len(remaining) > 0 {
		skillPrompt := promptui.Select{
			Label: "Choose a skill to add to your profile and press ENTER",
			Items: append(append([]string{}, remaining...), promptAll, promptDone),
		}

		idx, selected, err := skillPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return chosen, nil
			}
			return nil, err
		}

		switch selected {
		case promptDone:
			return chosen, nil
		case promptAll:
			return append(chosen, remaining...), nil
		default:
			chosen = append(chosen, selected)
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}
	}
	return chosen, nil
}
