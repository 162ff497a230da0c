package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// PromptYesNo asks a yes/no question and returns true for yes.
func PromptYesNo(question string, defaultYes bool) (bool, error) {
	defaultLabel := "y/N"
	if defaultYes {
		defaultLabel = "Y/n"
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s [%s]", question, defaultLabel),
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		// If user just pressed enter, use default
		if result == "" {
			return defaultYes, nil
		}
		return false, err
	}

	result = strings.ToLower(strings.TrimSpace(result))
	return result == "y" || result == "yes", nil
}

// SelectItem represents an item in a detailed select list.
type SelectItem struct {
	Name        string
	Description string
}

// PromptSelectDetailed shows a selection list with descriptions and
// returns the chosen index. cursor preselects an item.
func PromptSelectDetailed(label string, items []SelectItem, cursor int) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ .Name | cyan }} {{ .Description | faint }}",
		Inactive: "  {{ .Name }} {{ .Description | faint }}",
		Selected: "{{ .Name | green }}",
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		CursorPos: cursor,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index].Name), strings.ToLower(input))
		},
	}

	idx, _, err := prompt.Run()
	return idx, err
}
