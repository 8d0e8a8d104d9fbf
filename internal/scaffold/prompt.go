package scaffold

import (
	"github.com/AlecAivazis/survey/v2"
)

// Defaults pre-fills prompt answers from persisted configuration.
type Defaults struct {
	Author  string
	License string
}

// PromptMetadata asks for the six metadata fields in fixed order. Answers
// are free text; validation happens afterwards on the whole record, not per
// prompt. A user interrupt surfaces as survey's terminal interrupt error.
func PromptMetadata(def Defaults) (*Metadata, error) {
	qs := []*survey.Question{
		{Name: "name", Prompt: &survey.Input{Message: "Name:"}},
		{Name: "description", Prompt: &survey.Input{Message: "Description:"}},
		{Name: "author", Prompt: &survey.Input{Message: "Author:", Default: def.Author}},
		{Name: "license", Prompt: &survey.Input{Message: "License:", Default: def.License}},
		{Name: "git", Prompt: &survey.Input{Message: "Git: [Y/N]"}},
		{Name: "directory", Prompt: &survey.Input{Message: "Package Directory:"}},
	}

	m := &Metadata{}
	if err := survey.Ask(qs, m); err != nil {
		return nil, err
	}
	return m, nil
}
