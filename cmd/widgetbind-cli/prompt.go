package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-widgetbind"
)

// promptValues asks for a value per discovered binding, prefilling the
// captured sample as the default. Entries already present in raw are kept;
// accepting the default leaves the slot untouched so apply falls back to
// the template's own content.
func promptValues(bindings widgetbind.BindingMap, samples widgetbind.ValueMap, raw map[string]any) error {
	for _, id := range bindings.Identifiers() {
		if _, exists := raw[id]; exists {
			continue
		}

		defaultValue := ""
		if sample, ok := samples[id]; ok {
			if s, ok := sample.StringValue(); ok {
				defaultValue = s
			}
		}

		var answer string
		prompt := &survey.Input{
			Message: fmt.Sprintf("Value for %s:", id),
			Default: defaultValue,
		}
		if err := survey.AskOne(prompt, &answer); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return errors.New("aborted")
			}
			return err
		}

		if answer != "" && answer != defaultValue {
			raw[id] = answer
		}
	}
	return nil
}
