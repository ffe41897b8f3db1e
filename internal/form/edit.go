package form

import (
	"context"
	"fmt"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/settings"
)

// editSetting edits one setting, offering restore first when the form edits
// default settings.
func (s *Session) editSetting(ctx context.Context, key string) error {
	c, ok := s.form.Control(key)
	if !ok {
		return nil
	}
	if c.Disabled {
		return ignoreBack(s.ui.Note(c.Title, c.Tooltip))
	}
	if c.Resettable {
		var action string
		options := []string{messages.FormEditAction, messages.FormRestoreAction, messages.FormMenuBack}
		if err := s.ui.Select(c.Title, options, &action); err != nil {
			return ignoreBack(err)
		}
		switch action {
		case messages.FormRestoreAction:
			restore := false
			if err := s.ui.Confirm(fmt.Sprintf(messages.FormRestoreDefaultFmt, c.Title), &restore); err != nil {
				return ignoreBack(err)
			}
			if !restore {
				return nil
			}
			if err := s.form.Controller().Reset(key); err != nil {
				return s.ui.Note(messages.FormErrorTitle, err.Error())
			}
			return nil
		case messages.FormEditAction:
		default:
			return nil
		}
	}
	return ignoreBack(s.editControl(ctx, c))
}

func fieldTitle(c settings.Control) string {
	title := c.Title
	if c.Prefix != "" || c.Suffix != "" {
		title += " (" + c.Prefix + "…" + c.Suffix + ")"
	}
	if c.Description != "" {
		title += "\n" + c.Description
	}
	return title
}

func (s *Session) editControl(ctx context.Context, c settings.Control) error {
	ctrl := s.form.Controller()
	change := ctrl.HandleChange(c.Key, c.Kind)
	switch c.Shape {
	case settings.ShapeCheckbox:
		checked := c.Checked
		if err := s.ui.Confirm(fieldTitle(c), &checked); err != nil {
			return err
		}
		change(settings.ChangeEvent{Target: settings.TargetInput, Checked: checked})
	case settings.ShapeSelect:
		label := optionLabel(c.Options, c.Selected)
		if err := s.ui.Select(fieldTitle(c), optionLabels(c.Options), &label); err != nil {
			return err
		}
		change(settings.ChangeEvent{Target: settings.TargetSelect, Value: optionKey(c.Options, label)})
	case settings.ShapeSelectOrCustom:
		return s.editSelectOrCustom(c, change)
	case settings.ShapeCustom:
		return s.editCustom(ctx, c)
	default:
		value := c.Value
		if err := s.ui.Input(fieldTitle(c), &value); err != nil {
			return err
		}
		change(settings.ChangeEvent{Target: settings.TargetInput, Value: value})
	}
	return nil
}

func (s *Session) editSelectOrCustom(c settings.Control, change func(settings.ChangeEvent)) error {
	label := messages.FormCustomOption
	if c.Selected != settings.CustomOptionKey {
		label = optionLabel(c.Options, c.Selected)
	}
	options := append(optionLabels(c.Options), messages.FormCustomOption)
	if err := s.ui.Select(fieldTitle(c), options, &label); err != nil {
		return err
	}
	if label != messages.FormCustomOption {
		change(settings.ChangeEvent{Target: settings.TargetSelect, Value: optionKey(c.Options, label)})
		return nil
	}
	change(settings.ChangeEvent{Target: settings.TargetSelect, Value: settings.CustomOptionKey})
	text := c.CustomText
	if err := s.ui.Input(fmt.Sprintf(messages.FormCustomValueTitleFmt, c.Title), &text); err != nil {
		return err
	}
	change(settings.ChangeEvent{Target: settings.TargetText, Value: text})
	return nil
}

func (s *Session) editCustom(ctx context.Context, c settings.Control) error {
	switch c.CustomForm {
	case settings.CustomInjuries:
		return s.editInjuries(ctx)
	case settings.CustomTragicDeaths:
		return s.editTragicDeaths(ctx)
	case settings.CustomPlayerBioInfo:
		return s.editBioInfo(ctx)
	case settings.CustomStopOnInjury:
		return s.editStopOnInjury(c)
	}
	return nil
}

// editStopOnInjury edits the checkbox and its hidden games partner together.
func (s *Session) editStopOnInjury(c settings.Control) error {
	ctrl := s.form.Controller()
	checked := c.Checked
	if err := s.ui.Confirm(fieldTitle(c), &checked); err != nil {
		return err
	}
	ctrl.HandleChange(c.Key, settings.KindBool)(settings.ChangeEvent{Target: settings.TargetInput, Checked: checked})
	if !checked {
		return nil
	}
	games := ctrl.Value(settings.KeyStopOnInjuryGames)
	if err := s.ui.Input(messages.FormStopOnInjuryGamesTitle, &games); err != nil {
		return err
	}
	ctrl.HandleChange(settings.KeyStopOnInjuryGames, settings.KindInt)(settings.ChangeEvent{Target: settings.TargetInput, Value: games})
	return nil
}

func optionLabels(options []settings.Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Label
	}
	return out
}

func optionKey(options []settings.Option, label string) string {
	for _, o := range options {
		if o.Label == label {
			return o.Key
		}
	}
	return label
}
