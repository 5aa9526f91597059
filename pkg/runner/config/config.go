package config

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scriv/pkg/codec"
	"tableflip.dev/scriv/pkg/store"
)

// Show prints the stored settings.
type Show struct {
	Persistence store.Persistence
}

func (s *Show) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not show config, no persistence")
	}
	settings, err := s.Persistence.LoadSettings()
	if err != nil {
		return err
	}
	fmt.Printf("mode: %s\n", settings.DefaultMode)
	fmt.Printf("autosave: %s\n", onOff(settings.Autosave))
	fmt.Printf("linenumbers: %s\n", onOff(settings.ShowLineNumbers))
	return nil
}

// Set updates one settings field and persists the result.
type Set struct {
	Key         string
	Value       string
	Persistence store.Persistence
}

func (s *Set) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not set config, no persistence")
	}
	settings, err := s.Persistence.LoadSettings()
	if err != nil {
		return err
	}

	switch s.Key {
	case "mode":
		mode, err := codec.ParseMode(s.Value)
		if err != nil {
			return err
		}
		settings.DefaultMode = mode
	case "autosave":
		on, err := parseOnOff(s.Value)
		if err != nil {
			return err
		}
		settings.Autosave = on
	case "linenumbers":
		on, err := parseOnOff(s.Value)
		if err != nil {
			return err
		}
		settings.ShowLineNumbers = on
	default:
		return fmt.Errorf("unknown setting %q, want mode, autosave or linenumbers", s.Key)
	}

	if err := s.Persistence.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("set %s to %s\n", s.Key, s.Value)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseOnOff(v string) (bool, error) {
	switch v {
	case "on", "true":
		return true, nil
	case "off", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q, want on or off", v)
}
