package prompt

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

var errInvalidAnswer = errors.New("invalid response, please enter Y or N")

// Terminal спрашивает пользователя через терминал.
type Terminal struct{}

func (Terminal) AskYesNo(message string) (bool, error) {
	p := promptui.Prompt{
		Label:    message + " (y/n)",
		Validate: ValidateYesNo,
		Default:  "y",
	}
	resp, err := p.Run()
	if err != nil {
		return false, err
	}
	return IsYes(resp), nil
}

func ValidateYesNo(resp string) error {
	switch strings.ToLower(strings.TrimSpace(resp)) {
	case "y", "n", "yes", "no":
		return nil
	default:
		return errInvalidAnswer
	}
}

// IsYes reports whether a validated answer is positive.
func IsYes(resp string) bool {
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp != "" && resp[0] == 'y'
}
