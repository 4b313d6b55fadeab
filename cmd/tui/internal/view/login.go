package view

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Login holds the identity the console speaks as.
type Login struct {
	UserID string
	Name   string
}

func validUserID(s string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return errors.New("informe um número positivo")
	}

	return nil
}

// ID returns the parsed user id. Call it after the form validated.
func (l *Login) ID() int64 {
	id, _ := strconv.ParseInt(strings.TrimSpace(l.UserID), 10, 64)
	return id
}

func NewLoginForm(l *Login) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("user_id").
				Title("ID do usuário").
				Description("Mesmo ID usado pelo gateway de mensagens").
				Placeholder("1").
				Validate(validUserID).
				Value(&l.UserID),
			huh.NewInput().
				Key("name").
				Title("Nome").
				Placeholder("Ana").
				Value(&l.Name),
		),
	).WithWidth(50).WithShowHelp(false)
}
