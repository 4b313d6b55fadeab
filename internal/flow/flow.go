// Package flow runs the multi-step conversations that collect the fields of a
// financial operation one message at a time.
//
// A flow is a Definition: an ordered list of named steps over a typed draft.
// The Engine keeps at most one active flow per user and moves it forward as
// replies arrive.
package flow

import (
	"errors"
	"strings"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
)

type Kind string

const (
	Registration    Kind = "registration"
	AddExpense      Kind = "add_expense"
	AddIncome       Kind = "add_income"
	SetBudget       Kind = "set_budget"
	AddReminder     Kind = "add_reminder"
	AddFutureIncome Kind = "add_future_income"
	Export          Kind = "export"
)

var kindLabels = map[Kind]string{
	Registration:    "cadastro",
	AddExpense:      "nova despesa",
	AddIncome:       "nova receita",
	SetBudget:       "definição de orçamento",
	AddReminder:     "novo lembrete",
	AddFutureIncome: "nova receita futura",
	Export:          "exportação",
}

// Label is the pt-BR name shown to users.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}

	return string(k)
}

var (
	ErrFlowAlreadyActive = errors.New("flow already active")
	ErrNoActiveFlow      = errors.New("no active flow")
	ErrCompletionFailed  = errors.New("flow completion failed")
	ErrUnknownFlow       = errors.New("unknown flow")
	errIncomplete        = errors.New("incomplete draft")
)

// Input is one user reply to the current step.
type Input struct {
	Text  string
	Value string // payload of a pressed option
}

// String returns the option value when present, otherwise the trimmed text.
func (in Input) String() string {
	if in.Value != "" {
		return in.Value
	}

	return strings.TrimSpace(in.Text)
}

// Session identifies who a flow runs for.
type Session struct {
	UserID   int64
	Name     string
	Currency string
}

func (s Session) currency() string {
	if s.Currency == "" {
		return "R$"
	}

	return s.Currency
}

// RetryError rejects a reply. The step is asked again with Reason.
type RetryError struct {
	Reason string
}

func (e *RetryError) Error() string {
	return e.Reason
}

func Retry(reason string) error {
	return &RetryError{Reason: reason}
}

// AbortError ends a flow at completion with Reason as the final message,
// for outcomes that retrying cannot fix.
type AbortError struct {
	Reason string
}

func (e *AbortError) Error() string {
	return e.Reason
}

func Abort(reason string) error {
	return &AbortError{Reason: reason}
}

// Result is what the caller sends back to the user.
type Result struct {
	Kind    Kind
	Replies []chat.Reply
	Done    bool
	// Retry holds the rejection reason when the reply was not accepted.
	Retry string
}

const completionRetryMessage = "⚠️ Não consegui concluir agora. Envie qualquer mensagem para tentar novamente ou /cancelar para desistir."
