package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
	"github.com/MrJamesThe3rd/finchat/internal/intent"
)

// Done as a Next target finishes the flow.
const Done = "done"

// PendingStep is where a flow waits after its completion failed. Any reply
// retries the completion.
const PendingStep = "pending_completion"

// Step collects one field of the draft.
type Step[D any] struct {
	Name   string
	Prompt func(ctx context.Context, sess Session, d D) (chat.Reply, error)
	// Skip reports whether the draft already holds this step's value.
	Skip func(d D) bool
	// Apply validates in and stores it in d. A RetryError re-asks the step.
	Apply func(ctx context.Context, sess Session, d *D, in Input) error
	// Next names the following step. Nil or "" moves to the next in order.
	Next func(d D) string
}

// Definition is a flow over the draft type D.
type Definition[D any] struct {
	Kind  Kind
	Steps []Step[D]
	// Seed fills the draft from what the intent classifier extracted.
	Seed     func(d *D, p intent.Params)
	Complete func(ctx context.Context, sess Session, d D) ([]chat.Reply, error)
}

// Flow is implemented by *Definition.
type Flow interface {
	kind() Kind
	begin(ctx context.Context, sess Session, seed intent.Params) (transition, error)
	advance(ctx context.Context, sess Session, step string, draft any, in Input) (transition, error)
}

type transition struct {
	step    string
	draft   any
	replies []chat.Reply
	done    bool
	retry   string
}

func (def *Definition[D]) kind() Kind {
	return def.Kind
}

func (def *Definition[D]) begin(ctx context.Context, sess Session, seed intent.Params) (transition, error) {
	var d D
	if def.Seed != nil {
		def.Seed(&d, seed)
	}

	return def.enter(ctx, sess, 0, d)
}

func (def *Definition[D]) advance(ctx context.Context, sess Session, step string, draft any, in Input) (transition, error) {
	d, ok := draft.(D)
	if !ok {
		return transition{}, fmt.Errorf("%s: unexpected draft %T", def.Kind, draft)
	}

	if step == PendingStep {
		return def.complete(ctx, sess, d)
	}

	idx := def.index(step)
	if idx < 0 {
		return transition{}, fmt.Errorf("%s: unknown step %q", def.Kind, step)
	}

	st := def.Steps[idx]

	next := d
	if err := st.Apply(ctx, sess, &next, in); err != nil {
		var retry *RetryError
		if !errors.As(err, &retry) {
			return transition{}, fmt.Errorf("applying %s: %w", st.Name, err)
		}

		reply, err := st.Prompt(ctx, sess, d)
		if err != nil {
			return transition{}, fmt.Errorf("prompting %s: %w", st.Name, err)
		}

		reply.Text = "❌ " + retry.Reason + "\n\n" + reply.Text

		return transition{step: step, draft: d, replies: []chat.Reply{reply}, retry: retry.Reason}, nil
	}

	return def.enter(ctx, sess, def.next(idx, next), next)
}

// enter prompts the first step from idx on that the draft does not satisfy,
// completing the flow when there is none.
func (def *Definition[D]) enter(ctx context.Context, sess Session, idx int, d D) (transition, error) {
	for idx < len(def.Steps) {
		st := def.Steps[idx]
		if st.Skip == nil || !st.Skip(d) {
			reply, err := st.Prompt(ctx, sess, d)
			if err != nil {
				return transition{}, fmt.Errorf("prompting %s: %w", st.Name, err)
			}

			return transition{step: st.Name, draft: d, replies: []chat.Reply{reply}}, nil
		}

		idx = def.next(idx, d)
	}

	return def.complete(ctx, sess, d)
}

func (def *Definition[D]) complete(ctx context.Context, sess Session, d D) (transition, error) {
	replies, err := def.Complete(ctx, sess, d)
	if err == nil {
		return transition{replies: replies, done: true}, nil
	}

	var abort *AbortError
	if errors.As(err, &abort) {
		return transition{replies: []chat.Reply{chat.Text(abort.Reason).WithMenu()}, done: true}, nil
	}

	t := transition{step: PendingStep, draft: d, replies: []chat.Reply{chat.Text(completionRetryMessage)}}

	return t, fmt.Errorf("%w: %s: %w", ErrCompletionFailed, def.Kind, err)
}

// next returns the index of the step after idx. A Next naming an unknown
// step ends the flow.
func (def *Definition[D]) next(idx int, d D) int {
	st := def.Steps[idx]
	if st.Next == nil {
		return idx + 1
	}

	switch name := st.Next(d); name {
	case "":
		return idx + 1
	case Done:
		return len(def.Steps)
	default:
		if i := def.index(name); i >= 0 {
			return i
		}

		return len(def.Steps)
	}
}

func (def *Definition[D]) index(name string) int {
	for i, st := range def.Steps {
		if st.Name == name {
			return i
		}
	}

	return -1
}
