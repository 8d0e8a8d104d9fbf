// Package menu implements the interactive menu state machine. Menus are
// static configuration: nodes are built once at process start and only read
// afterwards. Each entry carries a tagged action — descend into a submenu,
// execute a command, or exit — so dispatch never goes through arbitrary
// callables keyed by label.
package menu

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ActionKind discriminates the menu action variants.
type ActionKind int

const (
	// ActionDescend moves the dispatcher to a submenu.
	ActionDescend ActionKind = iota
	// ActionExecute runs a terminal command, then returns to the top menu.
	ActionExecute
	// ActionExit ends the dispatch loop.
	ActionExit
)

// Action is a tagged variant: exactly one of Next or Run is set, depending
// on Kind.
type Action struct {
	Kind ActionKind
	Next *Node
	Run  func() error
}

// Descend returns an action that moves to the given submenu.
func Descend(next *Node) Action {
	return Action{Kind: ActionDescend, Next: next}
}

// Execute returns an action that runs fn and then re-enters the top menu.
// fn handles and reports its own domain failures; a returned error aborts
// the whole dispatch loop.
func Execute(fn func() error) Action {
	return Action{Kind: ActionExecute, Run: fn}
}

// Exit returns an action that ends the dispatch loop.
func Exit() Action {
	return Action{Kind: ActionExit}
}

// Entry pairs a presented label with its action.
type Entry struct {
	Label  string
	Action Action
}

// Node is one menu: a prompt and its ordered entries.
type Node struct {
	Prompt  string
	Entries []Entry
}

// Labels returns the entry labels in declared order. The presented choices
// are always derived from the entries themselves, so a selection can never
// miss the action mapping.
func (n *Node) Labels() []string {
	labels := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		labels[i] = e.Label
	}
	return labels
}

// Selector presents a prompt with options and returns the chosen index.
type Selector func(prompt string, options []string) (int, error)

// SurveySelector asks with a survey select prompt. A user interrupt
// (Ctrl-C) surfaces as terminal.InterruptErr.
func SurveySelector(prompt string, options []string) (int, error) {
	var answer string
	if err := survey.AskOne(&survey.Select{
		Message: prompt,
		Options: options,
	}, &answer); err != nil {
		return 0, err
	}
	for i, opt := range options {
		if opt == answer {
			return i, nil
		}
	}
	return 0, fmt.Errorf("selection %q not among presented options", answer)
}

// Dispatcher drives the menu loop from a fixed top-level node.
type Dispatcher struct {
	top *Node
	sel Selector
}

// NewDispatcher creates a Dispatcher. A nil selector defaults to the
// survey-backed one.
func NewDispatcher(top *Node, sel Selector) *Dispatcher {
	if sel == nil {
		sel = SurveySelector
	}
	return &Dispatcher{top: top, sel: sel}
}

// Run loops on the top menu until an exit action is chosen. Executed
// commands return control to the top menu, not to the submenu they were
// selected from. Selector errors (including interrupts) abort immediately;
// there is no "go back one level".
func (d *Dispatcher) Run() error {
	for {
		node := d.top
		for {
			idx, err := d.sel(node.Prompt, node.Labels())
			if err != nil {
				return err
			}

			action := node.Entries[idx].Action
			switch action.Kind {
			case ActionDescend:
				node = action.Next
				continue
			case ActionExecute:
				if err := action.Run(); err != nil {
					return err
				}
			case ActionExit:
				return nil
			}
			break
		}
	}
}
