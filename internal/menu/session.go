package menu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cleared-dev/billmgr/internal/bills"
	"github.com/cleared-dev/billmgr/internal/logging"
	"github.com/cleared-dev/billmgr/internal/prompt"
)

// Options tunes a Session.
type Options struct {
	// ExitOnUnknown ends the session on an unrecognized selection instead of
	// showing the menu again.
	ExitOnUnknown bool
	Logger        *slog.Logger
}

// Session drives a bills.Store from terminal input.
type Session struct {
	store         *bills.Store
	prompt        *prompt.Prompter
	log           *slog.Logger
	exitOnUnknown bool
}

// NewSession creates a Session over store. The caller keeps ownership of
// store and may inspect it after Run returns.
func NewSession(store *bills.Store, p *prompt.Prompter, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		store:         store,
		prompt:        p,
		log:           log,
		exitOnUnknown: opts.ExitOnUnknown,
	}
}

// Run shows the menu and dispatches selections until the user enters a blank
// selection (or input ends). It returns an error only when input can no
// longer be read.
func (s *Session) Run() error {
	for {
		s.showMenu()

		input, err := s.prompt.Line()
		if errors.Is(err, prompt.ErrCancelled) {
			s.log.Debug("session ended")
			return nil
		}
		if err != nil {
			return err
		}

		sel, ok := ParseSelection(input)
		if !ok {
			s.log.Debug("unknown selection", "input", input, "exit", s.exitOnUnknown)
			if s.exitOnUnknown {
				return nil
			}
			s.prompt.Println(fmt.Sprintf("Unknown selection %q", input))
			continue
		}

		if err := s.Dispatch(sel); err != nil {
			return err
		}
	}
}

// Dispatch runs the flow for one selection. A cancelled flow is not an error.
func (s *Session) Dispatch(sel Selection) error {
	s.log.Debug("dispatch", "selection", sel)

	var err error
	switch sel {
	case SelectionAdd:
		err = s.addBill()
	case SelectionView:
		s.viewBills()
	case SelectionRemove:
		err = s.removeBill()
	case SelectionEdit:
		err = s.editBill()
	default:
		return fmt.Errorf("unknown selection %d", sel)
	}

	if errors.Is(err, prompt.ErrCancelled) {
		s.log.Debug("flow cancelled", "selection", sel)
		return nil
	}
	return err
}

func (s *Session) showMenu() {
	for _, line := range Lines {
		s.prompt.Println(line)
	}
}
