package cli

import (
	"refoundly/internal/knowledge"
	"refoundly/internal/query"

	"go.uber.org/zap"
)

type State int

const (
	StateAwaitingInput State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session answers one conversation against a fixed table. It keeps no
// state between queries other than whether it has terminated.
type Session struct {
	table  *knowledge.Table
	logger *zap.Logger
	state  State
}

func NewSession(table *knowledge.Table, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		table:  table,
		logger: logger,
		state:  StateAwaitingInput,
	}
}

func (s *Session) State() State {
	return s.state
}

// Handle processes one raw input line. ok is false when the line produces
// no output: an exit keyword, input that sanitizes to nothing, or any line
// after the session has terminated.
func (s *Session) Handle(raw string) (resp response, ok bool) {
	if s.state == StateTerminated {
		return response{}, false
	}

	if query.IsExitKeyword(raw) {
		s.End()
		return response{}, false
	}

	q := query.Sanitize(raw)
	if q == "" {
		return response{}, false
	}

	answer, matched := s.table.Answer(q)
	s.logger.Debug("query received",
		zap.String("raw", raw),
		zap.String("query", q),
	)
	return response{Query: q, Answer: answer, Matched: matched}, true
}

func (s *Session) End() {
	s.state = StateTerminated
}
