package quicktime

// Session threads the context of one typing session between entries.
// A Session is not safe for concurrent use; give every input field its own.
type Session struct {
	ctx Context
}

func NewSession() *Session {
	return &Session{ctx: DefaultContext}
}

// Enter parses input with the current context and, on success, keeps the
// resulting context for the next entry.
func (s *Session) Enter(input string) (Result, bool) {
	res, ok := Parse(input, s.ctx)
	if !ok {
		return Result{}, false
	}
	s.ctx = res.Context
	return res, true
}

func (s *Session) Context() Context {
	return s.ctx
}

func (s *Session) Reset() {
	s.ctx = DefaultContext
}
