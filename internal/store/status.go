package store

// Status tracks in-flight requests and the last recorded failure. It is not
// safe for concurrent use; stores guard it with their own lock.
type Status struct {
	inFlight int
	err      string
}

// Begin marks a request as started and clears the last failure.
func (s *Status) Begin() {
	s.inFlight++
	s.err = ""
}

// Finish marks a request as done. A non-empty msg replaces the recorded
// error; an empty msg clears it.
func (s *Status) Finish(msg string) {
	if s.inFlight > 0 {
		s.inFlight--
	}
	s.err = msg
}

// Fail records msg without touching the in-flight count.
func (s *Status) Fail(msg string) {
	s.err = msg
}

func (s *Status) Loading() bool {
	return s.inFlight > 0
}

func (s *Status) Err() string {
	return s.err
}

// ClearError forgets the recorded failure.
func (s *Status) ClearError() {
	s.err = ""
}
