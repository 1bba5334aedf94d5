package petit

import "fmt"

// ParserError is the error raised when a caller asks a Failure for
// its value.  This is the only point where the in-band parse-failure
// channel is promoted into an exception; every other failure stays a
// plain value that combinators thread through as data.
type ParserError struct {
	Failure *FailureResult
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s @ %d", e.Failure.message, e.Failure.position)
}

// CompletedParserError is raised by def/redef/action on a Grammar
// whose initialize() pass has already completed.
type CompletedParserError struct{}

func (e *CompletedParserError) Error() string {
	return "grammar has already been completed"
}

// UndefinedProductionError is raised when redef/action name a
// production that was never def-ed, or when a forward reference is
// never resolved by completion time.
type UndefinedProductionError struct {
	Name string
}

func (e *UndefinedProductionError) Error() string {
	return fmt.Sprintf("undefined production: %s", e.Name)
}

// RedefinedProductionError is raised when def names a production that
// already has a definition.
type RedefinedProductionError struct {
	Name string
}

func (e *RedefinedProductionError) Error() string {
	return fmt.Sprintf("redefined production: %s", e.Name)
}

// ArgumentError is raised for malformed combinator arguments, e.g.
// char("") or an inverted range.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}
