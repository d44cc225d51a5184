package xyz

import "fmt"

//Kind identifies the class of a parsing or writing failure. Every
//failure reflects a genuinely malformed input and aborts the whole
//operation; there are no retryable kinds.
type Kind string

const (
	//header/count token failures
	NotAnInteger  Kind = "token is not an integer"
	NotIntegral   Kind = "token is a floating point number, not an integer"
	ZeroValue     Kind = "this integer cannot be zero"
	NegativeValue Kind = "this integer cannot be negative"

	//file level failures
	WrongFormat       Kind = "file must be in .xyz format"
	InvalidFrameCount Kind = "file length is not a whole number of frames"
	EmptyTrajectory   Kind = "trajectory contains no frames"

	//frame level failures
	LabelCountMismatch     Kind = "did not find 3N atomic labels"
	FrameAtomCountMismatch Kind = "frame atom count inconsistent with trajectory"
	TruncatedFrame         Kind = "file ends in the middle of a frame"
	NumericParseError      Kind = "coordinate is not a valid number"

	//handle misuse
	TrajUnIniRead  Kind = "traj object uninitialized to read"
	TrajUnIniWrite Kind = "traj object uninitialized to write"
	NotEnoughSpace Kind = "not enough space in passed matrix"
	NilCoordinates Kind = "given nil coordinates"
)

//Error is the general structure for XYZ trajectory errors. It fulfills
//goxyz.Error and goxyz.TrajError. The line field is the zero-based
//index of the offending line in the file, or -1 when no single line is
//to blame.
type Error struct {
	kind     Kind
	message  string
	filename string
	line     int
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.line >= 0 {
		return fmt.Sprintf("xyz file %s, line %d: %s: %s", err.filename, err.line, err.kind, err.message)
	}
	return fmt.Sprintf("xyz file %s: %s: %s", err.filename, err.kind, err.message)
}

//Kind returns the class of the failure.
func (err Error) Kind() Kind { return err.kind }

//Line returns the zero-based index of the offending line, or -1.
func (err Error) Line() int { return err.line }

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver,
	//it works, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing trajectory was associated.
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "xyz") associated to the error.
func (err Error) Format() string { return "xyz" }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//KindOf returns the Kind of err if it is an xyz Error, and the empty
//Kind otherwise.
func KindOf(err error) Kind {
	if e, ok := err.(Error); ok {
		return e.kind
	}
	return ""
}

//decorate stamps an Error with the file and line it came from, plus the
//caller's name, leaving other error types alone.
func decorate(err error, filename string, line int, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	if e.filename == "" {
		e.filename = filename
	}
	if e.line < 0 {
		e.line = line
	}
	e.deco = append(e.deco, caller)
	return e
}

//lastFrameError implements goxyz.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "xyz" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
