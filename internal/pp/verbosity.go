package pp

// Verbosity is the type of message levels.
type Verbosity int

// Pre-defined verbosity levels. A pretty printer set to a level will show
// messages at that level and above.
const (
	Trace   Verbosity = iota // dumps of raw responses from remote servers
	Debug                    // detailed steps of the updating process
	Info                     // useful additional info
	Notice                   // important messages about actual actions
	Warning                  // problems the program can continue despite
	Error                    // fatal errors where the program must stop
)

// DefaultVerbosity shows only fatal errors.
const DefaultVerbosity Verbosity = Error
