package script

//go:generate mockgen -destination=mock/mock_runtime.go -package=mockscript -source=runtime.go Runtime

// ResultGlobal is the global a buffer-mode script assigns its verdict to
const ResultGlobal = "_result"

// Runtime is the script execution context consumed by creature events.
//
// Slots are reserved and released in LIFO order: a handler that triggers
// another event runs the nested handler in the next slot. ReserveEnv never
// blocks; when every slot is taken it fails with a reentrancy_exhausted error.
type Runtime interface {
	// ReserveEnv takes the next free execution slot
	ReserveEnv() (*Env, error)

	// ReleaseEnv returns a slot and drops its temporary handles. Only the
	// innermost reserved slot can be released; anything else is ignored.
	ReleaseEnv(env *Env)

	// RunBuffer executes source as a one-shot chunk. ResultGlobal is
	// cleared before the chunk runs.
	RunBuffer(env *Env, source string) error

	// GlobalBool reads a global as a verdict; unset globals yield def
	GlobalBool(name string, def bool) bool

	// Call invokes a compiled entry with positional arguments and returns
	// its verdict. A handler that returns nothing allows the event.
	Call(env *Env, ref EntryRef, args []Arg) (bool, error)

	// Compile runs chunk source once and captures the global function named
	// entry as a reusable entry point
	Compile(chunkName, source, entry string) (EntryRef, error)

	// Reset discards compiled entries and all script state
	Reset() error
}
