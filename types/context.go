package types

// DefaultVersion is used when a command runs without an AppContext,
// mainly from tests.
const DefaultVersion = "dev"

// AppContext carries run-wide values from main into command Run methods.
type AppContext struct {
	Version string
}
