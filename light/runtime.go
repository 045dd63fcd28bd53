package light

// Runtime is the host boundary a LightClient is embedded against: it
// authorises privileged calls and delivers events, standing in for whatever
// execution environment (chain runtime, RPC server, relayer) hosts this
// verification core.
type Runtime interface {
	// EnsureRoot authorises a root-only call such as ForceCheckpoint. It
	// returns an error if the caller is not authorised.
	EnsureRoot() error
	// EnsureSigned authorises a regular signed call such as Submit or
	// SubmitExecutionHeader. It returns an error if the caller is not
	// authorised to submit updates.
	EnsureSigned() error
	// EmitEvent delivers one of BeaconHeaderImported, ExecutionHeaderImported
	// or SyncCommitteeUpdated to the host.
	EmitEvent(event any)
}

// memoryRuntime is a permissive in-memory Runtime used by tests and by
// callers that don't need host authorisation, recording emitted events for
// inspection.
type memoryRuntime struct {
	events []any
}

// NewMemoryRuntime returns a Runtime that authorises every call and records
// emitted events in memory.
func NewMemoryRuntime() Runtime {
	return &memoryRuntime{}
}

func (r *memoryRuntime) EnsureRoot() error   { return nil }
func (r *memoryRuntime) EnsureSigned() error { return nil }
func (r *memoryRuntime) EmitEvent(event any) { r.events = append(r.events, event) }

// Events returns every event recorded so far, for test assertions.
func (r *memoryRuntime) Events() []any { return r.events }
