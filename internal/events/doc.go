// Package events carries generation lifecycle transitions from the
// orchestrator to any interested handler. The orchestrator emits a
// StateEvent each time a request moves between stages; handlers such as
// LogHandler observe them without the orchestrator knowing who listens.
package events
