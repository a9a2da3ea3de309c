// Package mode provides the modal editing state machine for Reflex.
//
// Four modes are supported:
//   - Normal: navigation and commands
//   - Insert: text input
//   - Visual: selection
//   - Command: ex-style command line
//
// Transitions are driven by triggers and looked up in a fixed table:
//
//	           i                :
//	Insert ◀────── Normal ──────────▶ Command
//	   │     Esc   ▲  │ v   ▲  Enter/Esc │
//	   └───────────┘  ▼     └───────────┘
//	               Visual ── i, : ──▶ Insert, Command
//
// A trigger with no entry for the current mode is ignored. Change
// callbacks are notified after each transition.
package mode
