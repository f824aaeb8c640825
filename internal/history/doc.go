// Package history records executed commands.
//
// Two records are kept:
//
//   - Stack: a bounded, in-memory LIFO of command objects that supports
//     undo. Popping after pushing C1, C2, C3 yields C3, C2, C1.
//   - Journal: an optional persistent append-only log of the command
//     lines the user ran, backed by bbolt.
//
// The stack owns pushed commands until they are popped or evicted.
// Pop on an empty stack returns (nil, false); Undo on an empty stack
// returns ErrNothingToUndo.
package history
