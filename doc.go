// Package founder provides the record-keeping core of Founder's Friend, a
// local-first personal productivity tool. It is designed to keep every record
// on the user's machine, in a human-readable form.
//
// The core functionalities include:
//   - Journal: dated entries with a title and a content.
//   - Tasks: a kanban board where each task is either "todo", "inProgress" or
//     "done".
//   - Notes: freeform notes with a title and a content.
//   - Expenses: dated expenses with a category, and their total.
//
// All four domains live in a State, the single owner of the in-memory
// records. A Bridge hydrates the State from a key/value Store at startup and
// writes a domain back every time it changes.
//
// This package serves as the foundational logic for the `ff` command-line
// tool.
package founder
