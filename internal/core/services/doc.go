// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The classification pipeline is split into pure functions that the
// services compose:
//
//   - ParseCriteria: raw operator lists to criterion groups
//   - Classify: one pass over a milestone dataset, producing the
//     partition and counters
//   - Render: partition to Markdown documents
//   - Summarize: counters to report lines
//
// Services are pure Go with no CGO or external dependencies.
package services
