// Package services provides domain services that coordinate more than one aggregate.
//
// The package includes:
//   - ScheduleAdvancer: runs a due scheduled report and moves its next run date forward
//     by the schedule's frequency, skipping every occurrence already in the past
package services
