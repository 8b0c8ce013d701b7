// Package report provides report metadata and recurring report schedules.
//
// The service never produces report files. A report is created IN_PROGRESS and an
// external generator later marks it COMPLETED (with a file url and size) or FAILED.
// Schedules create reports either on demand (run-now) or from the scheduled runner.
package report
