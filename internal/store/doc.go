// Package store provides SQLite-backed history of integration runs.
//
// Runs are content-addressed (see internal/record): writing the same run
// twice is a no-op, so a repeated integration leaves a single row.
//
// # Ordering
//
//   - Every run gets a logical seq INTEGER assigned at insert time
//   - All queries use ORDER BY seq ASC, id ASC COLLATE BINARY
//   - Wall-clock time is never stored or used for ordering
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Results are stored as shortest round-trip text (record.FormatResult) so
// NaN and ±Inf estimates survive; SQLite would turn a NaN REAL into NULL.
package store
