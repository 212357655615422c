// Package audit emits security audit events for admin activity in
// RFC5424 syslog format, with optional database persistence.
package audit
