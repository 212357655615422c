// Package auth provides password hashing for stored user credentials.
//
// Passwords are hashed with bcrypt at a fixed work factor of 12. Digests
// are one-way; verification re-derives the hash from the candidate
// password and compares in constant time.
package auth
