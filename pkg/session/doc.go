// Package session implements the signed, stateless session credential
// presented by the admin console on every request.
//
// A session token is an HS256 JWT carrying the user's id, email and role
// plus issued-at and expiry claims. Tokens live for a fixed seven days and
// are transported in the iqmath_auth_token cookie. There is no server-side
// session state and no revocation: rotating the signing key invalidates
// every outstanding token at once.
//
// Verify never returns an error to branch on; any malformed, forged or
// expired token yields nil claims. Decode extracts claims without checking
// the signature and must only be used for diagnostics.
package session
