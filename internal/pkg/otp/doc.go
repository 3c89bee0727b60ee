// Package otp validates time-based one-time passwords (RFC 6238).
//
// The login gate checks authenticator codes against a single configured
// secret. By default only the current 30-second step is accepted; a skew
// window can be configured for deployments with drifting clients.
package otp
