// Package clock provides a tiny time abstraction.
//
// Code that makes time-based decisions (session expiry, TOTP windows,
// reminder due checks) should depend on the Clocker interface instead of
// calling time.Now() directly, so tests can pin the clock.
package clock
