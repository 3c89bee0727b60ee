// Package hash provides helpers for keyed hashing of opaque tokens.
//
// Session tokens are never stored verbatim: the store key is the HMAC of the
// token, so a leaked store dump cannot be replayed as cookies.
package hash
