// Package messaging provides a broker-agnostic API for publishing and
// consuming events.
//
// Business code depends on the interfaces in this package so the underlying
// broker (NATS, NSQ, Kafka, Google Pub/Sub) can be swapped via configuration.
package messaging
