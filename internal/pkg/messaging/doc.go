// Package messaging provides a broker-agnostic publisher.
//
// Use-case code depends on the Publisher interface; the driver (log, NATS,
// NSQ, Kafka or Google Pub/Sub) is picked from configuration at startup.
package messaging
