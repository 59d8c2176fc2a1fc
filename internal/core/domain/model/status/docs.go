// Package status holds the shipment status vocabulary.
//
// Statuses are persisted rows, so they can be created, renamed and deleted at
// runtime, but workflow code refers to a fixed set of names (RECEIVED_AT_HUB,
// DELIVERED, ...). Registry indexes the persisted rows by exact name and lets
// the application refuse to start when one of those names is missing.
package status
