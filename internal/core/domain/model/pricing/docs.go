// Package pricing holds the inputs of delivery fee resolution: zones with an
// optional default fee, per-merchant zone overrides and shipment priority.
package pricing
