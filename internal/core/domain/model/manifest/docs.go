// Package manifest models the courier delivery round a dispatched shipment
// belongs to. Shipments point at their manifest; the manifest holds no list.
package manifest
