// Package services holds domain logic that does not belong to one aggregate:
// delivery fee resolution and classification of failed delivery attempts.
// Both are pure; callers load their inputs.
package services
