// Package kernel provides the shared value objects of the courier domain:
// UUID identifiers and Money, an exact two-decimal currency amount.
//
// Money never goes through binary floating point; every arithmetic result is
// rounded to two places, so sums of rounded line items are exact.
package kernel
