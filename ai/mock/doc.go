// Package mock provides deterministic test doubles for the ai interfaces.
// The doubles generate stable vectors from text hashes by default and accept
// injected function fields for failure and rate-limit scenarios.
package mock
