// Package audio synthesizes the prompt's alert signal: a short sine
// blip played through the system speaker. Hosts without a working audio
// backend degrade to silence so callers never need a conditional.
package audio
