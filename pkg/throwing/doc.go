// Package throwing contains the core pieces of the throwing-operation
// protocol: the failure carrier used to move a declared error across a
// boundary that cannot declare one, and the classification helpers the
// combinator packages share.
//
// Highlights:
// - SmuggledError: unchecked carrier wrapping exactly one cause
// - Smuggle/SmuggleMessage: traced constructors
// - SmuggleUntraced/SmuggleUntracedMessage: fast constructors for expected control flow
// - Smuggled: recognize a carrier in a recovered panic payload
// - IsNil: reflect-aware nil check used to classify declared failures
// - Check/Must: panic-smuggling conveniences over (value, error) call sites
//
// The combinator suites live in the fn, bifn, supply and consume
// subpackages; fluent composition lives in chain.
package throwing
