// Package types defines the core types and interfaces used throughout optset.
// This includes the Option variant (plain or indirect), setting Definitions
// and Schemas, the FS abstraction used for the backing file, and the
// Confirmer collaborator consulted when persisted data conflicts with the
// schema.
package types
