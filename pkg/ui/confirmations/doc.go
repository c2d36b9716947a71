// Package confirmations answers the store's reset questions, either by
// asking the user or by applying a fixed policy.
package confirmations
