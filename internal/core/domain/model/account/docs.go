// Package account provides the Account aggregate: a registered customer identified
// by a 10-digit contact number, with a default delivery address, a loyalty points
// balance and an ordered list of favorite products.
//
// Accounts are created by registration and never destroyed during a session.
package account
