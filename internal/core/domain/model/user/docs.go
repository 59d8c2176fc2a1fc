// Package user models the actors the courier core authorizes against.
// Roles are a closed enumeration matched exhaustively, never compared as strings.
package user
