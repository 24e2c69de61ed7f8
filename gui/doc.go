// Package gui runs a session in an ebiten window. The window code is only
// compiled with the ebiten build tag.
package gui
