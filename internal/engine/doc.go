// Package engine drives the periodic tick that counts running timers down
// and fans out completion events.
package engine
