//go:build !unix

package server

import "syscall"

// reuseAddr is a no-op here. On Windows SO_REUSEADDR lets another process
// steal a bound port, and the runtime already allows rebinding.
func reuseAddr(network, address string, c syscall.RawConn) error {
	return nil
}
