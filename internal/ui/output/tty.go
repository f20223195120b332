package output

import "golang.org/x/term"

func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) //nolint:gosec // file descriptors fit in int
}
