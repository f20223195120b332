//go:build unix

package detector

import "golang.org/x/sys/unix"

// machine returns the hardware name reported by uname(2).
func machine() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Machine[:]), nil
}
