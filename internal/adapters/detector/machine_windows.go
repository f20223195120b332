//go:build windows

package detector

import "os"

// machine returns the native processor architecture. A 32-bit process on a
// 64-bit system sees the native value in PROCESSOR_ARCHITEW6432.
func machine() (string, error) {
	if native := os.Getenv("PROCESSOR_ARCHITEW6432"); native != "" {
		return native, nil
	}
	return os.Getenv("PROCESSOR_ARCHITECTURE"), nil
}
