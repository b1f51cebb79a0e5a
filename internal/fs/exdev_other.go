//go:build !unix

package fs

func isEXDEV(err error) bool {
	return false
}
