package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to remove password bytes from memory after they have been checked.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
