package pointer

// Uint8 returns a pointer to the provided uint8 value
func Uint8(value uint8) *uint8 {
	return &value
}

// Uint8Copy returns a pointer that's a copy of the provided value
func Uint8Copy(value *uint8) *uint8 {
	if value == nil {
		return nil
	}

	return Uint8(*value)
}
