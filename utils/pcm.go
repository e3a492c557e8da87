// SPDX-License-Identifier: EPL-2.0

package utils

// PCMFullScale returns the magnitude of the most negative value of a signed
// integer PCM sample with the given bit depth. Depths outside 1..32 fall
// back to 16-bit.
func PCMFullScale(bitDepth int) float32 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}

	return float32(int64(1) << (bitDepth - 1))
}

// IntToFloat32 normalizes a signed PCM sample into [-1, 1].
func IntToFloat32(v int, bitDepth int) float32 {
	return ClampFloat32(float32(v)/PCMFullScale(bitDepth), -1, 1)
}
