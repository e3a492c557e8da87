// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC decoding on top of github.com/mewkiz/flac.
//
// Frames are parsed one at a time and their subframes interleaved into
// float32 samples in [-1.0, 1.0]. The frame count comes from STREAMINFO and
// is -1 when the encoder left it unset.
package flac
