// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import "encoding/binary"

// rfTable is read as an 8 bit-aligned array of uint64 for the lower rotbox
// word, and as a 16 bit-aligned array of uint64 for the upper word. It is
// filled with the SHA-256 of "RainForestProCpuAntiAsic", iterated over and
// over until the table is full. The highest offset being table[2*255], six
// extra bytes are kept at the end so an unaligned 64-bit read from offset
// 510 stays in bounds.
var rfTable = [256*2 + 6]byte{
	0x8e, 0xc1, 0xa8, 0x04, 0x38, 0x78, 0x7c, 0x54, 0x29, 0x23, 0x1b, 0x78, 0x9f, 0xf9, 0x27, 0x54,
	0x11, 0x78, 0x95, 0xb6, 0xaf, 0x78, 0x45, 0x16, 0x2b, 0x9e, 0x91, 0xe8, 0x97, 0x25, 0xf8, 0x63,
	0x82, 0x56, 0xcf, 0x48, 0x6f, 0x82, 0x14, 0x0d, 0x61, 0xbe, 0x47, 0xd1, 0x37, 0xee, 0x30, 0xa9,
	0x28, 0x1e, 0x4b, 0xbf, 0x07, 0xcd, 0x41, 0xdf, 0x23, 0x21, 0x12, 0xb8, 0x81, 0x99, 0x1d, 0xe6,
	0x68, 0xcf, 0xfa, 0x2d, 0x8e, 0xb9, 0x88, 0xa7, 0x15, 0xce, 0x9e, 0x2f, 0xeb, 0x1b, 0x0f, 0x67,
	0x20, 0x68, 0x6c, 0xa9, 0x5d, 0xc1, 0x7c, 0x76, 0xdf, 0xbd, 0x98, 0x61, 0xb4, 0x14, 0x65, 0x40,
	0x1e, 0x72, 0x51, 0x74, 0x93, 0xd3, 0xad, 0xbe, 0x46, 0x0a, 0x25, 0xfb, 0x6a, 0x5e, 0x1e, 0x8a,
	0x5a, 0x03, 0x3c, 0xab, 0x12, 0xc2, 0xd4, 0x07, 0x91, 0xab, 0xc9, 0xdf, 0x92, 0x2c, 0x85, 0x6a,
	0xa6, 0x25, 0x1e, 0x66, 0x50, 0x26, 0x4e, 0xa8, 0xbd, 0xda, 0x88, 0x1b, 0x95, 0xd4, 0x00, 0xeb,
	0x0d, 0x1c, 0x9b, 0x3c, 0x86, 0xc7, 0xb2, 0xdf, 0xb4, 0x5a, 0x36, 0x15, 0x8e, 0x04, 0xd2, 0x54,
	0x79, 0xd2, 0x3e, 0x3d, 0x99, 0x50, 0xa6, 0x12, 0x4c, 0x32, 0xc8, 0x51, 0x14, 0x4d, 0x4b, 0x0e,
	0xbb, 0x17, 0x80, 0x8f, 0xa4, 0xc4, 0x99, 0x72, 0xd7, 0x14, 0x4b, 0xef, 0xed, 0x14, 0xe9, 0x17,
	0xfa, 0x9b, 0x5d, 0x37, 0xd6, 0x2f, 0xef, 0x02, 0xd6, 0x71, 0x0a, 0xbd, 0xc5, 0x40, 0x11, 0x90,
	0x90, 0x4e, 0xb4, 0x4c, 0x72, 0x51, 0x7a, 0xd8, 0xba, 0x30, 0x4d, 0x8c, 0xe2, 0x11, 0xbb, 0x6d,
	0x4b, 0xbc, 0x6f, 0x14, 0x0c, 0x9f, 0xfa, 0x5e, 0x66, 0x40, 0x45, 0xcb, 0x7d, 0x1b, 0x3a, 0xc5,
	0x5e, 0x9c, 0x1e, 0xcc, 0xbd, 0x16, 0x3b, 0xcf, 0xfb, 0x2a, 0xd2, 0x08, 0x2a, 0xf8, 0x3d, 0x46,
	0x93, 0x90, 0xb3, 0x66, 0x81, 0x34, 0x7f, 0x6d, 0x9b, 0x8c, 0x99, 0x03, 0xc5, 0x27, 0xa3, 0xd9,
	0xce, 0x90, 0x88, 0x0f, 0x55, 0xc3, 0xa1, 0x60, 0x53, 0xc8, 0x0d, 0x25, 0xae, 0x61, 0xd9, 0x72,
	0x48, 0x1d, 0x6c, 0x61, 0xd2, 0x87, 0xdd, 0x3d, 0x23, 0xf5, 0xde, 0x93, 0x39, 0x4c, 0x43, 0x9a,
	0xf9, 0x37, 0xf2, 0x61, 0xd7, 0xf8, 0xea, 0x65, 0xf0, 0xf1, 0xde, 0x3f, 0x05, 0x57, 0x83, 0x81,
	0xde, 0x02, 0x62, 0x49, 0xd4, 0x32, 0x7e, 0x4a, 0xd4, 0x9f, 0x40, 0x7e, 0xb9, 0x91, 0xb1, 0x35,
	0xf7, 0x62, 0x3f, 0x65, 0x9e, 0x4d, 0x2b, 0x10, 0xde, 0xd4, 0x77, 0x64, 0x0f, 0x84, 0xad, 0x92,
	0xe7, 0xa3, 0x8a, 0x10, 0xc1, 0x14, 0xeb, 0x57, 0xc4, 0xad, 0x8e, 0xc2, 0xc7, 0x32, 0xa3, 0x7e,
	0x50, 0x1f, 0x7c, 0xbb, 0x2e, 0x5f, 0xf5, 0x18, 0x22, 0xea, 0xec, 0x9d, 0xa4, 0x77, 0xcd, 0x85,
	0x04, 0x2f, 0x20, 0x61, 0x72, 0xa7, 0x0c, 0x92, 0x06, 0x4d, 0x01, 0x70, 0x9b, 0x35, 0xa1, 0x27,
	0x32, 0x6e, 0xb9, 0x78, 0xe0, 0xaa, 0x5f, 0x91, 0xa6, 0x51, 0xe3, 0x63, 0xf8, 0x97, 0x2f, 0x60,
	0xd9, 0xfb, 0x15, 0xe5, 0x59, 0xcf, 0x31, 0x3c, 0x61, 0xc7, 0xb5, 0x61, 0x2a, 0x6b, 0xdd, 0xd1,
	0x09, 0x70, 0xc0, 0xcf, 0x94, 0x7a, 0xcc, 0x31, 0x94, 0xb1, 0xa2, 0xf6, 0x95, 0xc0, 0x38, 0x3d,
	0xef, 0x19, 0x30, 0x70, 0xdd, 0x62, 0x32, 0x8f, 0x7c, 0x30, 0xb9, 0x18, 0xf8, 0xe7, 0x8f, 0x0a,
	0xaa, 0xb6, 0x00, 0x86, 0xf2, 0xe0, 0x30, 0x5f, 0xa2, 0xe8, 0x00, 0x8e, 0x05, 0xa0, 0x22, 0x18,
	0x9f, 0x83, 0xd4, 0x3a, 0x85, 0x10, 0xb9, 0x51, 0x8d, 0x07, 0xf0, 0xb3, 0xcd, 0x9b, 0x55, 0xa1,
	0x14, 0xce, 0x0f, 0xb2, 0xcf, 0xb8, 0xce, 0x2d, 0xe6, 0xe8, 0x35, 0x32, 0x1f, 0x22, 0xb5, 0xec,
	0xd0, 0xb9, 0x72, 0xa8, 0xb4, 0x97,
}

// rfIV is the 18th iterated SHA-256 of the table seed string.
var rfIV = [Size]byte{
	0x78, 0xe9, 0x90, 0xd3, 0xb3, 0xc8, 0x9b, 0x7b, 0x0a, 0xc4, 0x86, 0x6e, 0x4e, 0x38, 0xb3, 0x6b,
	0x33, 0x68, 0x7c, 0xed, 0x73, 0x35, 0x4b, 0x0a, 0x97, 0x25, 0x4c, 0x77, 0x7a, 0xaa, 0x61, 0x1b,
}

// wltable returns the lower rotbox table word for index.
func wltable(index uint8) uint64 {
	return binary.LittleEndian.Uint64(rfTable[index:])
}

// whtable returns the upper rotbox table word for index.
func whtable(index uint8) uint64 {
	return binary.LittleEndian.Uint64(rfTable[2*uint16(index):])
}
