// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package internal

import (
	"hash/crc32"

	"github.com/dsnet/golib/hashmerge"
)

// UpdateCRC returns the result of adding the bytes in buf to the crc.
//
// The checksum is the one BZip2 uses for its blocks. It treats bytes as
// having bits in big-endian order, so the MSB is read before the LSB.
// Thus, the standard library version of CRC-32 IEEE can be used with some
// minor adjustments.
func UpdateCRC(crc uint32, buf []byte) uint32 {
	crc = ReverseUint32(crc)
	var arr [4096]byte
	for len(buf) > 0 {
		cnt := copy(arr[:], buf)
		buf = buf[cnt:]
		for i, b := range arr[:cnt] {
			arr[i] = ReverseLUT[b]
		}
		crc = crc32.Update(crc, crc32.IEEETable, arr[:cnt])
	}
	return ReverseUint32(crc)
}

// CombineCRC combines two block checksums together, where crc2 covers the
// len2 bytes that follow the data covered by crc1.
func CombineCRC(crc1, crc2 uint32, len2 int64) uint32 {
	crc1 = ReverseUint32(crc1)
	crc2 = ReverseUint32(crc2)
	crc := hashmerge.CombineCRC32(crc32.IEEE, crc1, crc2, len2)
	return ReverseUint32(crc)
}
