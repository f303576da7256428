// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lzdec

// mruList is the fixed-capacity, 4-entry most-recently-used distance
// cache. Reusing one of the last four match distances is cheaper than
// coding a fresh one, and recalling an entry promotes it to the front.
type mruList struct {
	entries [4]uint32
}

// push stores v as the most recently used distance, shifting the other
// three entries down and dropping the oldest.
func (m *mruList) push(v uint32) {
	m.entries[3] = m.entries[2]
	m.entries[2] = m.entries[1]
	m.entries[1] = m.entries[0]
	m.entries[0] = v
}

// peek0 returns the most recently used distance without disturbing the
// list.
func (m *mruList) peek0() uint32 {
	return m.entries[0]
}

// recall reads the entry at index i (1..3), moves it to the front, and
// shifts the entries that were in front of it down by one. It returns
// the recalled value.
func (m *mruList) recall(i int) uint32 {
	v := m.entries[i]
	for j := i; j > 0; j-- {
		m.entries[j] = m.entries[j-1]
	}
	m.entries[0] = v
	return v
}
