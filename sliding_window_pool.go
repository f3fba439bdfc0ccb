// SPDX-License-Identifier: MIT
// Copyright (c) 2026 lz4go
// Source: github.com/lz4go/lz4

package lz4

import "sync"

// wideTablePool lets CompressRaw reuse the (large, 16 KiB) wideTable
// array across calls instead of zeroing and discarding one every time,
// the same way the teacher pools its match-finder scratch state.
var wideTablePool = sync.Pool{
	New: func() any {
		return &wideTable{}
	},
}

// acquireWideTable gets a zeroed wideTable from the pool.
func acquireWideTable() *wideTable {
	t := wideTablePool.Get().(*wideTable)
	t.reset()
	return t
}

// releaseWideTable returns t to the pool.
func releaseWideTable(t *wideTable) {
	if t == nil {
		return
	}
	wideTablePool.Put(t)
}

// narrowTablePool does the same for the smaller narrowTable, used for
// inputs known to fit within 64 KiB.
var narrowTablePool = sync.Pool{
	New: func() any {
		return &narrowTable{}
	},
}

func acquireNarrowTable() *narrowTable {
	t := narrowTablePool.Get().(*narrowTable)
	t.reset()
	return t
}

func releaseNarrowTable(t *narrowTable) {
	if t == nil {
		return
	}
	narrowTablePool.Put(t)
}
