// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estats

import (
	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
)

// funcs contains misc stats functions

// SetAggs sets name:Min, name:Max and name:Mean float stats from
// column colNm of the rows in ix. Nothing is set for an empty view.
func (st *Stats) SetAggs(name string, ix *etable.IdxView, colNm string) {
	if ix.Len() == 0 {
		return
	}
	st.SetFloat(name+":Min", agg.Min(ix, colNm)[0])
	st.SetFloat(name+":Max", agg.Max(ix, colNm)[0])
	st.SetFloat(name+":Mean", agg.Mean(ix, colNm)[0])
}
