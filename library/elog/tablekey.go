// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elog

import "strings"

// TableKey identifies a recording table by element path and field,
// like "/model/compartment1&Conc".
type TableKey string

var TableKeyBetweenPathAndField = "&"

// FromParts sets the key for given element path and field.
// If you modify this, also modify Parts, below.
func (tk *TableKey) FromParts(pth, field string) {
	*tk = TableKey(pth + TableKeyBetweenPathAndField + field)
}

// Parts needs to be the inverse mirror of FromParts
func (tk TableKey) Parts() (pth, field string) {
	str := string(tk)
	i := strings.LastIndex(str, TableKeyBetweenPathAndField)
	if i < 0 {
		return str, ""
	}
	return str[:i], str[i+len(TableKeyBetweenPathAndField):]
}

func GenTableKey(pth, field string) TableKey {
	tk := TableKey("")
	tk.FromParts(pth, field)
	return tk
}
