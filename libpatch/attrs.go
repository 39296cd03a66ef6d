package libpatch

import (
	"slices"

	"github.com/YPYT1/awesome-react-sub004/elem"
)

// AttrDelta is the attribute-level difference carried by update ops:
// Set holds added and changed attributes, Unset the removed names, and
// Old the previous values of every touched attribute that had one.
type AttrDelta struct {
	Set   elem.Attrs
	Unset []string
	Old   elem.Attrs
}

// DiffAttrs returns the delta transforming old into new, or nil when
// they are equal.
func DiffAttrs(old, new elem.Attrs) *AttrDelta {
	var d AttrDelta
	for k, nv := range new {
		ov, ok := old[k]
		if !ok || ov != nv {
			if d.Set == nil {
				d.Set = elem.Attrs{}
			}
			d.Set[k] = nv
			if ok {
				if d.Old == nil {
					d.Old = elem.Attrs{}
				}
				d.Old[k] = ov
			}
		}
	}
	for k := range old {
		if _, ok := new[k]; !ok {
			d.Unset = append(d.Unset, k)
			if d.Old == nil {
				d.Old = elem.Attrs{}
			}
			d.Old[k] = old[k]
		}
	}
	if d.Set == nil && d.Unset == nil {
		return nil
	}
	slices.Sort(d.Unset)
	return &d
}
