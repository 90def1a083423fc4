package ir

// Merge recursively replaces values of dst with values of src and returns
// the result. Neither argument is modified.
//
// Maps are merged key by key, lists index by index. When both sides hold a
// map (or both a list) under the same key, they are merged recursively;
// otherwise the src value wins. Keys only present in src are appended in
// src order.
func Merge(dst, src *MapValue) *MapValue {
	out := dst.Clone()
	if out == nil {
		out = Map()
	}
	for _, e := range src.Entries() {
		cur, ok := out.GetKey(e.Key)
		if !ok {
			out.SetKey(e.Key, Clone(e.Value))
			continue
		}
		out.SetKey(e.Key, mergeValue(cur, e.Value))
	}
	return out
}

func mergeValue(dst, src Value) Value {
	switch s := src.(type) {
	case *MapValue:
		if d, ok := dst.(*MapValue); ok {
			return Merge(d, s)
		}
	case *ListValue:
		if d, ok := dst.(*ListValue); ok {
			return mergeList(d, s)
		}
	}
	return Clone(src)
}

func mergeList(dst, src *ListValue) *ListValue {
	out := Clone(dst).(*ListValue)
	for i, item := range src.Items {
		if i < len(out.Items) {
			out.Items[i] = mergeValue(out.Items[i], item)
			continue
		}
		out.Items = append(out.Items, Clone(item))
	}
	return out
}
