package ops

import "github.com/graftlang/reshape/pkg/reshape"

// foldListToMap reads items[i][keyFrom] as a string key and items[i][valueFrom]
// as the associated value, folding left to right so later items win on a
// duplicate key. Items missing a string key_from, or not objects at all,
// are skipped.
func foldListToMap(items []reshape.Value, keyFrom, valueFrom string) map[string]reshape.Value {
	out := make(map[string]reshape.Value, len(items))
	for _, item := range items {
		obj, ok := item.Object()
		if !ok {
			continue
		}
		key, ok := obj[keyFrom].String()
		if !ok {
			continue
		}
		out[key] = obj[valueFrom]
	}
	return out
}

// foldListToDynamicMap is foldListToMap's grouping sibling: each bucket
// collects every matching item's value_from into an Arr, in item order.
func foldListToDynamicMap(items []reshape.Value, keyFrom, valueFrom string) map[string]reshape.Value {
	buckets := make(map[string][]reshape.Value)
	order := make([]string, 0)
	for _, item := range items {
		obj, ok := item.Object()
		if !ok {
			continue
		}
		key, ok := obj[keyFrom].String()
		if !ok {
			continue
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], obj[valueFrom])
	}
	out := make(map[string]reshape.Value, len(buckets))
	for _, key := range order {
		out[key] = reshape.Arr(buckets[key])
	}
	return out
}

// listToMapOp implements `list_to_map {path, key_from, value_from}`. path
// routes through UpdatePath rather than GetPath+PutPath so a wildcard
// segment (e.g. "events[].cfg") folds each event's own array in place
// instead of lifting every event's array into one outer Arr and folding
// that as a single (wrongly shaped) list.
func listToMapOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	keyFrom, ok := paramString(params, "key_from")
	if !ok {
		return working
	}
	valueFrom, ok := paramString(params, "value_from")
	if !ok {
		return working
	}
	return reshape.UpdatePath(working, path, func(v reshape.Value) reshape.Value {
		items, ok := v.Array()
		if !ok {
			return v
		}
		return reshape.Obj(foldListToMap(items, keyFrom, valueFrom))
	})
}

func listToDynamicMapOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	keyFrom, ok := paramString(params, "key_from")
	if !ok {
		return working
	}
	valueFrom, ok := paramString(params, "value_from")
	if !ok {
		return working
	}
	return reshape.UpdatePath(working, path, func(v reshape.Value) reshape.Value {
		items, ok := v.Array()
		if !ok {
			return v
		}
		return reshape.Obj(foldListToDynamicMap(items, keyFrom, valueFrom))
	})
}

func init() {
	reshape.RegisterOp("list_to_map", reshape.OperatorFunc(listToMapOp))
	reshape.RegisterOp("list_to_dynamic_map", reshape.OperatorFunc(listToDynamicMapOp))
}
