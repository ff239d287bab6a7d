package ops

import "github.com/graftlang/reshape/pkg/reshape"

// promoteListToKeysOp implements `promote_list_to_keys {path, child_list,
// key_from, value_from}`, per spec.md §4.2: at path (an Obj), the Arr under
// child_list is folded to an Obj exactly as `list_to_map` does, child_list
// is removed, and the fold result is shallow-merged into the parent. path
// routes through UpdatePath so a wildcard segment promotes each matched
// parent independently rather than lifting them all into one outer Arr.
func promoteListToKeysOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	childList, ok := paramString(params, "child_list")
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

	return reshape.UpdatePath(working, path, func(parent reshape.Value) reshape.Value {
		parentObj, ok := parent.Object()
		if !ok {
			return parent
		}
		items, ok := parentObj[childList].Array()
		if !ok {
			return parent
		}

		promoted := foldListToMap(items, keyFrom, valueFrom)
		merged := make(map[string]reshape.Value, len(parentObj)+len(promoted))
		for k, v := range parentObj {
			if k == childList {
				continue
			}
			merged[k] = v
		}
		for k, v := range promoted {
			merged[k] = v
		}
		return reshape.Obj(merged)
	})
}

func init() {
	reshape.RegisterOp("promote_list_to_keys", reshape.OperatorFunc(promoteListToKeysOp))
}
