package ops

import "github.com/graftlang/reshape/pkg/reshape"

// projectOne builds an Obj whose keys come from mapping and whose values are
// read out of subtree by each mapping value (a source path), per spec.md
// §4.2's `project`/`project_and_replace` contract.
func projectOne(subtree reshape.Value, mapping map[string]reshape.Value) reshape.Value {
	out := make(map[string]reshape.Value, len(mapping))
	for newKey, sourcePathVal := range mapping {
		sourcePath, ok := sourcePathVal.String()
		if !ok {
			continue
		}
		out[newKey] = reshape.GetPath(subtree, sourcePath)
	}
	return reshape.Obj(out)
}

// applyProjection runs projectOne over subtree directly, or elementwise when
// subtree is an Arr.
func applyProjection(subtree reshape.Value, mapping map[string]reshape.Value) reshape.Value {
	if items, ok := subtree.Array(); ok {
		return reshape.Arr(reshape.MapArray(items, func(item reshape.Value) reshape.Value {
			return projectOne(item, mapping)
		}))
	}
	if _, ok := subtree.Object(); ok {
		return projectOne(subtree, mapping)
	}
	return subtree
}

// projectOp implements `project {path, mapping}`.
func projectOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	mapping, ok := paramObject(params, "mapping")
	if !ok {
		return working
	}
	subtree := reshape.GetPath(working, path)
	return reshape.PutPath(working, path, applyProjection(subtree, mapping))
}

// projectAndReplaceOp implements `project_and_replace {projection}`: the
// same projection logic as `project`, applied to the whole working value.
func projectAndReplaceOp(working, params reshape.Value) reshape.Value {
	projection, ok := paramObject(params, "projection")
	if !ok {
		return working
	}
	return applyProjection(working, projection)
}

func init() {
	reshape.RegisterOp("project", reshape.OperatorFunc(projectOp))
	reshape.RegisterOp("project_and_replace", reshape.OperatorFunc(projectAndReplaceOp))
}
