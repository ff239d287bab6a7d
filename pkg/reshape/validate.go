package reshape

import "fmt"

// requiredParams lists, per operator kind, the parameter keys that must be
// present for a pipeline step to be considered well-formed. Only presence
// is checked: the type of each parameter's value is not inspected. This
// mirrors spec.md §6's operator table; it is
// intentionally shallow — validate checks shape, not semantics, per the
// Non-goals in spec.md §1 ("no schema enforcement beyond validating the
// pipeline's own operator records").
var requiredParams = map[string][]string{
	"drop":                 {"paths"},
	"project":              {"path", "mapping"},
	"project_and_replace":  {"projection"},
	"rename":               {"mapping"},
	"hoist_map_values":     {"path", "child_key"},
	"list_to_map":          {"path", "key_from", "value_from"},
	"list_to_dynamic_map":  {"path", "key_from", "value_from"},
	"promote_list_to_keys": {"path", "child_list", "key_from", "value_from"},
	"truncate_list":        {"path", "max_size", "shape"},
	"aggregate_list":       {"path", "shape"},
	"prune":                {"strategy"},
	"set":                  {"path", "value"},
	"copy":                 {"from", "to"},
	"move":                 {"from", "to"},
	"current_timestamp":    {"path"},
	"format_date":          {"path", "format"},
	"parse_date":           {"path"},
	"date_add":             {"path", "amount", "unit"},
	"date_diff":            {"from_path", "to_path", "result_path"},
	"transform":            {"path", "function"},
}

// Validate checks a pipeline config's structural well-formedness, per
// spec.md §4.5: every step is an object with a recognized "op" and its
// operator's required parameters present. It collects every offending
// step rather than stopping at the first, then reports only the first
// one (First()) to match the one-string surface the CLI/MCP validate verb
// exposes.
//
// Validate never inspects data paths against an actual input document —
// path existence is not checked here or anywhere in the engine, per the
// explicit Non-goal in spec.md §1.
func Validate(config Value) (ok bool, message string) {
	var errs MultiError

	cfg, isObj := config.Object()
	if !isObj {
		return false, NewConfigurationError("config must be an object").Error()
	}

	if rootVal, present := cfg["root"]; present {
		if _, isObj := rootVal.Object(); !isObj {
			errs.Append(NewConfigurationError(`"root" must be an object with a "path" field`))
		}
	}

	pipelineVal, present := cfg["pipeline"]
	if !present {
		errs.Append(NewConfigurationError(`missing required "pipeline"`))
	} else {
		steps, isArr := pipelineVal.Array()
		if !isArr {
			errs.Append(NewConfigurationError(`"pipeline" must be an array`))
		} else {
			for i, step := range steps {
				validateStep(i, step, &errs)
			}
		}
	}

	if errs.Count() > 0 {
		return false, errs.First()
	}
	return true, ""
}

func validateStep(index int, step Value, errs *MultiError) {
	stepObj, isObj := step.Object()
	if !isObj {
		errs.Append(NewValidationError(fmt.Sprintf("pipeline[%d]: step must be an object", index)))
		return
	}
	kind, hasKind := stepObj["op"].String()
	if !hasKind {
		errs.Append(NewValidationError(fmt.Sprintf("pipeline[%d]: missing \"op\"", index)))
		return
	}
	required, known := requiredParams[kind]
	if !known {
		errs.Append(NewValidationError(fmt.Sprintf("pipeline[%d]: unknown op %q", index, kind)))
		return
	}
	for _, key := range required {
		if _, present := stepObj[key]; !present {
			errs.Append(NewValidationError(
				fmt.Sprintf("pipeline[%d]: op %q missing required param %q", index, kind, key)))
		}
	}
}
