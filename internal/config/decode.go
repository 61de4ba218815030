package config

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

var (
	groupOrderingType = reflect.TypeOf(GroupOrdering{})
	customGroupsType  = reflect.TypeOf(CustomGroups{})
	partitioningType  = reflect.TypeOf(Partitioning{})
)

// DecodeHook converts the generic values produced by configuration files,
// environment variables and flags into option types.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		groupOrderingHook,
		customGroupsHook,
		partitioningHook,
	)
}

func groupOrderingHook(from, to reflect.Type, data any) (any, error) {
	if to != groupOrderingType {
		return data, nil
	}
	switch v := data.(type) {
	case []any:
		return ParseGroupOrdering(v)
	case []string:
		raw := make([]any, len(v))
		for i, s := range v {
			raw[i] = s
		}
		return ParseGroupOrdering(raw)
	case string:
		return parseGroupList(v)
	default:
		return data, nil
	}
}

// customGroupsHook accepts a list of {name, pattern} objects, which keeps the
// configured order, or a mapping, which has no order once decoded and is
// therefore sorted by group name.
func customGroupsHook(from, to reflect.Type, data any) (any, error) {
	if to != customGroupsType {
		return data, nil
	}
	switch v := data.(type) {
	case map[string]any:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make(CustomGroups, 0, len(v))
		for _, name := range names {
			pattern, ok := v[name].(string)
			if !ok {
				return nil, fmt.Errorf("custom group %q: pattern must be a string, got %T", name, v[name])
			}
			out = append(out, CustomGroup{Name: name, Pattern: pattern})
		}
		return out, nil
	case map[string]string:
		generic := make(map[string]any, len(v))
		for k, s := range v {
			generic[k] = s
		}
		return customGroupsHook(from, to, generic)
	default:
		return data, nil
	}
}

func partitioningHook(from, to reflect.Type, data any) (any, error) {
	if to != partitioningType {
		return data, nil
	}
	switch v := data.(type) {
	case bool:
		if v {
			return PartitionAll(), nil
		}
		return Partitioning{}, nil
	case string:
		return ParsePartitioning(v)
	default:
		return data, nil
	}
}
