package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

// reconcilePlugins normalizes a plugin list response from the network path.
// The upstream list endpoint names fields in snake_case and may wrap the
// sequence in a {list, total} pagination envelope; the domain model uses
// camelCase and a bare slice. Reconciliation is idempotent and
// all-or-nothing: one malformed record fails the whole list.
func reconcilePlugins(raw json.RawMessage) ([]models.Plugin, error) {
	items, err := listPayload(raw)
	if err != nil {
		return nil, err
	}
	plugins := make([]models.Plugin, 0, len(items))
	for _, item := range items {
		p, err := reconcilePlugin(item)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, *p)
	}
	return plugins, nil
}

// listPayload accepts either a bare JSON array or a pagination wrapper
// exposing a list member, and yields the raw records. An object without a
// list key is an error, not an empty list — a shape change upstream must
// surface instead of silently dropping every plugin.
func listPayload(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err == nil {
		return items, nil
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err == nil {
		list, ok := wrapper["list"]
		if !ok {
			return nil, fmt.Errorf("plugin list: unexpected response shape")
		}
		if bytes.Equal(bytes.TrimSpace(list), []byte("null")) {
			return nil, nil
		}
		if err := json.Unmarshal(list, &items); err != nil {
			return nil, fmt.Errorf("plugin list: unexpected response shape")
		}
		return items, nil
	}
	return nil, fmt.Errorf("plugin list: unexpected response shape")
}

// reconcilePlugin computes the canonical field names for one record:
// is_enabled then isEnabled for the enabled flag, create_time/update_time
// then their camelCase forms for the timestamps.
func reconcilePlugin(raw json.RawMessage) (*models.Plugin, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("plugin record: %w", err)
	}

	preferKey(fields, "is_enabled", "isEnabled")
	preferKey(fields, "create_time", "createTime")
	preferKey(fields, "update_time", "updateTime")
	if _, ok := fields["isEnabled"]; !ok {
		// Backends that omit the flag entirely get false. Flagged for
		// review: an upstream that drops the field silently disables
		// every plugin in the list.
		fields["isEnabled"] = json.RawMessage("false")
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var plugin models.Plugin
	if err := json.Unmarshal(normalized, &plugin); err != nil {
		return nil, fmt.Errorf("plugin record: %w", err)
	}
	return &plugin, nil
}

// preferKey moves the transport-named field onto the canonical name,
// winning over any camelCase value already present.
func preferKey(fields map[string]json.RawMessage, transport, canonical string) {
	v, ok := fields[transport]
	if !ok {
		return
	}
	delete(fields, transport)
	trimmed := bytes.TrimSpace(v)
	// null and "" fall through to the camelCase value.
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return
	}
	fields[canonical] = v
}
