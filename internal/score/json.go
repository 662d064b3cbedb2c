package score

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnmarshalJSON accepts the pair-list form and the legacy object form
// {"cat":"50.00",...}, keeping the document order of the object keys.
func (r *Ranking) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*r = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []Entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return err
		}
		*r = entries
		return nil
	}
	entries, err := decodeLegacyScores(trimmed)
	if err != nil {
		return err
	}
	*r = entries
	return nil
}

func decodeLegacyScores(data []byte) (Ranking, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode scores: expected array or object")
	}
	entries := Ranking{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("decode scores: %w", err)
		}
		category, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("decode scores: unexpected key %v", keyToken)
		}
		var raw interface{}
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode scores %q: %w", category, err)
		}
		pct, err := legacyPercentage(raw)
		if err != nil {
			return nil, fmt.Errorf("decode scores %q: %w", category, err)
		}
		entries = append(entries, Entry{Category: category, Percentage: pct})
	}
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return entries, nil
}

// legacyPercentage keeps finite strings verbatim and renders numbers with
// two decimals. Non-finite values ("NaN" after an empty run) become "0.00".
func legacyPercentage(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		if value, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && (math.IsNaN(value) || math.IsInf(value, 0)) {
			return FormatPercentage(value), nil
		}
		return v, nil
	case json.Number:
		value, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return "", err
		}
		return FormatPercentage(value), nil
	default:
		return "", fmt.Errorf("unsupported percentage %v", raw)
	}
}
