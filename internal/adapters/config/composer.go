package config

import (
	"bytes"
	"encoding/json"
	"strconv"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (l *Loader) loadComposerfile(configPath string) (*domain.Manifest, error) {
	data, err := readConfig(configPath)
	if err != nil {
		return nil, err
	}

	var file Composerfile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", configPath)
	}

	node, err := orderedNode(file.Extra.PlatformSpecificRequire)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", configPath)
	}

	requirements, err := l.parseRequirements(node)
	if err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	return newManifest(configPath, file.Extra.Strategy, file.Config.VendorDir, file.Extra.Repositories, file.Require, requirements), nil
}

// orderedNode converts a raw JSON value into a yaml.Node so object keys keep
// their document order. An absent value yields an empty node.
func orderedNode(raw json.RawMessage) (*yaml.Node, error) {
	if len(raw) == 0 {
		return &yaml.Node{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return decodeNode(dec)
}

func decodeNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		return decodeCollection(dec, t)
	case string:
		return scalar("!!str", t), nil
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return scalar("!!int", t.String()), nil
		}
		return scalar("!!float", t.String()), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(t)), nil
	default:
		return scalar("!!null", "null"), nil
	}
}

// decodeCollection reads the members of the object or array opened by delim,
// including the closing delimiter.
func decodeCollection(dec *json.Decoder, delim json.Delim) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if delim == '{' {
		node = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}

	for dec.More() {
		if node.Kind == yaml.MappingNode {
			key, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, _ := key.(string)
			node.Content = append(node.Content, scalar("!!str", name))
		}

		value, err := decodeNode(dec)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
