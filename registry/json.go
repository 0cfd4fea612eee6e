package registry

import (
	"encoding/json"

	"github.com/finchtower/objprop/format"
)

// jsonEnumOption mirrors format.EnumOption for JSON registries: the
// variant's wire value is given either as an "int" number or as a "str"
// string field, which maps onto format.StringOrInt ("int" wins if both
// are present).
type jsonEnumOption struct {
	Name    string  `json:"name"`
	IntVal  *uint32 `json:"int,omitempty"`
	StrVal  *string `json:"str,omitempty"`
}

type jsonProperty struct {
	Name        string           `json:"name"`
	Hash        uint32           `json:"hash"`
	Type        string           `json:"type"`
	Flags       uint32           `json:"flags"`
	Dynamic     bool             `json:"dynamic"`
	EnumOptions []jsonEnumOption `json:"enum_options,omitempty"`
}

type jsonTypeDef struct {
	Hash       uint32         `json:"hash"`
	Name       string         `json:"name"`
	Properties []jsonProperty `json:"properties"`
}

// UnmarshalJSON decodes a registry shipped as a JSON array of type
// definitions into a Map, validating uniqueness via NewMap.
func (m *Map) UnmarshalJSON(data []byte) error {
	var defs []jsonTypeDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return err
	}

	built := make(map[uint32]TypeDef, len(defs))
	for _, d := range defs {
		td := TypeDef{Name: d.Name, Properties: make([]Property, 0, len(d.Properties))}
		for _, jp := range d.Properties {
			p := Property{
				Name:    jp.Name,
				Hash:    jp.Hash,
				Type:    jp.Type,
				Dynamic: jp.Dynamic,
				Flags:   format.PropertyFlags(jp.Flags),
			}
			for _, eo := range jp.EnumOptions {
				p.EnumOptions = append(p.EnumOptions, toEnumOption(eo))
			}
			td.Properties = append(td.Properties, p)
		}
		built[d.Hash] = td
	}

	out, err := NewMap(built)
	if err != nil {
		return err
	}

	*m = out

	return nil
}

func toEnumOption(eo jsonEnumOption) format.EnumOption {
	if eo.IntVal != nil {
		return format.EnumOption{Name: eo.Name, Value: format.Int(*eo.IntVal)}
	}
	if eo.StrVal != nil {
		return format.EnumOption{Name: eo.Name, Value: format.Str(*eo.StrVal)}
	}

	return format.EnumOption{Name: eo.Name}
}
