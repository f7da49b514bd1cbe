package config

import (
	"strings"
	"testing"
)

func minimal() *Config {
	return &Config{
		Name:      "min",
		PortCount: 1,
		Metadata: []MetadataDef{{Name: "intrinsic_metadata", Fields: []FieldDef{
			{Name: "ingress_port", Width: 16},
			{Name: "egress_port", Width: 16},
			{Name: "egress_specification", Width: 32},
		}}},
		Layout: []string{"p"},
	}
}

func TestValidateMinimal(t *testing.T) {
	if err := minimal().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsMissingIntrinsic(t *testing.T) {
	c := minimal()
	c.Metadata = nil
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "intrinsic_metadata") {
		t.Fatalf("err = %v, want missing intrinsic_metadata", err)
	}
}

func TestValidateRejectsMissingEgressSpec(t *testing.T) {
	c := minimal()
	c.Metadata[0].Fields = c.Metadata[0].Fields[:2]
	if err := c.Validate(); err == nil {
		t.Fatal("missing egress_specification should fail")
	}
}

func TestValidateRejectsZeroPorts(t *testing.T) {
	c := minimal()
	c.PortCount = 0
	if err := c.Validate(); err == nil {
		t.Fatal("zero port count should fail")
	}
}

func TestValidateRejectsBadFieldWidth(t *testing.T) {
	c := minimal()
	c.HeaderTypes = []HeaderTypeDef{{Name: "h", Fields: []FieldDef{{Name: "f", Width: 0}}}}
	if err := c.Validate(); err == nil {
		t.Fatal("zero-width field should fail")
	}
	c.HeaderTypes[0].Fields[0].Width = 72 // wider than 64 but byte aligned
	if err := c.Validate(); err != nil {
		t.Fatalf("byte-aligned wide field: %v", err)
	}
	c.HeaderTypes[0].Fields[0].Width = 70
	if err := c.Validate(); err == nil {
		t.Fatal("unaligned wide field should fail")
	}
	c.HeaderTypes[0].Fields = []FieldDef{{Name: "f", Width: 4}, {Name: "g", Width: 72}}
	if err := c.Validate(); err == nil {
		t.Fatal("wide field at unaligned offset should fail")
	}
}

func TestValidateRejectsDanglingParserState(t *testing.T) {
	c := minimal()
	c.HeaderTypes = []HeaderTypeDef{{Name: "h", Fields: []FieldDef{{Name: "f", Width: 8}}}}
	c.Parsers = []ParserDef{{
		Name:       "p",
		StartState: "s",
		States: []ParseStateDef{{
			Name:        "s",
			Extracts:    []ExtractDef{{Instance: "h", Type: "h"}},
			Select:      []string{"h.f"},
			Transitions: map[uint64]string{1: "nowhere"},
		}},
	}}
	if err := c.Validate(); err == nil {
		t.Fatal("transition to unknown state should fail")
	}
}

func TestVXLANGatewayValidates(t *testing.T) {
	if err := VXLANGateway().Validate(); err != nil {
		t.Fatalf("demo config invalid: %v", err)
	}
}
