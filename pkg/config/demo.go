package config

// VXLANGateway returns the canonical demo instance: a four-port L2
// gateway bridging two native VLAN ports and two VXLAN tunnel ports.
// Encap-class ports parse an outer ethernet/ipv4/udp/vxlan stack and
// decapsulate; native ports resolve a VNI from the VLAN tag. Forwarding
// keys on the inner destination MAC plus the VNI, flooding unknown
// destinations to a multicast group. Frames leaving a tunnel port are
// re-encapsulated on egress.
func VXLANGateway() *Config {
	const floodGroup = 0x80000001 // multicast bit | group 1

	return &Config{
		Name:      "vxlan-gateway",
		PortCount: 4,
		HeaderTypes: []HeaderTypeDef{
			{Name: "ethernet", Fields: []FieldDef{
				{Name: "dst_mac", Width: 48},
				{Name: "src_mac", Width: 48},
				{Name: "ethertype", Width: 16},
			}},
			{Name: "vlan", Fields: []FieldDef{
				{Name: "pcp", Width: 3},
				{Name: "cfi", Width: 1},
				{Name: "vid", Width: 12},
				{Name: "ethertype", Width: 16},
			}},
			{Name: "ipv4", Fields: []FieldDef{
				{Name: "version", Width: 4},
				{Name: "ihl", Width: 4},
				{Name: "diffserv", Width: 8},
				{Name: "total_length", Width: 16},
				{Name: "id", Width: 16},
				{Name: "flags", Width: 3},
				{Name: "frag_offset", Width: 13},
				{Name: "ttl", Width: 8},
				{Name: "protocol", Width: 8},
				{Name: "checksum", Width: 16},
				{Name: "src_addr", Width: 32},
				{Name: "dst_addr", Width: 32},
			}},
			{Name: "udp", Fields: []FieldDef{
				{Name: "src_port", Width: 16},
				{Name: "dst_port", Width: 16},
				{Name: "length", Width: 16},
				{Name: "checksum", Width: 16},
			}},
			{Name: "vxlan", Fields: []FieldDef{
				{Name: "flags", Width: 8},
				{Name: "reserved", Width: 24},
				{Name: "vni", Width: 24},
				{Name: "reserved2", Width: 8},
			}},
		},
		Metadata: []MetadataDef{
			{Name: "intrinsic_metadata", Fields: []FieldDef{
				{Name: "ingress_port", Width: 16},
				{Name: "egress_port", Width: 16},
				{Name: "egress_specification", Width: 32},
			}},
			{Name: "route_md", Fields: []FieldDef{
				{Name: "vni", Width: 24},
			}},
		},
		Parsers: []ParserDef{{
			Name:       "pkt_parser",
			StartState: "parse_ethernet",
			States: []ParseStateDef{
				{
					Name:        "parse_ethernet",
					Extracts:    []ExtractDef{{Instance: "ethernet", Type: "ethernet"}},
					Select:      []string{"ethernet.ethertype"},
					Transitions: map[uint64]string{0x8100: "parse_vlan"},
				},
				{
					Name:     "parse_vlan",
					Extracts: []ExtractDef{{Instance: "vlan", Type: "vlan"}},
				},
				{
					Name:        "parse_outer_ethernet",
					Extracts:    []ExtractDef{{Instance: "outer_ethernet", Type: "ethernet"}},
					Select:      []string{"outer_ethernet.ethertype"},
					Transitions: map[uint64]string{0x0800: "parse_outer_ipv4"},
				},
				{
					Name:        "parse_outer_ipv4",
					Extracts:    []ExtractDef{{Instance: "outer_ipv4", Type: "ipv4"}},
					Select:      []string{"outer_ipv4.protocol"},
					Transitions: map[uint64]string{17: "parse_outer_udp"},
				},
				{
					Name:        "parse_outer_udp",
					Extracts:    []ExtractDef{{Instance: "outer_udp", Type: "udp"}},
					Select:      []string{"outer_udp.dst_port"},
					Transitions: map[uint64]string{4789: "parse_vxlan"},
				},
				{
					Name:     "parse_vxlan",
					Extracts: []ExtractDef{{Instance: "vxlan", Type: "vxlan"}},
					Default:  "parse_ethernet",
				},
			},
		}},
		Actions: []ActionDef{
			{Name: "no_op", Primitives: []PrimitiveDef{{Op: OpNoOp}}},
			{Name: "set_vni", Params: []string{"vni"}, Primitives: []PrimitiveDef{
				{Op: OpModifyField, Args: []string{"route_md.vni", "vni"}},
			}},
			{Name: "set_egress", Params: []string{"spec"}, Primitives: []PrimitiveDef{
				{Op: OpModifyField, Args: []string{"intrinsic_metadata.egress_specification", "spec"}},
			}},
			{Name: "drop", Primitives: []PrimitiveDef{
				{Op: OpModifyField, Args: []string{"intrinsic_metadata.egress_specification", "0xffffffff"}},
			}},
			{Name: "decap", Primitives: []PrimitiveDef{
				{Op: OpModifyField, Args: []string{"route_md.vni", "vxlan.vni"}},
				{Op: OpRemoveHeader, Args: []string{"outer_ethernet"}},
				{Op: OpRemoveHeader, Args: []string{"outer_ipv4"}},
				{Op: OpRemoveHeader, Args: []string{"outer_udp"}},
				{Op: OpRemoveHeader, Args: []string{"vxlan"}},
			}},
			{Name: "vxlan_encap", Params: []string{"src_mac", "dst_mac", "src_ip", "dst_ip"}, Primitives: []PrimitiveDef{
				{Op: OpAddHeader, Args: []string{"vxlan", "vxlan", "before", "ethernet"}},
				{Op: OpModifyField, Args: []string{"vxlan.flags", "0x08"}},
				{Op: OpModifyField, Args: []string{"vxlan.vni", "route_md.vni"}},
				{Op: OpAddHeader, Args: []string{"outer_udp", "udp", "before", "vxlan"}},
				{Op: OpModifyField, Args: []string{"outer_udp.src_port", "49152"}},
				{Op: OpModifyField, Args: []string{"outer_udp.dst_port", "4789"}},
				{Op: OpAddHeader, Args: []string{"outer_ipv4", "ipv4", "before", "outer_udp"}},
				{Op: OpModifyField, Args: []string{"outer_ipv4.version", "4"}},
				{Op: OpModifyField, Args: []string{"outer_ipv4.ihl", "5"}},
				{Op: OpModifyField, Args: []string{"outer_ipv4.ttl", "64"}},
				{Op: OpModifyField, Args: []string{"outer_ipv4.protocol", "17"}},
				{Op: OpModifyField, Args: []string{"outer_ipv4.src_addr", "src_ip"}},
				{Op: OpModifyField, Args: []string{"outer_ipv4.dst_addr", "dst_ip"}},
				{Op: OpAddHeader, Args: []string{"outer_ethernet", "ethernet", "before", "outer_ipv4"}},
				{Op: OpModifyField, Args: []string{"outer_ethernet.ethertype", "0x0800"}},
				{Op: OpModifyField, Args: []string{"outer_ethernet.src_mac", "src_mac"}},
				{Op: OpModifyField, Args: []string{"outer_ethernet.dst_mac", "dst_mac"}},
			}},
		},
		Tables: []TableDef{
			{Name: "tunnel_decap", Keys: []MatchKeyDef{
				{Field: "vxlan", Kind: MatchValid},
			}},
			{Name: "resolve_vni", Keys: []MatchKeyDef{
				{Field: "vlan.vid", Kind: MatchExact},
			}},
			{Name: "forward", Keys: []MatchKeyDef{
				{Field: "ethernet.dst_mac", Kind: MatchExact},
				{Field: "route_md.vni", Kind: MatchExact},
			}},
			{Name: "egress_encap", Keys: []MatchKeyDef{
				{Field: "intrinsic_metadata.egress_port", Kind: MatchExact},
			}},
		},
		ControlFlows: []ControlFlowDef{
			{
				Name:  "ingress",
				Start: "tunnel_decap",
				Nodes: []FlowNodeDef{
					{Table: "tunnel_decap", Edges: map[EdgeLabel]string{
						EdgeHit:  "forward",
						EdgeMiss: "resolve_vni",
					}},
					{Table: "resolve_vni", Edges: map[EdgeLabel]string{
						EdgeDefault: "forward",
					}},
					{Table: "forward"},
				},
			},
			{
				Name:  "egress",
				Start: "egress_encap",
				Nodes: []FlowNodeDef{{Table: "egress_encap"}},
			},
		},
		TrafficManagers: []TrafficManagerDef{{
			Name:          "tm0",
			QueuesPerPort: 4,
			Discipline:    DisciplineStrict,
			MulticastGroups: map[uint16][]PortQueue{
				1: {{Port: 0}, {Port: 1}, {Port: 2}, {Port: 3}},
			},
		}},
		Ports: []PortDef{
			{Number: 0, Class: PortNative},
			{Number: 1, Class: PortNative},
			{Number: 2, Class: PortEncap, StartState: "parse_outer_ethernet"},
			{Number: 3, Class: PortEncap, StartState: "parse_outer_ethernet"},
		},
		Layout: []string{"pkt_parser", "ingress", "tm0", "egress"},
		TableInit: []EntryDef{
			{Table: "tunnel_decap", MatchValues: map[string]uint64{"vxlan": 1}, Action: "decap"},
			{Table: "resolve_vni", Action: "set_vni", ActionParams: map[string]uint64{"vni": 1}},
			{Table: "resolve_vni", MatchValues: map[string]uint64{"vlan.vid": 10}, Action: "set_vni",
				ActionParams: map[string]uint64{"vni": 10}},
			{Table: "resolve_vni", MatchValues: map[string]uint64{"vlan.vid": 20}, Action: "set_vni",
				ActionParams: map[string]uint64{"vni": 20}},
			{Table: "forward", Action: "set_egress", ActionParams: map[string]uint64{"spec": floodGroup}},
			{Table: "egress_encap", MatchValues: map[string]uint64{"intrinsic_metadata.egress_port": 2},
				Action: "vxlan_encap", ActionParams: map[string]uint64{
					"src_mac": 0x02_00_00_00_00_02, "dst_mac": 0x02_00_00_00_0b_02,
					"src_ip": 0x0a000001, "dst_ip": 0x0a000002,
				}},
			{Table: "egress_encap", MatchValues: map[string]uint64{"intrinsic_metadata.egress_port": 3},
				Action: "vxlan_encap", ActionParams: map[string]uint64{
					"src_mac": 0x02_00_00_00_00_03, "dst_mac": 0x02_00_00_00_0b_03,
					"src_ip": 0x0a000001, "dst_ip": 0x0a000003,
				}},
		},
	}
}
