package registry

// table is the declarative top-level TLV database, keyed by type. It covers
// the mandatory/common TLVs named throughout spec.md and CL-SP-CANN's
// numbering; see SPEC_FULL.md §3.A for the rationale behind the selection.
var table = map[int]*Entry{
	1: {
		Type: 1, Name: "Downstream Frequency", Kind: KindUint32,
		IntroducedVersion: V1_0, MaxLength: 4, Uniqueness: Single,
		RequiredAtTopLevel: false,
	},
	2: {
		Type: 2, Name: "Upstream Channel ID", Kind: KindUint8,
		IntroducedVersion: V1_0, MaxLength: 1, Uniqueness: Single,
	},
	3: {
		Type: 3, Name: "Network Access Control", Kind: KindEnum,
		IntroducedVersion: V1_0, MaxLength: 1, Uniqueness: Single,
		EnumTable: []EnumEntry{{0, "Disabled"}, {1, "Enabled"}},
	},
	4: {
		Type: 4, Name: "Class of Service", Kind: KindCompound,
		IntroducedVersion: V1_0, MaxLength: Unlimited, Uniqueness: Multiple,
		SubSchema: map[int]*Entry{
			1: {Type: 1, Name: "Class ID", Kind: KindUint8, MaxLength: 1, IntroducedVersion: V1_0},
			2: {Type: 2, Name: "Max Downstream Rate", Kind: KindUint32, MaxLength: 4, IntroducedVersion: V1_0},
			3: {Type: 3, Name: "Max Upstream Rate", Kind: KindUint32, MaxLength: 4, IntroducedVersion: V1_0},
		},
	},
	6: {
		Type: 6, Name: "CM-MIC", Kind: KindHexBytes,
		IntroducedVersion: V1_0, MaxLength: 16, Uniqueness: Single,
	},
	7: {
		Type: 7, Name: "CMTS-MIC", Kind: KindHexBytes,
		IntroducedVersion: V1_0, MaxLength: 16, Uniqueness: Single,
	},
	17: {
		Type: 17, Name: "CPE Ethernet MAC Address", Kind: KindMAC,
		IntroducedVersion: V1_0, MaxLength: 6, Uniqueness: Multiple,
	},
	18: {
		Type: 18, Name: "Downstream Service Flow", Kind: KindCompound,
		IntroducedVersion: V1_1, MaxLength: Unlimited, Uniqueness: Multiple,
		SubSchema: map[int]*Entry{
			1: {Type: 1, Name: "Service Flow Reference", Kind: KindUint16, MaxLength: 2, IntroducedVersion: V1_1},
			2: {Type: 2, Name: "Service Flow ID", Kind: KindUint32, MaxLength: 4, IntroducedVersion: V1_1},
			6: {Type: 6, Name: "QoS Parameter Set Type", Kind: KindUint8, MaxLength: 1, IntroducedVersion: V1_1},
			7: {Type: 7, Name: "Traffic Priority", Kind: KindUint8, MaxLength: 1, IntroducedVersion: V1_1,
				Range: &Range{Min: 0, Max: 7}},
		},
	},
	20: {
		Type: 20, Name: "Maximum Number of CPEs", Kind: KindUint8,
		IntroducedVersion: V1_0, MaxLength: 1, Uniqueness: Single,
	},
	22: {
		Type: 22, Name: "Upstream Packet Classification", Kind: KindCompound,
		IntroducedVersion: V1_1, MaxLength: Unlimited, Uniqueness: Multiple,
		SubSchema: map[int]*Entry{
			1: {Type: 1, Name: "Classifier Reference", Kind: KindUint8, MaxLength: 1, IntroducedVersion: V1_1},
			3: {Type: 3, Name: "Service Flow Reference", Kind: KindUint16, MaxLength: 2, IntroducedVersion: V1_1},
			6: {Type: 6, Name: "IP Source Address", Kind: KindIPv4, MaxLength: 4, IntroducedVersion: V1_1},
		},
	},
	23: {
		Type: 23, Name: "Downstream Packet Classification", Kind: KindCompound,
		IntroducedVersion: V1_1, MaxLength: Unlimited, Uniqueness: Multiple,
		SubSchema: map[int]*Entry{
			1: {Type: 1, Name: "Classifier Reference", Kind: KindUint8, MaxLength: 1, IntroducedVersion: V1_1},
			3: {Type: 3, Name: "Service Flow Reference", Kind: KindUint16, MaxLength: 2, IntroducedVersion: V1_1},
		},
	},
	24: {
		Type: 24, Name: "Upstream Service Flow", Kind: KindCompound,
		IntroducedVersion: V1_1, MaxLength: Unlimited, Uniqueness: Multiple,
		SubSchema: map[int]*Entry{
			1: {Type: 1, Name: "Service Flow Reference", Kind: KindUint16, MaxLength: 2, IntroducedVersion: V1_1},
			2: {Type: 2, Name: "Service Flow ID", Kind: KindUint32, MaxLength: 4, IntroducedVersion: V1_1},
			6: {Type: 6, Name: "QoS Parameter Set Type", Kind: KindUint8, MaxLength: 1, IntroducedVersion: V1_1},
			7: {Type: 7, Name: "Traffic Priority", Kind: KindUint8, MaxLength: 1, IntroducedVersion: V1_1,
				Range: &Range{Min: 0, Max: 7}},
		},
	},
	25: {
		Type: 25, Name: "Downstream Service Flow (duplicate alias)", Kind: KindCompound,
		IntroducedVersion: V1_1, MaxLength: Unlimited, Uniqueness: Multiple,
		SubSchema: map[int]*Entry{
			1: {Type: 1, Name: "Service Flow Reference", Kind: KindUint16, MaxLength: 2, IntroducedVersion: V1_1},
		},
	},
	28: {
		Type: 28, Name: "SNMP MIB Object", Kind: KindHexBytes,
		IntroducedVersion: V1_0, MaxLength: Unlimited, Uniqueness: Multiple,
	},
	29: {
		Type: 29, Name: "Vendor Specific (MIC coverage marker)", Kind: KindHexBytes,
		IntroducedVersion: V1_0, MaxLength: Unlimited, Uniqueness: Multiple,
	},
	38: {
		Type: 38, Name: "MIC Padding", Kind: KindHexBytes,
		IntroducedVersion: V1_0, MaxLength: Unlimited, Uniqueness: Single,
	},
	43: {
		Type: 43, Name: "Vendor Specific Information", Kind: KindCompound,
		IntroducedVersion: V1_1, MaxLength: Unlimited, Uniqueness: Multiple,
		SubSchema: map[int]*Entry{
			8: {Type: 8, Name: "Vendor Identifier", Kind: KindHexBytes, MaxLength: 3, IntroducedVersion: V1_1},
		},
	},
	64: {
		Type: 64, Name: "PacketCable Configuration", Kind: KindASN1,
		IntroducedVersion: V1_1, MaxLength: Unlimited, Uniqueness: Single,
	},
	65: {
		Type: 65, Name: "Energy Management", Kind: KindCompound,
		AliasNames:        []string{"L2VPN MAC Aging"},
		IntroducedVersion: V3_0, MaxLength: Unlimited, Uniqueness: Single,
	},
	67: {
		Type: 67, Name: "MTA Configuration", Kind: KindHexBytes,
		IntroducedVersion: V1_1, MaxLength: Unlimited, Uniqueness: Single,
	},
	68: {
		Type: 68, Name: "Network Timeshift", Kind: KindUint8,
		IntroducedVersion: V3_0, MaxLength: 1, Uniqueness: Single,
	},
	77: {
		Type: 77, Name: "CM Upstream Drop Classifier Group ID", Kind: KindUint32,
		IntroducedVersion: V3_1, MaxLength: 4, Uniqueness: Multiple,
	},
}
