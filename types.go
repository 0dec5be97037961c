package dnswire

import "fmt"

// Type is the 16-bit TYPE code of a resource record (spec §3/§4.4).
// Grounded on _examples/original_source/src/rr/enums.rs's Type enum values.
type Type uint16

const (
	TypeA      Type = 1
	TypeNS     Type = 2
	TypeMD     Type = 3
	TypeMF     Type = 4
	TypeCNAME  Type = 5
	TypeSOA    Type = 6
	TypeMB     Type = 7
	TypeMG     Type = 8
	TypeMR     Type = 9
	TypeNULL   Type = 10
	TypeWKS    Type = 11
	TypePTR    Type = 12
	TypeHINFO  Type = 13
	TypeMINFO  Type = 14
	TypeMX     Type = 15
	TypeTXT    Type = 16
	TypeRP     Type = 17
	TypeAFSDB  Type = 18
	TypeX25    Type = 19
	TypeISDN   Type = 20
	TypeRT     Type = 21
	TypeNSAP   Type = 22
	TypePX     Type = 26
	TypeGPOS   Type = 27
	TypeAAAA   Type = 28
	TypeLOC    Type = 29
	TypeEID    Type = 31
	TypeNIMLOC Type = 32
	TypeSRV    Type = 33
	TypeKX     Type = 36
	TypeDNAME  Type = 39
	TypeOPT    Type = 41
	TypeAPL    Type = 42
	TypeDS     Type = 43
	TypeSSHFP  Type = 44
	TypeDNSKEY Type = 48
	TypeNID    Type = 104
	TypeL32    Type = 105
	TypeL64    Type = 106
	TypeLP     Type = 107
	TypeEUI48  Type = 108
	TypeEUI64  Type = 109
	TypeSVCB   Type = 64
	TypeHTTPS  Type = 65
	TypeURI    Type = 256
	TypeCAA    Type = 257
)

var typeNames = map[Type]string{
	TypeA: "A", TypeNS: "NS", TypeMD: "MD", TypeMF: "MF", TypeCNAME: "CNAME",
	TypeSOA: "SOA", TypeMB: "MB", TypeMG: "MG", TypeMR: "MR", TypeNULL: "NULL",
	TypeWKS: "WKS", TypePTR: "PTR", TypeHINFO: "HINFO", TypeMINFO: "MINFO",
	TypeMX: "MX", TypeTXT: "TXT", TypeRP: "RP", TypeAFSDB: "AFSDB", TypeX25: "X25",
	TypeISDN: "ISDN", TypeRT: "RT", TypeNSAP: "NSAP", TypePX: "PX", TypeGPOS: "GPOS",
	TypeAAAA: "AAAA", TypeLOC: "LOC", TypeEID: "EID", TypeNIMLOC: "NIMLOC",
	TypeSRV: "SRV", TypeKX: "KX", TypeDNAME: "DNAME", TypeOPT: "OPT", TypeAPL: "APL",
	TypeDS: "DS", TypeSSHFP: "SSHFP", TypeDNSKEY: "DNSKEY", TypeNID: "NID",
	TypeL32: "L32", TypeL64: "L64", TypeLP: "LP", TypeEUI48: "EUI48", TypeEUI64: "EUI64",
	TypeSVCB: "SVCB", TypeHTTPS: "HTTPS", TypeURI: "URI", TypeCAA: "CAA",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// QType is the union of concrete TYPE values and the query-only pseudo-types
// (spec §3).
type QType struct {
	concrete Type
	meta     qtypeMeta
	isMeta   bool
}

type qtypeMeta uint16

const (
	QTypeAXFR  qtypeMeta = 252
	QTypeMAILB qtypeMeta = 253
	QTypeMAILA qtypeMeta = 254
	QTypeALL   qtypeMeta = 255
)

// QTypeFromType lifts a concrete Type into a QType.
func QTypeFromType(t Type) QType { return QType{concrete: t} }

// QTypeFromMeta constructs a query-only pseudo-type QType.
func QTypeFromMeta(m qtypeMeta) QType { return QType{meta: m, isMeta: true} }

func (q QType) IsMeta() bool { return q.isMeta }

// AsType returns the underlying concrete Type and true, or the zero Type and
// false if q is a meta (query-only) value.
func (q QType) AsType() (Type, bool) {
	if q.isMeta {
		return 0, false
	}
	return q.concrete, true
}

func (q QType) code() uint16 {
	if q.isMeta {
		return uint16(q.meta)
	}
	return uint16(q.concrete)
}

func (q QType) String() string {
	if !q.isMeta {
		return q.concrete.String()
	}
	switch q.meta {
	case QTypeAXFR:
		return "AXFR"
	case QTypeMAILB:
		return "MAILB"
	case QTypeMAILA:
		return "MAILA"
	case QTypeALL:
		return "*"
	default:
		return fmt.Sprintf("QTYPE%d", uint16(q.meta))
	}
}

func qtypeFromCode(code uint16) (QType, error) {
	switch code {
	case uint16(QTypeAXFR):
		return QTypeFromMeta(QTypeAXFR), nil
	case uint16(QTypeMAILB):
		return QTypeFromMeta(QTypeMAILB), nil
	case uint16(QTypeMAILA):
		return QTypeFromMeta(QTypeMAILA), nil
	case uint16(QTypeALL):
		return QTypeFromMeta(QTypeALL), nil
	default:
		if _, ok := typeNames[Type(code)]; !ok {
			return QType{}, &EnumError{Enum: "QType", Value: uint64(code)}
		}
		return QTypeFromType(Type(code)), nil
	}
}

// Class is the address-family-like tag of a resource record (spec §3).
type Class uint16

const (
	ClassIN Class = 1
	ClassCS Class = 2
	ClassCH Class = 3
	ClassHS Class = 4
)

var className = map[Class]string{ClassIN: "IN", ClassCS: "CS", ClassCH: "CH", ClassHS: "HS"}

func (c Class) String() string {
	if n, ok := className[c]; ok {
		return n
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

func classFromCode(code uint16) (Class, error) {
	if _, ok := className[Class(code)]; !ok {
		return 0, &EnumError{Enum: "Class", Value: uint64(code)}
	}
	return Class(code), nil
}

// QClass unions Class with the query-only ANY class (spec §3).
type QClass struct {
	concrete Class
	isAny    bool
}

const qclassAnyCode uint16 = 255

func QClassFromClass(c Class) QClass { return QClass{concrete: c} }
func QClassAny() QClass             { return QClass{isAny: true} }

func (q QClass) IsAny() bool { return q.isAny }

func (q QClass) AsClass() (Class, bool) {
	if q.isAny {
		return 0, false
	}
	return q.concrete, true
}

func (q QClass) code() uint16 {
	if q.isAny {
		return qclassAnyCode
	}
	return uint16(q.concrete)
}

func (q QClass) String() string {
	if q.isAny {
		return "ANY"
	}
	return q.concrete.String()
}

func qclassFromCode(code uint16) (QClass, error) {
	if code == qclassAnyCode {
		return QClassAny(), nil
	}
	c, err := classFromCode(code)
	if err != nil {
		return QClass{}, &EnumError{Enum: "QClass", Value: uint64(code)}
	}
	return QClassFromClass(c), nil
}

// Opcode is the 4-bit OPCODE field of the header.
type Opcode uint8

const (
	OpcodeQuery  Opcode = 0
	OpcodeIQuery Opcode = 1
	OpcodeStatus Opcode = 2
	OpcodeNotify Opcode = 4
	OpcodeUpdate Opcode = 5
)

var opcodeNames = map[Opcode]string{
	OpcodeQuery: "QUERY", OpcodeIQuery: "IQUERY", OpcodeStatus: "STATUS",
	OpcodeNotify: "NOTIFY", OpcodeUpdate: "UPDATE",
}

func (o Opcode) String() string {
	if n, ok := opcodeNames[o]; ok {
		return n
	}
	return fmt.Sprintf("OPCODE%d", uint8(o))
}

func opcodeFromCode(code uint8) (Opcode, error) {
	if _, ok := opcodeNames[Opcode(code)]; !ok {
		return 0, &EnumError{Enum: "Opcode", Value: uint64(code)}
	}
	return Opcode(code), nil
}

// RCode is the 4-bit RCODE field of the header.
type RCode uint8

const (
	RCodeNoError  RCode = 0
	RCodeFormErr  RCode = 1
	RCodeServFail RCode = 2
	RCodeNXDomain RCode = 3
	RCodeNotImp   RCode = 4
	RCodeRefused  RCode = 5
	RCodeYXDomain RCode = 6
	RCodeYXRRSet  RCode = 7
	RCodeNXRRSet  RCode = 8
	RCodeNotAuth  RCode = 9
	RCodeNotZone  RCode = 10
)

var rcodeNames = map[RCode]string{
	RCodeNoError: "NOERROR", RCodeFormErr: "FORMERR", RCodeServFail: "SERVFAIL",
	RCodeNXDomain: "NXDOMAIN", RCodeNotImp: "NOTIMP", RCodeRefused: "REFUSED",
	RCodeYXDomain: "YXDOMAIN", RCodeYXRRSet: "YXRRSET", RCodeNXRRSet: "NXRRSET",
	RCodeNotAuth: "NOTAUTH", RCodeNotZone: "NOTZONE",
}

func (r RCode) String() string {
	if n, ok := rcodeNames[r]; ok {
		return n
	}
	return fmt.Sprintf("RCODE%d", uint8(r))
}

func rcodeFromCode(code uint8) (RCode, error) {
	if _, ok := rcodeNames[RCode(code)]; !ok {
		return 0, &EnumError{Enum: "RCode", Value: uint64(code)}
	}
	return RCode(code), nil
}
