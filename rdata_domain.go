package dnswire

// domainRData is shared by every record whose RDATA is exactly one domain
// name (NS, MD, MF, CNAME, MB, MG, MR, PTR, DNAME), per spec §4.4's table.
// Grounded on _examples/original_source/src/decode/resource_record/decode.rs's
// decode_ns/decode_md/.../decode_dname, which are all the same
// decode_domain() call with a different RData tag.
type domainRData struct {
	typ  Type
	Name DomainName
}

func (d *domainRData) Type() Type { return d.typ }

func decodeDomainRData(typ Type) func(body *cursor) (RData, error) {
	return func(body *cursor) (RData, error) {
		name, err := body.decodeDomainName()
		if err != nil {
			return nil, err
		}
		return &domainRData{typ: typ, Name: name}, nil
	}
}

func encodeDomainRData(d RData, w *writer) error {
	return w.encodeDomainName(d.(*domainRData).Name)
}

func registerDomainRR(typ Type) {
	registerRR(typ, nil, decodeDomainRData(typ), encodeDomainRData)
}

// NS constructs an NS record's RData.
func NS(name DomainName) RData { return &domainRData{typ: TypeNS, Name: name} }

// MD constructs an MD record's RData.
func MD(name DomainName) RData { return &domainRData{typ: TypeMD, Name: name} }

// MF constructs an MF record's RData.
func MF(name DomainName) RData { return &domainRData{typ: TypeMF, Name: name} }

// CNAME constructs a CNAME record's RData.
func CNAME(name DomainName) RData { return &domainRData{typ: TypeCNAME, Name: name} }

// MB constructs an MB record's RData.
func MB(name DomainName) RData { return &domainRData{typ: TypeMB, Name: name} }

// MG constructs an MG record's RData.
func MG(name DomainName) RData { return &domainRData{typ: TypeMG, Name: name} }

// MR constructs an MR record's RData.
func MR(name DomainName) RData { return &domainRData{typ: TypeMR, Name: name} }

// PTR constructs a PTR record's RData.
func PTR(name DomainName) RData { return &domainRData{typ: TypePTR, Name: name} }

// DNAME constructs a DNAME record's RData.
func DNAME(name DomainName) RData { return &domainRData{typ: TypeDNAME, Name: name} }

func init() {
	registerDomainRR(TypeNS)
	registerDomainRR(TypeMD)
	registerDomainRR(TypeMF)
	registerDomainRR(TypeCNAME)
	registerDomainRR(TypeMB)
	registerDomainRR(TypeMG)
	registerDomainRR(TypeMR)
	registerDomainRR(TypePTR)
	registerDomainRR(TypeDNAME)
}
