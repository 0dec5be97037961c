package dnswire

// Question is a single question-section entry: the name being asked about,
// its query type and query class (spec §3).
type Question struct {
	Name   DomainName
	QType  QType
	QClass QClass
}

func decodeQuestion(c *cursor) (Question, error) {
	name, err := c.decodeDomainName()
	if err != nil {
		return Question{}, err
	}
	rawType, err := c.u16()
	if err != nil {
		return Question{}, err
	}
	qtype, err := qtypeFromCode(rawType)
	if err != nil {
		return Question{}, err
	}
	rawClass, err := c.u16()
	if err != nil {
		return Question{}, err
	}
	qclass, err := qclassFromCode(rawClass)
	if err != nil {
		return Question{}, err
	}
	return Question{Name: name, QType: qtype, QClass: qclass}, nil
}

func (q Question) encode(w *writer) error {
	if err := w.encodeDomainName(q.Name); err != nil {
		return err
	}
	w.u16(q.QType.code())
	w.u16(q.QClass.code())
	return nil
}
