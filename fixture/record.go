package fixture

// Record carries one field of every value kind.
type Record struct {
	BooleanField bool    `json:"booleanField"`
	CharField    rune    `json:"charField"   field:",char"`
	ByteField    int8    `json:"byteField"`
	ShortField   int16   `json:"shortField"`
	IntField     int32   `json:"intField"`
	LongField    int64   `json:"longField"`
	FloatField   float32 `json:"floatField"`
	DoubleField  float64 `json:"doubleField"`
	StringField  string  `json:"stringField"`
	NodeField    *Node   `json:"nodeField"`
}

// NewRecord returns a Record where no field holds its default.
func NewRecord() *Record {
	return &Record{
		BooleanField: true,
		CharField:    '?',
		ByteField:    -25,
		ShortField:   4416,
		IntField:     6112019,
		LongField:    3,
		FloatField:   1.1,
		DoubleField:  1.2,
		StringField:  "as good as any other non-primitive type",
		NodeField:    NewNode("record_key", 7, nil),
	}
}

// RecordFieldNames lists the json names of every Record field.
func RecordFieldNames() []string {
	return []string{
		"booleanField", "charField", "byteField", "shortField", "intField",
		"longField", "floatField", "doubleField", "stringField", "nodeField",
	}
}
