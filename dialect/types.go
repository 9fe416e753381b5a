package dialect

import "strconv"

// TypeKind identifies a scalar column type.
type TypeKind int

const (
	TypeSmallInt TypeKind = iota
	TypeInteger
	TypeBigInt
	TypeReal
	TypeDouble
	TypeDecimal
	TypeBoolean
	TypeText
	TypeVarchar
	TypeChar
	TypeBlob
	TypeDate
	TypeTime
	TypeTimestamp
	TypeTimestampTZ
	TypeJSON
	TypeUUID
)

var typeKindSQL = [...]string{
	TypeSmallInt:    "SMALLINT",
	TypeInteger:     "INTEGER",
	TypeBigInt:      "BIGINT",
	TypeReal:        "REAL",
	TypeDouble:      "DOUBLE PRECISION",
	TypeDecimal:     "DECIMAL",
	TypeBoolean:     "BOOLEAN",
	TypeText:        "TEXT",
	TypeVarchar:     "VARCHAR",
	TypeChar:        "CHAR",
	TypeBlob:        "BLOB",
	TypeDate:        "DATE",
	TypeTime:        "TIME",
	TypeTimestamp:   "TIMESTAMP",
	TypeTimestampTZ: "TIMESTAMP WITH TIME ZONE",
	TypeJSON:        "JSON",
	TypeUUID:        "UUID",
}

// DataType is a scalar column type with its optional size parameters.
// Length applies to VARCHAR and CHAR; Precision and Scale to DECIMAL.
type DataType struct {
	Kind      TypeKind
	Length    int
	Precision int
	Scale     int
}

// Keyword returns the bare type keyword without size parameters.
func (t DataType) Keyword() string {
	if int(t.Kind) < 0 || int(t.Kind) >= len(typeKindSQL) {
		return "TEXT"
	}
	return typeKindSQL[t.Kind]
}

// DefaultSQL renders the ANSI-flavoured spelling used when a dialect does
// not override the type.
func (t DataType) DefaultSQL() string {
	kw := t.Keyword()
	switch t.Kind {
	case TypeVarchar, TypeChar:
		if t.Length > 0 {
			return kw + "(" + strconv.Itoa(t.Length) + ")"
		}
	case TypeDecimal:
		if t.Precision > 0 {
			if t.Scale > 0 {
				return kw + "(" + strconv.Itoa(t.Precision) + ", " + strconv.Itoa(t.Scale) + ")"
			}
			return kw + "(" + strconv.Itoa(t.Precision) + ")"
		}
	}
	return kw
}
