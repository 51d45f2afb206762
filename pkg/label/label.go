// Package label deals with taxonomic labels produced by the species
// classifier. A label is a string made of 7 semicolon-delimited fields:
//
//	id;class;order;family;genus;species;common_name
//
// Fields after class can be empty, which means the label is not resolved
// below that level.
package label

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel labels. They are placeholders for outcomes that are not real
// taxa, or for taxa the ensemble treats specially.
const (
	Blank   = "f1856211-cfb7-4a5b-9158-c0f72fd09ee6;;;;;;blank"
	Animal  = "1f689929-883d-4dae-958c-3d57ab5b6c16;;;;;;animal"
	Human   = "990ae9dd-7a59-4344-afcb-1b7b21368000;mammalia;primates;hominidae;homo;sapiens;human"
	Vehicle = "e2895ed5-780b-48f6-8a11-9e27cb594511;;;;;;vehicle"
	Unknown = "f2efdae9-efb8-48fb-8a91-eccf79ab4ffb;no cv result;no cv result;no cv result;no cv result;no cv result;no cv result"
)

const (
	// FieldsNum is the number of fields in a well-formed label.
	FieldsNum = 7
	// ClassFieldsNum is the number of fields in a full class string.
	ClassFieldsNum = 5
	// Sep separates fields of labels and full class strings.
	Sep = ";"
)

// Label is a parsed taxonomic label.
type Label struct {
	ID         string
	Class      string
	Order      string
	Family     string
	Genus      string
	Species    string
	CommonName string
}

// Parse splits a label into its fields. It returns MalformedLabelError if
// the label does not have exactly 7 fields.
func Parse(s string) (Label, error) {
	parts := strings.Split(s, Sep)
	if len(parts) != FieldsNum {
		return Label{}, MalformedLabelError(s, len(parts))
	}
	res := Label{
		ID:         parts[0],
		Class:      parts[1],
		Order:      parts[2],
		Family:     parts[3],
		Genus:      parts[4],
		Species:    parts[5],
		CommonName: parts[6],
	}
	return res, nil
}

// FullClass returns the 5 middle fields of a label:
// class;order;family;genus;species.
func FullClass(s string) (string, error) {
	l, err := Parse(s)
	if err != nil {
		return "", err
	}
	return l.FullClass(), nil
}

// FullClass returns class;order;family;genus;species of the label.
func (l Label) FullClass() string {
	return strings.Join(l.Taxa(), Sep)
}

// Taxa returns class, order, family, genus and species fields in this
// order.
func (l Label) Taxa() []string {
	return []string{l.Class, l.Order, l.Family, l.Genus, l.Species}
}

// IsTaxon is true if the label is not one of Blank, Human or Vehicle
// sentinels.
func IsTaxon(s string) bool {
	switch s {
	case Blank, Human, Vehicle:
		return false
	default:
		return true
	}
}

// ScientificName returns a scientific name for the most specific resolved
// field of the label. Binomials are built from genus and species,
// higher taxa are returned as capitalized uninomials. Sentinels without
// taxonomic fields return an empty string.
func (l Label) ScientificName() string {
	if l.Genus != "" && l.Species != "" {
		return capitalize(l.Genus) + " " + l.Species
	}
	for _, v := range []string{l.Genus, l.Family, l.Order, l.Class} {
		if v != "" {
			return capitalize(v)
		}
	}
	return ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
