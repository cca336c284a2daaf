package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DimensionKind names a single axis a matching word set must hold jointly.
// The set is closed: the verifier dispatches on it with a typed comparator
// per kind instead of string-keyed lookups.
type DimensionKind int

const (
	DimEndRhyme DimensionKind = iota
	DimInternalRhyme
	DimAssonance
	DimConsonance
	DimAlliteration
	DimStress
	DimSyllables
	DimTheme
	DimSemanticField
	DimRegister
	DimMood
	DimCulture
)

var dimensionNames = map[DimensionKind]string{
	DimEndRhyme:      "phonetic.endRhyme",
	DimInternalRhyme: "phonetic.internalRhyme",
	DimAssonance:     "phonetic.assonance",
	DimConsonance:    "phonetic.consonance",
	DimAlliteration:  "phonetic.alliteration",
	DimStress:        "phonetic.stress",
	DimSyllables:     "phonetic.syllables",
	DimTheme:         "semantic.theme",
	DimSemanticField: "semantic.field",
	DimRegister:      "semantic.register",
	DimMood:          "semantic.mood",
	DimCulture:       "semantic.culture",
}

var dimensionKinds = func() map[string]DimensionKind {
	m := make(map[string]DimensionKind, len(dimensionNames))
	for k, n := range dimensionNames {
		m[n] = k
	}
	return m
}()

func (d DimensionKind) String() string {
	if n, ok := dimensionNames[d]; ok {
		return n
	}
	return fmt.Sprintf("dimension(%d)", int(d))
}

// ParseDimension maps a dotted dimension path to its kind.
func ParseDimension(s string) (DimensionKind, error) {
	if k, ok := dimensionKinds[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}

func (d DimensionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DimensionKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	k, err := ParseDimension(s)
	if err != nil {
		return err
	}
	*d = k
	return nil
}

func (d *DimensionKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	k, err := ParseDimension(s)
	if err != nil {
		return err
	}
	*d = k
	return nil
}
