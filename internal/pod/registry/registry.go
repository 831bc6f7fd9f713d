package registry

import "fmt"

// Encoding is how a block payload is interpreted.
type Encoding uint8

const (
	Void Encoding = iota
	Undefined
	Custom // interpretation depends on the identifier
	UInt32
	SInt32
	String // null terminated
	Float  // float32, or 16.16 fixed when the scene is fixed point
	RGB    // 3 * float
	RGBA   // 4 * float
	FloatArray
	UInt32Array
	SInt32Array
)

var encodingNames = [...]string{
	Void:        "void",
	Undefined:   "undefined",
	Custom:      "custom",
	UInt32:      "uint32",
	SInt32:      "sint32",
	String:      "string",
	Float:       "float",
	RGB:         "rgb",
	RGBA:        "rgba",
	FloatArray:  "float[]",
	UInt32Array: "uint32[]",
	SInt32Array: "sint32[]",
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return fmt.Sprintf("encoding(%d)", uint8(e))
}

// Descriptor names a block identifier and its payload encoding.
type Descriptor struct {
	ID       uint32
	Name     string
	Encoding Encoding
}

// FamilySize is the identifier span of one family.
const FamilySize = 1000

// Family indexes.
const (
	FamilyUnknown uint32 = iota
	FamilyGlobal
	FamilyScene
	FamilyMaterial
	FamilyTexture
	FamilyNode
	FamilyMesh
	FamilyLight
	FamilyCamera
	FamilyData
)

var unknown = Descriptor{ID: 0, Name: "Unknown", Encoding: Undefined}

// Unknown returns the descriptor used for identifiers with no entry.
func Unknown() Descriptor {
	return unknown
}

// IsUnknown reports whether d is the fallback descriptor.
func (d Descriptor) IsUnknown() bool {
	return d == unknown
}

var familyNames = []string{
	FamilyUnknown:  "unknown",
	FamilyGlobal:   "global",
	FamilyScene:    "scene",
	FamilyMaterial: "material",
	FamilyTexture:  "texture",
	FamilyNode:     "node",
	FamilyMesh:     "mesh",
	FamilyLight:    "light",
	FamilyCamera:   "camera",
	FamilyData:     "pod-data",
}

// Family returns the family index of id. It may exceed the known families.
func Family(id uint32) uint32 {
	return id / FamilySize
}

// FamilyName returns the label of id's family, or "unknown".
func FamilyName(id uint32) string {
	f := Family(id)
	if f >= uint32(len(familyNames)) {
		return familyNames[FamilyUnknown]
	}
	return familyNames[f]
}

// Families returns the number of known families.
func Families() int {
	return len(families)
}

// Lookup returns the descriptor for id, or Unknown(). It never fails.
func Lookup(id uint32) Descriptor {
	f := Family(id)
	if f >= uint32(len(families)) {
		return unknown
	}
	for _, d := range families[f] {
		if d.ID == id {
			return d
		}
	}
	return unknown
}
