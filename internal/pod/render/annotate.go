package render

import "github.com/danmuck/poddump/internal/pod/registry"

var lightTypes = map[uint32]string{
	0: "point",
	1: "directional",
	2: "spot",
}

var dataTypes = map[uint32]string{
	0:  "none",
	1:  "float",
	2:  "int",
	3:  "unsigned short",
	4:  "rgba",
	5:  "argb",
	6:  "d3dcolor",
	7:  "ubyte4",
	8:  "dec3n",
	9:  "fixed 16.16",
	10: "unsigned byte",
	11: "short",
	12: "short norm",
	13: "byte",
	14: "byte norm",
	15: "unsigned byte norm",
	16: "unsigned short norm",
	17: "unsigned int",
	18: "abgr",
}

var blendFuncs = map[uint32]string{
	0x0000: "zero",
	0x0001: "one",
	0x0002: "blend factor",
	0x0003: "one minus blend factor",
	0x0300: "src colour",
	0x0301: "one minus src colour",
	0x0302: "src alpha",
	0x0303: "one minus src alpha",
	0x0304: "dst alpha",
	0x0305: "one minus dst alpha",
	0x0306: "dst colour",
	0x0307: "one minus dst colour",
	0x0308: "src alpha saturate",
	0x8001: "constant colour",
	0x8002: "one minus constant colour",
	0x8003: "constant alpha",
	0x8004: "one minus constant alpha",
}

var blendOps = map[uint32]string{
	0x8006: "add",
	0x8007: "min",
	0x8008: "max",
	0x800a: "subtract",
	0x800b: "reverse subtract",
}

// Annotation returns the symbolic name of value v for custom block id.
func Annotation(id, v uint32) (string, bool) {
	var names map[uint32]string
	switch id {
	case registry.LightType:
		names = lightTypes
	case registry.DataType:
		names = dataTypes
	case registry.BlendRGBSrc, registry.BlendAlphaSrc, registry.BlendRGBDst, registry.BlendAlphaDst:
		names = blendFuncs
	case registry.BlendRGBOp, registry.BlendAlphaOp:
		names = blendOps
	default:
		return "", false
	}
	name, ok := names[v]
	return name, ok
}
