package registry

// Identifiers referenced outside the table.
const (
	SceneFlags    uint32 = 2016
	BlendRGBSrc   uint32 = 3018
	BlendAlphaSrc uint32 = 3019
	BlendRGBDst   uint32 = 3020
	BlendAlphaDst uint32 = 3021
	BlendRGBOp    uint32 = 3022
	BlendAlphaOp  uint32 = 3023
	LightType     uint32 = 7002
	DataType      uint32 = 9000
)

// families is indexed by id / FamilySize. Entries are never mutated.
var families = [][]Descriptor{
	FamilyUnknown: {
		unknown,
	},
	FamilyGlobal: {
		{1000, "Version", String},
		{1001, "Scene", Void},
		{1002, "Export Options", String},
		{1003, "History", String},
	},
	FamilyScene: {
		{2000, "Clear Colour", RGB},
		{2001, "Ambient Colour", RGB},
		{2002, "Num. Cameras", UInt32},
		{2003, "Num. Lights", UInt32},
		{2004, "Num. Meshes", UInt32},
		{2005, "Num. Nodes", UInt32},
		{2006, "Num. Mesh Nodes", UInt32},
		{2007, "Num. Textures", UInt32},
		{2008, "Num. Materials", UInt32},
		{2009, "Num. Frames", UInt32},
		{2010, "Camera", Void},
		{2011, "Light", Void},
		{2012, "Mesh", Void},
		{2013, "Node", Void},
		{2014, "Texture", Void},
		{2015, "Material", Void},
		{SceneFlags, "Scene Flags", UInt32},
		{2017, "FPS", UInt32},
		{2018, "Scene User Data", Undefined},
		{2019, "Units", Undefined},
	},
	FamilyMaterial: {
		{3000, "Material Name", String},
		{3001, "Diffuse Texture Index", SInt32},
		{3002, "Material Opacity", Float},
		{3003, "Ambient Colour", RGB},
		{3004, "Diffuse Colour", RGB},
		{3005, "Specular Colour", RGB},
		{3006, "Shininess", Float},
		{3007, "Effect File Name", String},
		{3008, "Effect Name", String},
		{3009, "Ambient Texture Index", SInt32},
		{3010, "Specular Colour Texture Index", SInt32},
		{3011, "Specular Level Texture Index", SInt32},
		{3012, "Bump Map Texture Index", SInt32},
		{3013, "Emissive Texture Index", SInt32},
		{3014, "Glossiness Texture Index", SInt32},
		{3015, "Opacity Texture Index", SInt32},
		{3016, "Reflection Texture Index", SInt32},
		{3017, "Refraction Texture Index", SInt32},
		{BlendRGBSrc, "Blending RGB Source Value", Custom},
		{BlendAlphaSrc, "Blending Alpha Source Value", Custom},
		{BlendRGBDst, "Blending RGB Destination Value", Custom},
		{BlendAlphaDst, "Blending Alpha Destination Value", Custom},
		{BlendRGBOp, "Blending RGB Operation", Custom},
		{BlendAlphaOp, "Blending Alpha Operation", Custom},
		{3024, "Blending RGBA Colour", RGBA},
		{3025, "Blending Factor Array", FloatArray},
		{3026, "Material Flags", Custom},
		{3027, "Material User Data", Custom},
	},
	FamilyTexture: {
		{4000, "Texture Name", String},
	},
	FamilyNode: {
		{5000, "Node Index", SInt32},
		{5001, "Node Name", String},
		{5002, "Material Index", SInt32},
		{5003, "Parent Index", SInt32},
		{5007, "Animation Position", FloatArray}, // {x, y, z}[]
		{5008, "Animation Rotation", FloatArray}, // quaternion {x, y, z, w}[]
		{5009, "Animation Scale", FloatArray},    // {x, y, z, xAxis, yAxis, zAxis, stretch}[]
		{5010, "Animation Matrix", FloatArray},   // float[16][]
		{5011, "Unknown Matrix", FloatArray},
		{5012, "Animation Flags", Custom},
		{5013, "Animation Position Index", SInt32Array},
		{5014, "Animation Rotation Index", SInt32Array},
		{5015, "Animation Scale Index", SInt32Array},
		{5016, "Animation Matrix Index", SInt32Array},
		{5017, "Node User Data", Undefined},
	},
	FamilyMesh: {
		{6000, "Num. Vertices", UInt32},
		{6001, "Num. Faces", UInt32},
		{6002, "Num. UVW Channels", UInt32},
		{6003, "Vertex Index List", Void},
		{6004, "Strip Length", UInt32Array},
		{6005, "Num. Strips", UInt32},
		{6006, "Vertex List", Void},
		{6007, "Normal List", Void},
		{6008, "Tangent List", Void},
		{6009, "Binormal List", Void},
		{6010, "UVW List", Void},
		{6011, "Vertex Colour List", Void},
		{6012, "Bone Index List", Void},
		{6013, "Bone Weights", Void},
		{6014, "Interleaved Data List", Custom}, // raw bytes
		{6015, "Bone Batch Index List", UInt32Array},
		{6016, "Num. Bone Indices per Batch", UInt32Array},
		{6017, "Bone Offset per Batch", UInt32Array},
		{6018, "Max. Num. Bones per Batch", UInt32Array},
		{6019, "Num. Bone Batches", UInt32},
		{6020, "Unpack Matrix", FloatArray},
	},
	FamilyLight: {
		{7000, "Target Object Index", SInt32},
		{7001, "Light Colour", FloatArray},
		{LightType, "Light Type", Custom},
		{7003, "Constant Attenuation", Float},
		{7004, "Linear Attenuation", Float},
		{7005, "Quadratic Attenuation", Float},
		{7006, "Falloff Angle", Float},
		{7007, "Falloff Exponent", Float},
	},
	FamilyCamera: {
		{8000, "Target Object Index", SInt32},
		{8001, "Field of View", Float},
		{8002, "Far Plane", Float},
		{8003, "Near Plane", Float},
		{8004, "FOV Animation", FloatArray},
	},
	FamilyData: {
		{DataType, "Data Type", Custom},
		{9001, "Num. Components", UInt32},
		{9002, "Stride", UInt32},
		{9003, "Data", Custom},
	},
}
