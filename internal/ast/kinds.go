package ast

// Node dispatch keys, already lower-cased per Kind()'s contract.
const (
	KindProgram             = "programnode"
	KindBlock                = "block"
	KindVariableDeclaration  = "variabledeclaration"
	KindAssignment           = "assignment"
	KindImageDeclaration     = "imagedeclaration"
	KindBatchDeclaration     = "batchdeclaration"
	KindBatchExpression      = "batchexpression"
	KindBinaryExpression     = "binaryexpression"
	KindLiteral              = "literal"
	KindVariableReference    = "variablereference"
	KindMetadata             = "metadata"
	KindIf                   = "if"
	KindForEach              = "foreach"
	KindRename               = "rename"
	KindExport               = "export"

	KindSetFilter       = "setfilter"
	KindBrightness      = "brightness"
	KindContrast        = "contrast"
	KindOpacity         = "opacity"
	KindNoise           = "noise"
	KindBlur            = "blur"
	KindPixelate        = "pixelate"
	KindQuantize        = "quantize"
	KindRotate          = "rotate"
	KindCrop            = "crop"
	KindResize          = "resize"
	KindOrientation     = "orientation"
	KindHue             = "hue"
	KindCompress        = "compress"
	KindConvert         = "convert"
	KindWebOptimize     = "weboptimize"
	KindWatermark       = "watermark"
	KindImageWatermark  = "imagewatermark"
	KindStripMetadata   = "stripmetadata"
	KindAddMetadata     = "addmetadata"
)

// Literal value-type discriminators (§4.2).
const (
	ValueTypeInt    = "INT_VALUE"
	ValueTypeDouble = "DBL_VALUE"
	ValueTypeString = "STR_VALUE"
	ValueTypeBool   = "BOOL_VALUE"
)

// Binary operators (§4.2).
const (
	OpPlus         = "PLUS"
	OpMinus        = "MINUS"
	OpMultiply     = "MULTIPLY"
	OpDivide       = "DIVIDE"
	OpEqual        = "EQUAL"
	OpNotEqual     = "NOT_EQUAL"
	OpGreater      = "GREATER"
	OpGreaterEqual = "GREATER_EQUAL"
	OpSmaller      = "SMALLER"
	OpSmallerEqual = "SMALLER_EQUAL"
)

// SetFilter filter types.
const (
	FilterSepia    = "SEPIA"
	FilterBW       = "BW"
	FilterNegative = "NEGATIVE"
	FilterSharpen  = "SHARPEN"
)

// Metadata accessor kinds.
const (
	MetaWidth    = "FWIDTH"
	MetaHeight   = "FHEIGHT"
	MetaName     = "FNAME"
	MetaSize     = "FSIZE"
)

// Rotate / orientation directions.
const (
	DirLeft      = "LEFT"
	DirRight     = "RIGHT"
	Landscape    = "LANDSCAPE"
	Portrait     = "PORTRAIT"
)

// Convert / format targets.
const (
	FormatPNG  = "PNG"
	FormatJPG  = "JPG"
	FormatJPEG = "JPEG"
	FormatWEBP = "WEBP"
	FormatTIFF = "TIFF"
	FormatBMP  = "BMP"
)

// WebOptimize modes.
const (
	WebOptimizeLossless = "LOSSLESS"
	WebOptimizeLossy    = "LOSSY"
)

// AddMetadata / StripMetadata field kinds.
const (
	MetaFieldTags        = "TAGS"
	MetaFieldTitle       = "TITLE"
	MetaFieldCopyright   = "COPYRIGHT"
	MetaFieldDescription = "DESCRIPTION"
	MetaFieldGPS         = "GPS"
	MetaFieldCamera      = "CAMERA"
)

// Rename term kinds.
const (
	TermString   = "STRING"
	TermCounter  = "COUNTER"
	TermMetadata = "METADATA"
)

// RecognizedExtensions is the default recognized image extension set used
// by ForEach directory enumeration (§4.5), lower-case, without the dot.
var RecognizedExtensions = []string{"png", "jpg", "jpeg", "webp", "tiff", "bmp"}
