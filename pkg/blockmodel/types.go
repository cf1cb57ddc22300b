package blockmodel

// Model is a block/item model as described by a model JSON file.
// Values are immutable once decoded; inheritance is applied by a Resolver.
type Model struct {
	Parent           string
	AmbientOcclusion *bool
	Textures         map[string]string
	Elements         []Element
	Display          map[DisplayPosition]Display
}

// UsesAmbientOcclusion reports the ambient occlusion flag, true unless the
// model explicitly disables it.
func (m *Model) UsesAmbientOcclusion() bool {
	return m.AmbientOcclusion == nil || *m.AmbientOcclusion
}

// Element is one axis-aligned box of a model.
type Element struct {
	From     Vec3
	To       Vec3
	Rotation *Rotation
	Shade    *bool
	// Faces is indexed by FaceType; a nil entry means the face is not drawn.
	Faces [FaceCount]*Face
}

// Shaded reports whether the element receives directional shading (default true).
func (e *Element) Shaded() bool {
	return e.Shade == nil || *e.Shade
}

// FaceCount returns the number of faces that are present.
func (e *Element) FaceCount() int {
	n := 0
	for _, f := range e.Faces {
		if f != nil {
			n++
		}
	}
	return n
}

type Rotation struct {
	Origin  Vec3
	Angle   float32 // degrees
	Axis    Axis
	Rescale bool
}

type Face struct {
	Texture   string
	UV        *Vec4
	CullFace  *FaceType
	Rotation  TextureRotation
	TintIndex *int
}

type Display struct {
	Rotation    Vec3
	Translation Vec3
	Scale       Vec3
}

type Vec3 [3]float32

type Vec4 [4]float32

// FaceType identifies one of the six sides of an element. The declaration
// order is the order faces are visited when compiling.
type FaceType int

const (
	West FaceType = iota
	East
	Down
	Up
	North
	South
)

const FaceCount = 6

var faceNames = [FaceCount]string{"west", "east", "down", "up", "north", "south"}

func (f FaceType) String() string {
	if f < 0 || int(f) >= FaceCount {
		return "unknown"
	}
	return faceNames[f]
}

// ParseFaceType maps a face name to its FaceType.
func ParseFaceType(name string) (FaceType, bool) {
	for i, n := range faceNames {
		if n == name {
			return FaceType(i), true
		}
	}
	return 0, false
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

func ParseAxis(name string) (Axis, bool) {
	switch name {
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	}
	return 0, false
}

// TextureRotation rotates a face's texture in steps of 90 degrees.
type TextureRotation int

func (r TextureRotation) Valid() bool {
	return r == 0 || r == 90 || r == 180 || r == 270
}

// validRotationAngles are the element rotation angles the format allows.
var validRotationAngles = []float32{-45, -22.5, 0, 22.5, 45}

type DisplayPosition string

const (
	ThirdPersonRightHand DisplayPosition = "thirdperson_righthand"
	ThirdPersonLeftHand  DisplayPosition = "thirdperson_lefthand"
	FirstPersonRightHand DisplayPosition = "firstperson_righthand"
	FirstPersonLeftHand  DisplayPosition = "firstperson_lefthand"
	DisplayGUI           DisplayPosition = "gui"
	DisplayHead          DisplayPosition = "head"
	DisplayGround        DisplayPosition = "ground"
	DisplayFixed         DisplayPosition = "fixed"
)

func (p DisplayPosition) Valid() bool {
	switch p {
	case ThirdPersonRightHand, ThirdPersonLeftHand,
		FirstPersonRightHand, FirstPersonLeftHand,
		DisplayGUI, DisplayHead, DisplayGround, DisplayFixed:
		return true
	}
	return false
}
