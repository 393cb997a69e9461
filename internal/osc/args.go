package osc

// Type tag characters from the wire contract.
const (
	TagInt32     byte = 'i'
	TagFloat32   byte = 'f'
	TagString    byte = 's'
	TagBlob      byte = 'b'
	TagTrue      byte = 'T'
	TagFalse     byte = 'F'
	TagNil       byte = 'N'
	TagInfinitum byte = 'I'
)

// Arg is one tagged argument value. Tag selects which slot is
// meaningful; the T, F, N and I tags carry no value at all.
type Arg struct {
	Tag     byte
	Int32   int32
	Float32 float32
	Str     string
	Blob    []byte
}

// Int32 builds an 'i' argument.
func Int32(v int32) Arg { return Arg{Tag: TagInt32, Int32: v} }

// Float32 builds an 'f' argument.
func Float32(v float32) Arg { return Arg{Tag: TagFloat32, Float32: v} }

// String builds an 's' argument.
func String(s string) Arg { return Arg{Tag: TagString, Str: s} }

// Blob builds a 'b' argument. The bytes are borrowed, not copied.
func Blob(b []byte) Arg { return Arg{Tag: TagBlob, Blob: b} }

// True builds a 'T' argument.
func True() Arg { return Arg{Tag: TagTrue} }

// False builds an 'F' argument.
func False() Arg { return Arg{Tag: TagFalse} }

// Nil builds an 'N' argument.
func Nil() Arg { return Arg{Tag: TagNil} }

// Infinitum builds an 'I' argument.
func Infinitum() Arg { return Arg{Tag: TagInfinitum} }
