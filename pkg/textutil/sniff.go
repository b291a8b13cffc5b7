package textutil

import (
	"io"
	"os"
	"unicode/utf8"
)

// Kind classifies a buffer as text we can safely transform or not.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// SniffContent classifies a full file buffer. Anything that is not valid
// UTF-8 is treated as binary; there is no deeper format detection.
func SniffContent(data []byte) Kind {
	if utf8.Valid(data) {
		return KindText
	}
	return KindBinary
}

// SniffFile reads a file in full and classifies it.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader classifies everything readable from r.
func SniffReader(r io.Reader) (Kind, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return KindUnknown, err
	}
	return SniffContent(data), nil
}
