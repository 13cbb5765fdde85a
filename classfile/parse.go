package classfile

import (
	"fmt"
	"os"

	"github.com/dhamidi/wary"
)

type reader = wary.Reader[*wary.Verbose]

// Parse parses the class file header from b. The buffer is treated as
// the whole file, so errors are final; the fields, methods and
// attributes following the header are left unread.
func Parse(b []byte) (*ClassFile, error) {
	cf, _, err := wary.ReadPartial(wary.New(b).Bounded(), parseClassFile)
	return cf, err
}

// ParseFile parses the class file at path.
func ParseFile(path string) (*ClassFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	return Parse(data)
}

// ParsePartial parses a class file header from the front of a buffer
// that may still grow, returning the unread remainder. When the buffer
// ends mid-header the error is retryable and states how many more
// bytes are needed; feed a longer buffer and call again.
func ParsePartial(b []byte) (*ClassFile, wary.Input, error) {
	return wary.ReadPartial(wary.New(b), parseClassFile)
}

func parseClassFile(r *reader) (*ClassFile, error) {
	cf := &ClassFile{}
	err := r.Context("class file", func(r *reader) error {
		if err := r.Context("magic", func(r *reader) error {
			return r.Consume(magicBytes)
		}); err != nil {
			return err
		}
		var err error
		if cf.MinorVersion, err = r.U16BE(); err != nil {
			return err
		}
		if cf.MajorVersion, err = r.U16BE(); err != nil {
			return err
		}
		if err := r.Context("constant pool", func(r *reader) error {
			count, err := r.U16BE()
			if err != nil {
				return err
			}
			if count == 0 {
				return fail(r, "constant pool count of at least 1")
			}
			cf.ConstantPool = make(ConstantPool, count-1)
			for i := uint16(1); i < count; i++ {
				entry, wide, err := parseConstantEntry(r)
				if err != nil {
					return err
				}
				cf.ConstantPool[i-1] = entry
				if wide {
					// Longs and doubles take up two pool slots.
					i++
				}
			}
			return nil
		}); err != nil {
			return err
		}
		var flags uint16
		if flags, err = r.U16BE(); err != nil {
			return err
		}
		cf.AccessFlags = AccessFlags(flags)
		if cf.ThisClass, err = r.U16BE(); err != nil {
			return err
		}
		if cf.SuperClass, err = r.U16BE(); err != nil {
			return err
		}
		return r.Context("interfaces", func(r *reader) error {
			count, err := r.U16BE()
			if err != nil {
				return err
			}
			cf.Interfaces = make([]uint16, count)
			for i := range cf.Interfaces {
				if cf.Interfaces[i], err = r.U16BE(); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cf, nil
}

func parseConstantEntry(r *reader) (entry ConstantPoolEntry, wide bool, err error) {
	err = r.Context("constant pool entry", func(r *reader) error {
		tag, err := r.U8()
		if err != nil {
			return err
		}
		switch ConstantTag(tag) {
		case ConstantUtf8:
			length, err := r.U16BE()
			if err != nil {
				return err
			}
			raw, err := r.Take(int(length))
			if err != nil {
				return err
			}
			entry = &ConstantUtf8Info{Value: decodeModifiedUtf8(raw.Raw())}
		case ConstantInteger:
			v, err := r.I32BE()
			if err != nil {
				return err
			}
			entry = &ConstantIntegerInfo{Value: v}
		case ConstantFloat:
			v, err := r.F32BE()
			if err != nil {
				return err
			}
			entry = &ConstantFloatInfo{Value: v}
		case ConstantLong:
			v, err := r.I64BE()
			if err != nil {
				return err
			}
			entry, wide = &ConstantLongInfo{Value: v}, true
		case ConstantDouble:
			v, err := r.F64BE()
			if err != nil {
				return err
			}
			entry, wide = &ConstantDoubleInfo{Value: v}, true
		case ConstantClass:
			nameIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			entry = &ConstantClassInfo{NameIndex: nameIndex}
		case ConstantString:
			stringIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			entry = &ConstantStringInfo{StringIndex: stringIndex}
		case ConstantFieldref, ConstantMethodref, ConstantInterfaceMethodref:
			classIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			natIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			entry = &ConstantRefInfo{
				kind:             ConstantTag(tag),
				ClassIndex:       classIndex,
				NameAndTypeIndex: natIndex,
			}
		case ConstantNameAndType:
			nameIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			descIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			entry = &ConstantNameAndTypeInfo{NameIndex: nameIndex, DescriptorIndex: descIndex}
		case ConstantMethodHandle:
			kind, err := r.U8()
			if err != nil {
				return err
			}
			refIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			entry = &ConstantMethodHandleInfo{ReferenceKind: kind, ReferenceIndex: refIndex}
		case ConstantMethodType:
			descIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			entry = &ConstantMethodTypeInfo{DescriptorIndex: descIndex}
		case ConstantDynamic, ConstantInvokeDynamic:
			bootstrapIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			natIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			entry = &ConstantDynamicInfo{
				kind:                     ConstantTag(tag),
				BootstrapMethodAttrIndex: bootstrapIndex,
				NameAndTypeIndex:         natIndex,
			}
		case ConstantModule, ConstantPackage:
			nameIndex, err := r.U16BE()
			if err != nil {
				return err
			}
			entry = &ConstantModuleInfo{kind: ConstantTag(tag), NameIndex: nameIndex}
		default:
			return fail(r, "known constant pool tag")
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return entry, wide, nil
}

// fail raises a fatal invalid-value error at the reader's position.
func fail(r *reader, expected string) error {
	_, err := wary.Expect(r, expected, func(*reader) (struct{}, bool) {
		return struct{}{}, false
	})
	return err
}

// decodeModifiedUtf8 decodes the JVM's modified UTF-8: no four byte
// sequences, supplementary characters as surrogate pairs, and U+0000
// encoded as 0xC0 0x80.
func decodeModifiedUtf8(b []byte) string {
	runes := make([]rune, 0, len(b))
	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case c&0x80 == 0:
			runes = append(runes, rune(c))
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) {
				return string(runes)
			}
			runes = append(runes, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) {
				return string(runes)
			}
			r := rune(c&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			if r >= 0xD800 && r <= 0xDBFF && i+5 < len(b) && b[i+3]&0xF0 == 0xE0 {
				low := rune(b[i+3]&0x0F)<<12 | rune(b[i+4]&0x3F)<<6 | rune(b[i+5]&0x3F)
				if low >= 0xDC00 && low <= 0xDFFF {
					runes = append(runes, 0x10000+((r-0xD800)<<10)+(low-0xDC00))
					i += 6
					continue
				}
			}
			runes = append(runes, r)
			i += 3
		default:
			runes = append(runes, rune(c))
			i++
		}
	}
	return string(runes)
}
