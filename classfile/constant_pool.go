package classfile

type ConstantPoolEntry interface {
	Tag() ConstantTag
}

type ConstantUtf8Info struct {
	Value string
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }

type ConstantIntegerInfo struct {
	Value int32
}

func (c *ConstantIntegerInfo) Tag() ConstantTag { return ConstantInteger }

type ConstantFloatInfo struct {
	Value float32
}

func (c *ConstantFloatInfo) Tag() ConstantTag { return ConstantFloat }

type ConstantLongInfo struct {
	Value int64
}

func (c *ConstantLongInfo) Tag() ConstantTag { return ConstantLong }

type ConstantDoubleInfo struct {
	Value float64
}

func (c *ConstantDoubleInfo) Tag() ConstantTag { return ConstantDouble }

type ConstantClassInfo struct {
	NameIndex uint16
}

func (c *ConstantClassInfo) Tag() ConstantTag { return ConstantClass }

type ConstantStringInfo struct {
	StringIndex uint16
}

func (c *ConstantStringInfo) Tag() ConstantTag { return ConstantString }

type ConstantRefInfo struct {
	kind             ConstantTag
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantRefInfo) Tag() ConstantTag { return c.kind }

type ConstantNameAndTypeInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndTypeInfo) Tag() ConstantTag { return ConstantNameAndType }

type ConstantMethodHandleInfo struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}

func (c *ConstantMethodHandleInfo) Tag() ConstantTag { return ConstantMethodHandle }

type ConstantMethodTypeInfo struct {
	DescriptorIndex uint16
}

func (c *ConstantMethodTypeInfo) Tag() ConstantTag { return ConstantMethodType }

type ConstantDynamicInfo struct {
	kind                     ConstantTag
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantDynamicInfo) Tag() ConstantTag { return c.kind }

type ConstantModuleInfo struct {
	kind      ConstantTag
	NameIndex uint16
}

func (c *ConstantModuleInfo) Tag() ConstantTag { return c.kind }

// ConstantPool holds the entries indexed from 1, the way the format
// counts them; slot 0 of the slice backs index 1. Long and double
// entries occupy two slots and leave a nil behind them.
type ConstantPool []ConstantPoolEntry

func (cp ConstantPool) GetUtf8(index uint16) string {
	if index == 0 || int(index) > len(cp) {
		return ""
	}
	if entry, ok := cp[index-1].(*ConstantUtf8Info); ok {
		return entry.Value
	}
	return ""
}

func (cp ConstantPool) GetClassName(index uint16) string {
	if index == 0 || int(index) > len(cp) {
		return ""
	}
	if entry, ok := cp[index-1].(*ConstantClassInfo); ok {
		return cp.GetUtf8(entry.NameIndex)
	}
	return ""
}

func (cp ConstantPool) GetNameAndType(index uint16) (name, descriptor string) {
	if index == 0 || int(index) > len(cp) {
		return "", ""
	}
	if entry, ok := cp[index-1].(*ConstantNameAndTypeInfo); ok {
		return cp.GetUtf8(entry.NameIndex), cp.GetUtf8(entry.DescriptorIndex)
	}
	return "", ""
}

func (cp ConstantPool) GetString(index uint16) string {
	if index == 0 || int(index) > len(cp) {
		return ""
	}
	if entry, ok := cp[index-1].(*ConstantStringInfo); ok {
		return cp.GetUtf8(entry.StringIndex)
	}
	return ""
}

func (cp ConstantPool) GetInteger(index uint16) (int32, bool) {
	if index == 0 || int(index) > len(cp) {
		return 0, false
	}
	if entry, ok := cp[index-1].(*ConstantIntegerInfo); ok {
		return entry.Value, true
	}
	return 0, false
}

func (cp ConstantPool) GetLong(index uint16) (int64, bool) {
	if index == 0 || int(index) > len(cp) {
		return 0, false
	}
	if entry, ok := cp[index-1].(*ConstantLongInfo); ok {
		return entry.Value, true
	}
	return 0, false
}

func (cp ConstantPool) GetFloat(index uint16) (float32, bool) {
	if index == 0 || int(index) > len(cp) {
		return 0, false
	}
	if entry, ok := cp[index-1].(*ConstantFloatInfo); ok {
		return entry.Value, true
	}
	return 0, false
}

func (cp ConstantPool) GetDouble(index uint16) (float64, bool) {
	if index == 0 || int(index) > len(cp) {
		return 0, false
	}
	if entry, ok := cp[index-1].(*ConstantDoubleInfo); ok {
		return entry.Value, true
	}
	return 0, false
}

func (cp ConstantPool) GetRef(index uint16) (className, name, descriptor string) {
	if index == 0 || int(index) > len(cp) {
		return "", "", ""
	}
	if entry, ok := cp[index-1].(*ConstantRefInfo); ok {
		className = cp.GetClassName(entry.ClassIndex)
		name, descriptor = cp.GetNameAndType(entry.NameAndTypeIndex)
		return
	}
	return "", "", ""
}
