// Package classfile parses the header of JVM class files: magic,
// version, constant pool, access flags, class hierarchy and
// interfaces. It is built on the wary reader, so a truncated file
// reports exactly how many more bytes it needs and a malformed one
// reports exactly where it broke.
package classfile

import "fmt"

type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
}

func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.GetClassName(cf.ThisClass)
}

// SuperClassName returns the super class, or "" for java/lang/Object
// itself and for modules.
func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass == 0 {
		return ""
	}
	return cf.ConstantPool.GetClassName(cf.SuperClass)
}

func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		names[i] = cf.ConstantPool.GetClassName(idx)
	}
	return names
}

func (cf *ClassFile) IsClass() bool {
	return !cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsModule()
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsEnum() bool { return cf.AccessFlags.IsEnum() }

// Version renders the class file version the way javap does, for
// example "65.0" for Java 21.
func (cf *ClassFile) Version() string {
	return fmt.Sprintf("%d.%d", cf.MajorVersion, cf.MinorVersion)
}
