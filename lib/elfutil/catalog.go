package elfutil

// Object file types (e_type)
const (
	ET_NONE   = 0
	ET_REL    = 1
	ET_EXEC   = 2
	ET_DYN    = 3
	ET_CORE   = 4
	ET_LOOS   = 0xfe00
	ET_HIOS   = 0xfeff
	ET_LOPROC = 0xff00
	ET_HIPROC = 0xffff
)

// Machine architectures (e_machine), the subset this tool labels
const (
	EM_NONE        = 0
	EM_SPARC       = 2
	EM_386         = 3
	EM_SPARC32PLUS = 18
	EM_ARM         = 40
	EM_X86_64      = 62
	EM_CUDA        = 190
	EM_AMDGPU      = 224
	EM_RISCV       = 243
)

// Label tables are built once and never mutated.
var (
	classNames = map[byte]string{
		ELFCLASS32: "32bit architecture",
		ELFCLASS64: "64bit architecture",
	}

	dataNames = map[byte]string{
		ELFDATA2LSB: "Little endian",
		ELFDATA2MSB: "Big endian",
	}

	typeNames = map[uint16]string{
		ET_NONE:   "No file type",
		ET_REL:    "Relocatable file",
		ET_EXEC:   "Executable file",
		ET_DYN:    "Shared object file",
		ET_CORE:   "Core file",
		ET_LOOS:   "Operating system-specific",
		ET_HIOS:   "Operating system-specific",
		ET_LOPROC: "Processor-specific",
		ET_HIPROC: "Processor-specific",
	}

	machineNames = map[uint16]string{
		EM_NONE:        "None",
		EM_SPARC:       "SPARC",
		EM_386:         "x86",
		EM_SPARC32PLUS: "SPARC 32+",
		EM_ARM:         "ARM",
		EM_X86_64:      "AMD64",
		EM_CUDA:        "CUDA",
		EM_AMDGPU:      "AMD GPU",
		EM_RISCV:       "RISC-V",
	}
)

// ClassName resolves the EI_CLASS byte to a label.
func ClassName(class byte) string {
	if name, ok := classNames[class]; ok {
		return name
	}
	return "Invalid class"
}

// DataName resolves the EI_DATA byte to a label.
func DataName(data byte) string {
	if name, ok := dataNames[data]; ok {
		return name
	}
	return "Invalid data"
}

// TypeName resolves the e_type value to a label. Unmapped values are
// labeled invalid rather than rejected, they are still displayable.
func TypeName(typ uint16) string {
	if name, ok := typeNames[typ]; ok {
		return name
	}
	return "Invalid type"
}

// MachineName resolves the e_machine value to an architecture label.
// The table is deliberately partial: a miss means the machine is not
// labeled, not that the header is bad.
func MachineName(machine uint16) (string, bool) {
	name, ok := machineNames[machine]
	return name, ok
}
