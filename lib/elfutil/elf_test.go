package elfutil

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawHeader builds a 64-byte header image directly with encoding/binary,
// independent of Encode, so decoder tests do not rely on the codec under
// test.
func rawHeader(order binary.ByteOrder, dataByte byte) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf, HeaderMagic)
	buf[EI_CLASS] = ELFCLASS64
	buf[EI_DATA] = dataByte
	buf[EI_VERSION] = 1

	order.PutUint16(buf[16:], ET_EXEC)
	order.PutUint16(buf[18:], EM_X86_64)
	order.PutUint32(buf[20:], 1)
	order.PutUint64(buf[24:], 0x112345678) // entry with bits above 32
	order.PutUint64(buf[32:], 0x40)
	order.PutUint64(buf[40:], 0x11e8)
	order.PutUint32(buf[48:], 5)
	order.PutUint16(buf[52:], 64)
	order.PutUint16(buf[54:], 56)
	order.PutUint16(buf[56:], 13)
	order.PutUint16(buf[58:], 64)
	order.PutUint16(buf[60:], 31)
	order.PutUint16(buf[62:], 30)
	return buf
}

func TestDecodeExecutable(t *testing.T) {
	h, err := Decode(rawHeader(binary.LittleEndian, ELFDATA2LSB))
	require.NoError(t, err)

	assert.EqualValues(t, ELFCLASS64, h.Class)
	assert.EqualValues(t, ELFDATA2LSB, h.Data)
	assert.EqualValues(t, 1, h.HeaderVersion)
	assert.EqualValues(t, ET_EXEC, h.Type)
	assert.Equal(t, "Executable file", TypeName(h.Type))
	assert.EqualValues(t, EM_X86_64, h.Machine)
	assert.EqualValues(t, 1, h.Version)
	assert.EqualValues(t, 0x112345678, h.Entry)
	assert.EqualValues(t, 0x40, h.Phoff)
	assert.EqualValues(t, 0x11e8, h.Shoff)
	assert.EqualValues(t, 5, h.Flags)
	assert.EqualValues(t, 64, h.Ehsize)
	assert.EqualValues(t, 56, h.Phentsize)
	assert.EqualValues(t, 13, h.Phnum)
	assert.EqualValues(t, 64, h.Shentsize)
	assert.EqualValues(t, 31, h.Shnum)
	assert.EqualValues(t, 30, h.Shstrndx)
}

func TestDecodeDeterministic(t *testing.T) {
	buf := rawHeader(binary.LittleEndian, ELFDATA2LSB)
	first, err := Decode(buf)
	require.NoError(t, err)
	second, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeHonorsDataEncoding(t *testing.T) {
	// same logical values stored little- and big-endian must decode
	// identically apart from the EI_DATA byte itself
	little, err := Decode(rawHeader(binary.LittleEndian, ELFDATA2LSB))
	require.NoError(t, err)
	big, err := Decode(rawHeader(binary.BigEndian, ELFDATA2MSB))
	require.NoError(t, err)

	assert.EqualValues(t, ELFDATA2LSB, little.Data)
	assert.EqualValues(t, ELFDATA2MSB, big.Data)
	little.Data = big.Data
	assert.Equal(t, little, big)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	buf := rawHeader(binary.LittleEndian, ELFDATA2LSB)
	buf[0] = 0x7e
	_, err := Decode(buf)
	assert.ErrorIs(t, err, ErrNotELF)

	// an otherwise empty buffer with a bad signature is still NotELF
	_, err = Decode([]byte{'M', 'Z', 0, 0})
	assert.ErrorIs(t, err, ErrNotELF)
}

func TestDecodeTruncated(t *testing.T) {
	full := rawHeader(binary.LittleEndian, ELFDATA2LSB)
	for _, n := range []int{0, 3, 4, 15, 16, 17, 23, 63} {
		_, err := Decode(full[:n])
		require.Error(t, err, "length %d", n)
		assert.True(t, IsTruncated(err), "length %d: %v", n, err)
	}

	var te *TruncatedError
	_, err := Decode(full[:62])
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "e_shstrndx", te.Field)
	assert.Equal(t, HeaderSize, te.Need)
	assert.Equal(t, 62, te.Have)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, dataByte := range []byte{ELFDATA2LSB, ELFDATA2MSB} {
		want := &Header{
			Class:         ELFCLASS64,
			Data:          dataByte,
			HeaderVersion: 1,
			Type:          ET_DYN,
			Machine:       EM_RISCV,
			Version:       1,
			Entry:         0xdeadbeefcafe,
			Phoff:         64,
			Shoff:         0x9f30,
			Flags:         0x5000200,
			Ehsize:        64,
			Phentsize:     56,
			Phnum:         9,
			Shentsize:     64,
			Shnum:         28,
			Shstrndx:      27,
		}
		buf := Encode(want)
		require.Len(t, buf, HeaderSize)
		got, err := Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestIsELF(t *testing.T) {
	assert.True(t, IsELF(rawHeader(binary.LittleEndian, ELFDATA2LSB)))
	assert.True(t, IsELF([]byte{0x7f, 'E', 'L', 'F'}))
	assert.False(t, IsELF([]byte{0x7f, 'E', 'L'}))
	assert.False(t, IsELF([]byte("ELF\x7f....")))
}
