package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeSlotRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		tag     Tag
		payload uint32
	}{
		{"empty zero payload", TagEmpty, 0},
		{"single small index", TagSingle, 42},
		{"polygon offset", TagPolygon, 123456},
		{"branch max payload", TagBranch, MaxPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := EncodeSlot(tt.tag, tt.payload)
			gotTag, gotPayload := DecodeSlot(word)
			require.Equal(t, tt.tag, gotTag)
			require.Equal(t, tt.payload, gotPayload)
		})
	}
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "Empty", TagEmpty.String())
	assert.Equal(t, "Single", TagSingle.String())
	assert.Equal(t, "Polygon", TagPolygon.String())
	assert.Equal(t, "Branch", TagBranch.String())
	assert.Equal(t, "Tag(7)", Tag(7).String())
}

func TestCompressionTypeString(t *testing.T) {
	assert.Equal(t, "None", CompressionNone.String())
	assert.Equal(t, "Zstd", CompressionZstd.String())
	assert.Equal(t, "S2", CompressionS2.String())
	assert.Equal(t, "LZ4", CompressionLZ4.String())
}

func TestGridBlockSize(t *testing.T) {
	assert.Equal(t, 259200, GridBlockSize)
}

func TestMaxPayload(t *testing.T) {
	assert.Equal(t, uint32(1<<30-1), uint32(MaxPayload))
}
