package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("1-byte digest", func(t *testing.T) {
		code, err := EncodeDigest([]byte{HeadMeta})
		require.NoError(t, err)
		require.Len(t, code, 2)

		decoded, err := DecodeCode(code)
		require.NoError(t, err)
		require.Equal(t, []byte{HeadMeta}, decoded)
	})

	t.Run("8-byte digest", func(t *testing.T) {
		digest := []byte{1, 2, 3, 4, 5, 6, 7, 8}
		code, err := EncodeDigest(digest)
		require.NoError(t, err)
		require.Len(t, code, 11)

		decoded, err := DecodeCode(code)
		require.NoError(t, err)
		require.Equal(t, digest, decoded)
	})

	t.Run("9-byte digest via EncodeComponent", func(t *testing.T) {
		digest := []byte{10, 20, 30, 40, 50, 60, 70, 80}
		code, err := EncodeComponent(HeadData, digest)
		require.NoError(t, err)
		require.Len(t, code, 13)

		decoded, err := DecodeCode(code)
		require.NoError(t, err)
		require.Equal(t, append([]byte{HeadData}, digest...), decoded)
	})
}

func TestEncodeDigestRejectsBadLength(t *testing.T) {
	_, err := EncodeDigest([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidDigestLength)
}

func TestDecodeCodeRejectsBadLength(t *testing.T) {
	_, err := DecodeCode("abc")
	require.ErrorIs(t, err, ErrInvalidCodeLength)
}

func TestDecodeCodeRejectsIllegalCharacter(t *testing.T) {
	_, err := DecodeCode("0O") // '0' and 'O' are excluded from the alphabet
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestDistanceSelfIsZero(t *testing.T) {
	digest := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	code, err := EncodeComponent(HeadContentText, digest)
	require.NoError(t, err)

	d, err := Distance(code, code, false)
	require.NoError(t, err)
	require.Equal(t, 0, d)
}

func TestDistanceIsSymmetric(t *testing.T) {
	a, err := EncodeComponent(HeadContentText, []byte{0xff, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	b, err := EncodeComponent(HeadContentText, []byte{0x00, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	d1, err := Distance(a, b, false)
	require.NoError(t, err)
	d2, err := Distance(b, a, false)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
	require.Equal(t, 8, d1)
}

func TestDistanceRejectsHeaderMismatch(t *testing.T) {
	a, err := EncodeComponent(HeadContentText, []byte{0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	b, err := EncodeComponent(HeadContentImage, []byte{0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	_, err = Distance(a, b, false)
	require.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestDistanceMixedModeToleratesSubType(t *testing.T) {
	a, err := EncodeComponent(HeadContentText, []byte{0xff, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	b, err := EncodeComponent(HeadContentTextPartial, []byte{0x00, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	d, err := Distance(a, b, true)
	require.NoError(t, err)
	require.Equal(t, 8, d)
}

func TestDistanceMixedModeStillRejectsMainTypeMismatch(t *testing.T) {
	a, err := EncodeComponent(HeadContentText, []byte{0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	b, err := EncodeComponent(HeadData, []byte{0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	_, err = Distance(a, b, true)
	require.True(t, errors.Is(err, ErrHeaderMismatch))
}
