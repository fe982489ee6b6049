package chunker

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func collectChunks(t *testing.T, data []byte) [][]byte {
	t.Helper()
	var chunks [][]byte
	for chunk, err := range Chunks(bytes.NewReader(data)) {
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
	return chunks
}

func TestChunksReproduceInput(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	data := make([]byte, 500_000)
	src.Read(data)

	chunks := collectChunks(t, data)
	require.NotEmpty(t, chunks)

	var rebuilt []byte
	for _, c := range chunks {
		rebuilt = append(rebuilt, c...)
	}
	require.Equal(t, data, rebuilt)
}

func TestChunksRespectStageBounds(t *testing.T) {
	src := rand.New(rand.NewSource(2))
	data := make([]byte, 2_000_000)
	src.Read(data)

	chunks := collectChunks(t, data)
	require.Greater(t, len(chunks), stageSwitchCount, "need enough chunks to exercise both stages")

	for i, c := range chunks {
		stage := SmallStage
		if i >= stageSwitchCount {
			stage = LargeStage
		}
		if i == len(chunks)-1 {
			// The terminal chunk may be shorter than Min if the stream ran out.
			require.LessOrEqual(t, len(c), stage.Max)
			continue
		}
		require.GreaterOrEqual(t, len(c), stage.Min)
		require.LessOrEqual(t, len(c), stage.Max)
	}
}

func TestChunksEmptyInput(t *testing.T) {
	chunks := collectChunks(t, nil)
	require.Empty(t, chunks)
}

func TestChunksSmallerThanMinIsOneChunk(t *testing.T) {
	data := []byte("hello")
	chunks := collectChunks(t, data)
	require.Len(t, chunks, 1)
	require.Equal(t, data, chunks[0])
}

func TestChunkLengthWholeBufferWhenAtOrBelowMin(t *testing.T) {
	data := make([]byte, SmallStage.Min)
	require.Equal(t, len(data), ChunkLength(data, SmallStage))
}

func TestChunkLengthNeverExceedsMax(t *testing.T) {
	src := rand.New(rand.NewSource(3))
	data := make([]byte, SmallStage.Max*4)
	src.Read(data)

	n := ChunkLength(data, SmallStage)
	require.LessOrEqual(t, n, SmallStage.Max)
	require.GreaterOrEqual(t, n, SmallStage.Min)
}

func TestChunksDeterministic(t *testing.T) {
	src := rand.New(rand.NewSource(4))
	data := make([]byte, 300_000)
	src.Read(data)

	a := collectChunks(t, data)
	b := collectChunks(t, data)
	require.Equal(t, a, b)
}
