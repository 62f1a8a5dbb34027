package utils_test

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/systemcalls/internal/utils"
)

func TestFlushingWriterFlushesBufferedWriters(testInstance *testing.T) {
	var destination bytes.Buffer
	bufferedWriter := bufio.NewWriterSize(&destination, 4096)

	flushingWriter := utils.NewFlushingWriter(bufferedWriter)
	bytesWritten, writeError := flushingWriter.Write([]byte("status line\n"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 12, bytesWritten)
	require.Equal(testInstance, "status line\n", destination.String())
}

func TestNewFlushingWriterWrapping(testInstance *testing.T) {
	require.Equal(testInstance, io.Discard, utils.NewFlushingWriter(nil))

	wrappedWriter := utils.NewFlushingWriter(&bytes.Buffer{})
	require.Same(testInstance, wrappedWriter, utils.NewFlushingWriter(wrappedWriter))
}
