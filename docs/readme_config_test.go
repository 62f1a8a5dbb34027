package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/systemcalls/cmd/cli"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
	driftMessageConstant             = "README configuration example differs from embedded defaults"
)

func TestReadmeConfigurationMatchesEmbeddedDefaults(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	snippetContent := extractConfigurationSnippet(testInstance, string(contentBytes))

	var readmeConfiguration map[string]any
	require.NoError(testInstance, yaml.Unmarshal([]byte(snippetContent), &readmeConfiguration))

	embeddedContent, _ := cli.EmbeddedDefaultConfiguration()
	var embeddedConfiguration map[string]any
	require.NoError(testInstance, yaml.Unmarshal(embeddedContent, &embeddedConfiguration))

	require.Equal(testInstance, embeddedConfiguration, readmeConfiguration, driftMessageConstant)
}

func extractConfigurationSnippet(testingInstance testing.TB, contentText string) string {
	testingInstance.Helper()

	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testingInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testingInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testingInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	return strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])
}
